package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ricemill/internal/core/types"
)

func strp(s string) *string { return &s }

func loanp(s LoanStatus) *LoanStatus { return &s }

func TestPayment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payment Payment
		wantErr bool
	}{
		{"cash", CashPayment(), false},
		{"loan paid", LoanPayment(LoanPaid), false},
		{"loan unpaid", LoanPayment(LoanUnpaid), false},
		{"bank transfer", BankPayment("Peoples Bank", "100-200-300"), false},

		{"cash with loan status", Payment{Type: PaymentCash, LoanStatus: loanp(LoanPaid)}, true},
		{"cash with bank fields", Payment{Type: PaymentCash, BankName: strp("BOC")}, true},
		{"loan without status", Payment{Type: PaymentLoan}, true},
		{"loan with bogus status", Payment{Type: PaymentLoan, LoanStatus: loanp("Pending")}, true},
		{"loan with bank fields", Payment{Type: PaymentLoan, LoanStatus: loanp(LoanPaid), BankName: strp("BOC")}, true},
		{"bank without name", Payment{Type: PaymentBankTransfer, BankAccount: strp("1")}, true},
		{"bank without account", Payment{Type: PaymentBankTransfer, BankName: strp("BOC")}, true},
		{"bank with empty name", Payment{Type: PaymentBankTransfer, BankName: strp(""), BankAccount: strp("1")}, true},
		{"bank with loan status", Payment{Type: PaymentBankTransfer, BankName: strp("BOC"), BankAccount: strp("1"), LoanStatus: loanp(LoanUnpaid)}, true},
		{"unknown type", Payment{Type: "Barter"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPayment_Realised(t *testing.T) {
	assert.True(t, CashPayment().Realised())
	assert.True(t, BankPayment("BOC", "1").Realised())
	assert.True(t, LoanPayment(LoanPaid).Realised())
	assert.False(t, LoanPayment(LoanUnpaid).Realised())
	assert.False(t, Payment{Type: PaymentLoan}.Realised(), "loan with missing status is not realized")
}

func TestSale_Validate(t *testing.T) {
	date := types.NewDate(2025, time.April, 12)

	ok := New(date, "Perera Stores", RiceNadu, types.Dec("250"), types.Dec("45000"), CashPayment())
	assert.NoError(t, ok.Validate(t.Context()))

	noCustomer := New(date, "", RiceNadu, types.Dec("250"), types.Dec("45000"), CashPayment())
	assert.Error(t, noCustomer.Validate(t.Context()))

	badRice := New(date, "Perera Stores", "Jasmine", types.Dec("250"), types.Dec("45000"), CashPayment())
	assert.Error(t, badRice.Validate(t.Context()))

	badPayment := New(date, "Perera Stores", RiceNadu, types.Dec("250"), types.Dec("45000"), Payment{Type: PaymentLoan})
	assert.Error(t, badPayment.Validate(t.Context()))

	negAmount := New(date, "Perera Stores", RiceNadu, types.Dec("250"), types.Dec("-1"), CashPayment())
	assert.Error(t, negAmount.Validate(t.Context()))
}
