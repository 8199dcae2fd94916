// Package sale provides the rice sale record and the payment variant.
package sale

import (
	"context"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/types"
)

// RiceType enumerates the rice varieties sold.
type RiceType string

const (
	RiceNadu       RiceType = "Nadu"
	RiceSamba      RiceType = "Samba"
	RiceBasmati    RiceType = "Basmati"
	RiceKeeriSamba RiceType = "Keeri Samba"
	RiceOther      RiceType = "Other"
)

// RiceTypes lists every valid rice variety.
var RiceTypes = []RiceType{RiceNadu, RiceSamba, RiceBasmati, RiceKeeriSamba, RiceOther}

// Valid reports whether the value is a known rice variety.
func (r RiceType) Valid() bool {
	for _, known := range RiceTypes {
		if r == known {
			return true
		}
	}
	return false
}

// PaymentType discriminates the payment variant of a sale.
type PaymentType string

const (
	PaymentCash         PaymentType = "Cash"
	PaymentLoan         PaymentType = "Loan"
	PaymentBankTransfer PaymentType = "BankTransfer"
)

// LoanStatus applies only to Loan sales.
type LoanStatus string

const (
	LoanPaid   LoanStatus = "Paid"
	LoanUnpaid LoanStatus = "Unpaid"
)

// Payment is a tagged variant keyed by Type. Each variant carries exactly
// its own fields: Loan has a status, BankTransfer has bank details, Cash
// has neither. Construct via CashPayment/LoanPayment/BankPayment;
// Validate enforces the exactly-when rule for hand-built values.
type Payment struct {
	Type        PaymentType `db:"payment_type" json:"paymentType"`
	LoanStatus  *LoanStatus `db:"loan_status" json:"loanStatus,omitempty"`
	BankName    *string     `db:"bank_name" json:"bankName,omitempty"`
	BankAccount *string     `db:"bank_account" json:"bankAccount,omitempty"`
}

// CashPayment builds the Cash variant.
func CashPayment() Payment {
	return Payment{Type: PaymentCash}
}

// LoanPayment builds the Loan variant with its status.
func LoanPayment(status LoanStatus) Payment {
	return Payment{Type: PaymentLoan, LoanStatus: &status}
}

// BankPayment builds the BankTransfer variant with its bank details.
func BankPayment(bankName, bankAccount string) Payment {
	return Payment{Type: PaymentBankTransfer, BankName: &bankName, BankAccount: &bankAccount}
}

// Realised reports whether the sale's amount counts as realized revenue.
// Cash and BankTransfer count in full; a Loan counts only once Paid.
// Unpaid loans are receivables, not revenue.
func (p Payment) Realised() bool {
	switch p.Type {
	case PaymentCash, PaymentBankTransfer:
		return true
	case PaymentLoan:
		return p.LoanStatus != nil && *p.LoanStatus == LoanPaid
	default:
		return false
	}
}

// Validate enforces that each variant carries exactly its own fields.
func (p Payment) Validate() error {
	switch p.Type {
	case PaymentCash:
		if p.LoanStatus != nil || p.BankName != nil || p.BankAccount != nil {
			return apperror.NewValidation("cash sale must not carry loan or bank fields")
		}
	case PaymentLoan:
		if p.LoanStatus == nil {
			return apperror.NewValidation("loan sale requires a loan status").WithDetail("field", "loanStatus")
		}
		if *p.LoanStatus != LoanPaid && *p.LoanStatus != LoanUnpaid {
			return apperror.NewValidation("unknown loan status").
				WithDetail("field", "loanStatus").
				WithDetail("value", string(*p.LoanStatus))
		}
		if p.BankName != nil || p.BankAccount != nil {
			return apperror.NewValidation("loan sale must not carry bank fields")
		}
	case PaymentBankTransfer:
		if p.BankName == nil || *p.BankName == "" {
			return apperror.NewValidation("bank transfer requires a bank name").WithDetail("field", "bankName")
		}
		if p.BankAccount == nil || *p.BankAccount == "" {
			return apperror.NewValidation("bank transfer requires a bank account").WithDetail("field", "bankAccount")
		}
		if p.LoanStatus != nil {
			return apperror.NewValidation("bank transfer must not carry a loan status")
		}
	default:
		return apperror.NewValidation("unknown payment type").
			WithDetail("field", "paymentType").
			WithDetail("value", string(p.Type))
	}
	return nil
}

// Sale records one rice sale to a customer.
type Sale struct {
	entity.Record

	Date       types.Date      `db:"date" json:"date"`
	Customer   string          `db:"customer" json:"customer"`
	Phone      *string         `db:"phone" json:"phone,omitempty"`
	RiceType   RiceType        `db:"rice_type" json:"riceType"`
	QuantityKg types.Kilograms `db:"quantity" json:"quantityKg"`
	Amount     types.Money     `db:"amount" json:"amount"`

	Payment
}

// New creates a sale with a generated id.
func New(date types.Date, customer string, riceType RiceType, quantityKg types.Kilograms, amount types.Money, payment Payment) *Sale {
	return &Sale{
		Record:     entity.NewRecord(),
		Date:       date,
		Customer:   customer,
		RiceType:   riceType,
		QuantityKg: quantityKg,
		Amount:     amount,
		Payment:    payment,
	}
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if s.Date.IsZero() {
		return apperror.NewValidation("date is required").WithDetail("field", "date")
	}
	if s.Customer == "" {
		return apperror.NewValidation("customer is required").WithDetail("field", "customer")
	}
	if !s.RiceType.Valid() {
		return apperror.NewValidation("unknown rice type").
			WithDetail("field", "riceType").
			WithDetail("value", string(s.RiceType))
	}
	if s.QuantityKg.IsNegative() {
		return apperror.NewValidation("quantity must not be negative").WithDetail("field", "quantityKg")
	}
	if s.Amount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").WithDetail("field", "amount")
	}
	return s.Payment.Validate()
}
