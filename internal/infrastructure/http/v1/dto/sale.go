package dto

import (
	"github.com/shopspring/decimal"

	"ricemill/internal/core/types"
	"ricemill/internal/domain/sale"
)

// CreateSaleRequest is the request body for recording a rice sale. The
// payment fields form a variant: loanStatus only with Loan, bank details
// only with BankTransfer. Sale.Validate enforces the pairing.
type CreateSaleRequest struct {
	Date        types.Date       `json:"date" binding:"required"`
	Customer    string           `json:"customer" binding:"required"`
	Phone       *string          `json:"phone"`
	RiceType    sale.RiceType    `json:"riceType" binding:"required"`
	QuantityKg  decimal.Decimal  `json:"quantityKg"`
	Amount      decimal.Decimal  `json:"amount"`
	PaymentType sale.PaymentType `json:"paymentType" binding:"required"`
	LoanStatus  *sale.LoanStatus `json:"loanStatus"`
	BankName    *string          `json:"bankName"`
	BankAccount *string          `json:"bankAccount"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreateSaleRequest) ToEntity() *sale.Sale {
	payment := sale.Payment{
		Type:        r.PaymentType,
		LoanStatus:  r.LoanStatus,
		BankName:    r.BankName,
		BankAccount: r.BankAccount,
	}
	rec := sale.New(r.Date, r.Customer, r.RiceType, r.QuantityKg, r.Amount, payment)
	rec.Phone = r.Phone
	return rec
}

// UpdateSaleRequest carries a partial update. Supplying a payment type
// replaces the whole payment variant.
type UpdateSaleRequest struct {
	Date        *types.Date       `json:"date"`
	Customer    *string           `json:"customer"`
	Phone       *string           `json:"phone"`
	RiceType    *sale.RiceType    `json:"riceType"`
	QuantityKg  *decimal.Decimal  `json:"quantityKg"`
	Amount      *decimal.Decimal  `json:"amount"`
	PaymentType *sale.PaymentType `json:"paymentType"`
	LoanStatus  *sale.LoanStatus  `json:"loanStatus"`
	BankName    *string           `json:"bankName"`
	BankAccount *string           `json:"bankAccount"`
}

// ApplyTo applies the present fields to an existing entity.
func (r *UpdateSaleRequest) ApplyTo(rec *sale.Sale) {
	if r.Date != nil {
		rec.Date = *r.Date
	}
	if r.Customer != nil {
		rec.Customer = *r.Customer
	}
	if r.Phone != nil {
		rec.Phone = r.Phone
	}
	if r.RiceType != nil {
		rec.RiceType = *r.RiceType
	}
	if r.QuantityKg != nil {
		rec.QuantityKg = *r.QuantityKg
	}
	if r.Amount != nil {
		rec.Amount = *r.Amount
	}
	if r.PaymentType != nil {
		rec.Payment = sale.Payment{
			Type:        *r.PaymentType,
			LoanStatus:  r.LoanStatus,
			BankName:    r.BankName,
			BankAccount: r.BankAccount,
		}
		return
	}
	// Loan status can flip Paid/Unpaid without resending the variant.
	if r.LoanStatus != nil {
		rec.LoanStatus = r.LoanStatus
	}
}
