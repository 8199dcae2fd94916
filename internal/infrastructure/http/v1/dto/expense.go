package dto

import (
	"github.com/shopspring/decimal"

	"ricemill/internal/core/types"
	"ricemill/internal/domain/expense"
)

// CreateExpenseRequest is the request body for recording an expense.
type CreateExpenseRequest struct {
	Date        types.Date       `json:"date" binding:"required"`
	Category    expense.Category `json:"category" binding:"required"`
	Description *string          `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreateExpenseRequest) ToEntity() *expense.Expense {
	return expense.New(r.Date, r.Category, r.Description, r.Amount)
}

// UpdateExpenseRequest carries a partial update. Omitted fields keep
// their stored values.
type UpdateExpenseRequest struct {
	Date        *types.Date       `json:"date"`
	Category    *expense.Category `json:"category"`
	Description *string           `json:"description"`
	Amount      *decimal.Decimal  `json:"amount"`
}

// ApplyTo applies the present fields to an existing entity.
func (r *UpdateExpenseRequest) ApplyTo(rec *expense.Expense) {
	if r.Date != nil {
		rec.Date = *r.Date
	}
	if r.Category != nil {
		rec.Category = *r.Category
	}
	if r.Description != nil {
		rec.Description = r.Description
	}
	if r.Amount != nil {
		rec.Amount = *r.Amount
	}
}
