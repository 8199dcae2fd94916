// Package expense provides the operating expense record.
package expense

import (
	"context"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/types"
)

// Category enumerates the closed list of expense categories. Milling
// labor is logged here, not attributed per production run.
type Category string

const (
	CategoryLabor          Category = "Labor"
	CategoryElectricity    Category = "Electricity"
	CategoryMaintenance    Category = "Maintenance"
	CategoryTransportation Category = "Transportation"
	CategoryPackaging      Category = "Packaging"
	CategoryAdministrative Category = "Administrative"
	CategoryRent           Category = "Rent"
	CategoryOther          Category = "Other"
)

// Categories lists every valid expense category.
var Categories = []Category{
	CategoryLabor,
	CategoryElectricity,
	CategoryMaintenance,
	CategoryTransportation,
	CategoryPackaging,
	CategoryAdministrative,
	CategoryRent,
	CategoryOther,
}

// Valid reports whether the value is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense records one operating expense.
type Expense struct {
	entity.Record

	Date        types.Date  `db:"date" json:"date"`
	Category    Category    `db:"category" json:"category"`
	Description *string     `db:"description" json:"description,omitempty"`
	Amount      types.Money `db:"amount" json:"amount"`
}

// New creates an expense with a generated id.
func New(date types.Date, category Category, description *string, amount types.Money) *Expense {
	return &Expense{
		Record:      entity.NewRecord(),
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
	}
}

// Validate implements entity.Validatable.
func (e *Expense) Validate(ctx context.Context) error {
	if e.Date.IsZero() {
		return apperror.NewValidation("date is required").WithDetail("field", "date")
	}
	if !e.Category.Valid() {
		return apperror.NewValidation("unknown expense category").
			WithDetail("field", "category").
			WithDetail("value", string(e.Category))
	}
	if e.Amount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").WithDetail("field", "amount")
	}
	return nil
}
