// Package purchase provides the paddy purchase record.
package purchase

import (
	"context"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/types"
)

// PaddyType enumerates the paddy varieties the mill buys.
type PaddyType string

const (
	PaddyNadu  PaddyType = "Nadu"
	PaddySamba PaddyType = "Samba"
	PaddyBPT   PaddyType = "BPT"
	PaddyIR20  PaddyType = "IR20"
	PaddyOther PaddyType = "Other"
)

// PaddyTypes lists every valid paddy variety.
var PaddyTypes = []PaddyType{PaddyNadu, PaddySamba, PaddyBPT, PaddyIR20, PaddyOther}

// Valid reports whether the value is a known paddy variety.
func (p PaddyType) Valid() bool {
	for _, known := range PaddyTypes {
		if p == known {
			return true
		}
	}
	return false
}

// Purchase records one paddy intake from a supplier. Quantity and amount
// are entered independently: no unit price is derived or enforced.
type Purchase struct {
	entity.Record

	Date        types.Date      `db:"date" json:"date"`
	Supplier    string          `db:"supplier" json:"supplier"`
	PaddyType   PaddyType       `db:"paddy_type" json:"paddyType"`
	QuantityKg  types.Kilograms `db:"quantity_kg" json:"quantityKg"`
	TotalAmount types.Money     `db:"total_amount" json:"totalAmount"`
}

// New creates a purchase with a generated id.
func New(date types.Date, supplier string, paddyType PaddyType, quantityKg types.Kilograms, totalAmount types.Money) *Purchase {
	return &Purchase{
		Record:      entity.NewRecord(),
		Date:        date,
		Supplier:    supplier,
		PaddyType:   paddyType,
		QuantityKg:  quantityKg,
		TotalAmount: totalAmount,
	}
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if p.Date.IsZero() {
		return apperror.NewValidation("date is required").WithDetail("field", "date")
	}
	if p.Supplier == "" {
		return apperror.NewValidation("supplier is required").WithDetail("field", "supplier")
	}
	if !p.PaddyType.Valid() {
		return apperror.NewValidation("unknown paddy type").
			WithDetail("field", "paddyType").
			WithDetail("value", string(p.PaddyType))
	}
	if p.QuantityKg.IsNegative() {
		return apperror.NewValidation("quantity must not be negative").WithDetail("field", "quantityKg")
	}
	if p.TotalAmount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").WithDetail("field", "totalAmount")
	}
	return nil
}
