// Package production provides the milling run record and the yield rule.
package production

import (
	"context"

	"github.com/shopspring/decimal"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/types"
	"ricemill/internal/domain/purchase"
)

var hundred = decimal.NewFromInt(100)

// Run records one milling run: paddy in, rice out.
type Run struct {
	entity.Record

	Date       types.Date         `db:"date" json:"date"`
	PaddyType  purchase.PaddyType `db:"paddy_type" json:"paddyType"`
	InputPaddy types.Kilograms    `db:"input_paddy" json:"inputPaddy"`
	RiceOutput types.Kilograms    `db:"rice_output" json:"riceOutput"`

	// YieldPercent is derived from input/output. Nullable in storage:
	// older rows may lack it, in which case Yield() recomputes on read.
	YieldPercent *decimal.Decimal `db:"yield_percentage" json:"yieldPercent,omitempty"`
}

// New creates a run with a generated id and a computed yield.
func New(date types.Date, paddyType purchase.PaddyType, inputPaddy, riceOutput types.Kilograms) *Run {
	r := &Run{
		Record:     entity.NewRecord(),
		Date:       date,
		PaddyType:  paddyType,
		InputPaddy: inputPaddy,
		RiceOutput: riceOutput,
	}
	r.RecalculateYield()
	return r
}

// Yield returns the run's yield percentage, recomputing when the stored
// derived field is absent.
func (r *Run) Yield() decimal.Decimal {
	if r.YieldPercent != nil {
		return *r.YieldPercent
	}
	return YieldPercent(r.InputPaddy, r.RiceOutput)
}

// RecalculateYield refreshes the derived field from input/output.
func (r *Run) RecalculateYield() {
	y := YieldPercent(r.InputPaddy, r.RiceOutput)
	r.YieldPercent = &y
}

// Validate implements entity.Validatable.
func (r *Run) Validate(ctx context.Context) error {
	if r.Date.IsZero() {
		return apperror.NewValidation("date is required").WithDetail("field", "date")
	}
	if !r.PaddyType.Valid() {
		return apperror.NewValidation("unknown paddy type").
			WithDetail("field", "paddyType").
			WithDetail("value", string(r.PaddyType))
	}
	if r.InputPaddy.IsNegative() {
		return apperror.NewValidation("input paddy must not be negative").WithDetail("field", "inputPaddy")
	}
	if r.RiceOutput.IsNegative() {
		return apperror.NewValidation("rice output must not be negative").WithDetail("field", "riceOutput")
	}
	return nil
}

// YieldPercent computes output/input*100 rounded to 2 decimals. A zero,
// missing or non-positive input yields exactly 0.00: never a division
// error, never NaN. The same rule serves entry-time previews and stored
// rows that lack the derived field.
func YieldPercent(inputPaddy, riceOutput types.Kilograms) decimal.Decimal {
	if !inputPaddy.IsPositive() {
		return decimal.Zero
	}
	// DivRound at a higher scale first so the final Round half-up lands
	// on the conventional value.
	return riceOutput.DivRound(inputPaddy, 8).Mul(hundred).Round(2)
}
