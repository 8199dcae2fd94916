package dto

import (
	"github.com/shopspring/decimal"

	"ricemill/internal/core/types"
	"ricemill/internal/domain/production"
	"ricemill/internal/domain/purchase"
)

// CreateProductionRequest is the request body for recording a milling run.
// The yield percentage is derived server-side and cannot be supplied.
type CreateProductionRequest struct {
	Date       types.Date         `json:"date" binding:"required"`
	PaddyType  purchase.PaddyType `json:"paddyType" binding:"required"`
	InputPaddy decimal.Decimal    `json:"inputPaddy"`
	RiceOutput decimal.Decimal    `json:"riceOutput"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreateProductionRequest) ToEntity() *production.Run {
	return production.New(r.Date, r.PaddyType, r.InputPaddy, r.RiceOutput)
}

// UpdateProductionRequest carries a partial update. Omitted fields keep
// their stored values; the yield is recomputed from the result.
type UpdateProductionRequest struct {
	Date       *types.Date         `json:"date"`
	PaddyType  *purchase.PaddyType `json:"paddyType"`
	InputPaddy *decimal.Decimal    `json:"inputPaddy"`
	RiceOutput *decimal.Decimal    `json:"riceOutput"`
}

// ApplyTo applies the present fields to an existing entity.
func (r *UpdateProductionRequest) ApplyTo(rec *production.Run) {
	if r.Date != nil {
		rec.Date = *r.Date
	}
	if r.PaddyType != nil {
		rec.PaddyType = *r.PaddyType
	}
	if r.InputPaddy != nil {
		rec.InputPaddy = *r.InputPaddy
	}
	if r.RiceOutput != nil {
		rec.RiceOutput = *r.RiceOutput
	}
}
