package dto

import (
	"github.com/shopspring/decimal"

	"ricemill/internal/core/types"
	"ricemill/internal/domain/purchase"
)

// CreatePurchaseRequest is the request body for recording a paddy purchase.
type CreatePurchaseRequest struct {
	Date        types.Date         `json:"date" binding:"required"`
	Supplier    string             `json:"supplier" binding:"required"`
	PaddyType   purchase.PaddyType `json:"paddyType" binding:"required"`
	QuantityKg  decimal.Decimal    `json:"quantityKg"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
}

// ToEntity converts the DTO to a domain entity.
func (r *CreatePurchaseRequest) ToEntity() *purchase.Purchase {
	return purchase.New(r.Date, r.Supplier, r.PaddyType, r.QuantityKg, r.TotalAmount)
}

// UpdatePurchaseRequest carries a partial update. Omitted fields keep
// their stored values.
type UpdatePurchaseRequest struct {
	Date        *types.Date         `json:"date"`
	Supplier    *string             `json:"supplier"`
	PaddyType   *purchase.PaddyType `json:"paddyType"`
	QuantityKg  *decimal.Decimal    `json:"quantityKg"`
	TotalAmount *decimal.Decimal    `json:"totalAmount"`
}

// ApplyTo applies the present fields to an existing entity.
func (r *UpdatePurchaseRequest) ApplyTo(rec *purchase.Purchase) {
	if r.Date != nil {
		rec.Date = *r.Date
	}
	if r.Supplier != nil {
		rec.Supplier = *r.Supplier
	}
	if r.PaddyType != nil {
		rec.PaddyType = *r.PaddyType
	}
	if r.QuantityKg != nil {
		rec.QuantityKg = *r.QuantityKg
	}
	if r.TotalAmount != nil {
		rec.TotalAmount = *r.TotalAmount
	}
}
