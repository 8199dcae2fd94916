package record_repo

import (
	"context"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/period"
	"ricemill/internal/domain/purchase"
	"ricemill/internal/infrastructure/storage/postgres"
)

const purchaseTable = "purchases"

var purchaseCols = []string{
	"id", "date", "supplier", "paddy_type", "quantity_kg", "total_amount",
	"created_at", "updated_at",
}

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	baseRepo
}

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txm *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{baseRepo: newBaseRepo(txm, purchaseTable, purchaseCols)}
}

var _ purchase.Repository = (*PurchaseRepo)(nil)

func (r *PurchaseRepo) List(ctx context.Context, rng *period.Range) ([]purchase.Purchase, error) {
	q := r.whereRange(r.baseSelect(), rng)
	recs := make([]purchase.Purchase, 0)
	if err := r.selectInto(ctx, q, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *PurchaseRepo) GetByID(ctx context.Context, recID id.ID) (*purchase.Purchase, error) {
	var rec purchase.Purchase
	if err := r.getInto(ctx, "purchase", recID, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PurchaseRepo) Create(ctx context.Context, rec *purchase.Purchase) error {
	data := map[string]any{
		"id":           rec.ID,
		"date":         rec.Date,
		"supplier":     rec.Supplier,
		"paddy_type":   rec.PaddyType,
		"quantity_kg":  rec.QuantityKg,
		"total_amount": rec.TotalAmount,
	}
	return r.insert(ctx, data, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *PurchaseRepo) Update(ctx context.Context, rec *purchase.Purchase) error {
	data := map[string]any{
		"date":         rec.Date,
		"supplier":     rec.Supplier,
		"paddy_type":   rec.PaddyType,
		"quantity_kg":  rec.QuantityKg,
		"total_amount": rec.TotalAmount,
	}
	return r.update(ctx, "purchase", rec.ID, data, &rec.UpdatedAt)
}

func (r *PurchaseRepo) Delete(ctx context.Context, recID id.ID) error {
	return r.delete(ctx, "purchase", recID)
}
