package record_repo

import (
	"context"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/period"
	"ricemill/internal/domain/production"
	"ricemill/internal/infrastructure/storage/postgres"
)

const productionTable = "production_runs"

var productionCols = []string{
	"id", "date", "paddy_type", "input_paddy", "rice_output", "yield_percentage",
	"created_at", "updated_at",
}

// ProductionRepo implements production.Repository.
type ProductionRepo struct {
	baseRepo
}

// NewProductionRepo creates a new production run repository.
func NewProductionRepo(txm *postgres.TxManager) *ProductionRepo {
	return &ProductionRepo{baseRepo: newBaseRepo(txm, productionTable, productionCols)}
}

var _ production.Repository = (*ProductionRepo)(nil)

func (r *ProductionRepo) List(ctx context.Context, rng *period.Range) ([]production.Run, error) {
	q := r.whereRange(r.baseSelect(), rng)
	recs := make([]production.Run, 0)
	if err := r.selectInto(ctx, q, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *ProductionRepo) GetByID(ctx context.Context, recID id.ID) (*production.Run, error) {
	var rec production.Run
	if err := r.getInto(ctx, "production run", recID, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ProductionRepo) Create(ctx context.Context, rec *production.Run) error {
	data := map[string]any{
		"id":               rec.ID,
		"date":             rec.Date,
		"paddy_type":       rec.PaddyType,
		"input_paddy":      rec.InputPaddy,
		"rice_output":      rec.RiceOutput,
		"yield_percentage": rec.YieldPercent,
	}
	return r.insert(ctx, data, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *ProductionRepo) Update(ctx context.Context, rec *production.Run) error {
	data := map[string]any{
		"date":             rec.Date,
		"paddy_type":       rec.PaddyType,
		"input_paddy":      rec.InputPaddy,
		"rice_output":      rec.RiceOutput,
		"yield_percentage": rec.YieldPercent,
	}
	return r.update(ctx, "production run", rec.ID, data, &rec.UpdatedAt)
}

func (r *ProductionRepo) Delete(ctx context.Context, recID id.ID) error {
	return r.delete(ctx, "production run", recID)
}
