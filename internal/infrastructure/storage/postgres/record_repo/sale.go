package record_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/sale"
	"ricemill/internal/infrastructure/storage/postgres"
)

const saleTable = "sales"

var saleCols = []string{
	"id", "date", "customer", "phone", "rice_type", "quantity", "amount",
	"payment_type", "loan_status", "bank_name", "bank_account",
	"created_at", "updated_at",
}

// SaleRepo implements sale.Repository.
type SaleRepo struct {
	baseRepo
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txm *postgres.TxManager) *SaleRepo {
	return &SaleRepo{baseRepo: newBaseRepo(txm, saleTable, saleCols)}
}

var _ sale.Repository = (*SaleRepo)(nil)

func (r *SaleRepo) List(ctx context.Context, filter sale.Filter) ([]sale.Sale, error) {
	q := r.whereRange(r.baseSelect(), filter.Range)
	if filter.PaymentType != nil {
		q = q.Where(squirrel.Eq{"payment_type": *filter.PaymentType})
	}
	recs := make([]sale.Sale, 0)
	if err := r.selectInto(ctx, q, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *SaleRepo) GetByID(ctx context.Context, recID id.ID) (*sale.Sale, error) {
	var rec sale.Sale
	if err := r.getInto(ctx, "sale", recID, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *SaleRepo) Create(ctx context.Context, rec *sale.Sale) error {
	return r.insert(ctx, r.rowData(rec, true), &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *SaleRepo) Update(ctx context.Context, rec *sale.Sale) error {
	return r.update(ctx, "sale", rec.ID, r.rowData(rec, false), &rec.UpdatedAt)
}

func (r *SaleRepo) Delete(ctx context.Context, recID id.ID) error {
	return r.delete(ctx, "sale", recID)
}

// rowData flattens the sale including its payment variant. Variant fields
// not belonging to the payment type are nil and stored as NULL.
func (r *SaleRepo) rowData(rec *sale.Sale, withID bool) map[string]any {
	data := map[string]any{
		"date":         rec.Date,
		"customer":     rec.Customer,
		"phone":        rec.Phone,
		"rice_type":    rec.RiceType,
		"quantity":     rec.QuantityKg,
		"amount":       rec.Amount,
		"payment_type": rec.Type,
		"loan_status":  rec.LoanStatus,
		"bank_name":    rec.BankName,
		"bank_account": rec.BankAccount,
	}
	if withID {
		data["id"] = rec.ID
	}
	return data
}
