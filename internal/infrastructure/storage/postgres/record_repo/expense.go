package record_repo

import (
	"context"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/expense"
	"ricemill/internal/domain/period"
	"ricemill/internal/infrastructure/storage/postgres"
)

const expenseTable = "expenses"

var expenseCols = []string{
	"id", "date", "category", "description", "amount",
	"created_at", "updated_at",
}

// ExpenseRepo implements expense.Repository.
type ExpenseRepo struct {
	baseRepo
}

// NewExpenseRepo creates a new expense repository.
func NewExpenseRepo(txm *postgres.TxManager) *ExpenseRepo {
	return &ExpenseRepo{baseRepo: newBaseRepo(txm, expenseTable, expenseCols)}
}

var _ expense.Repository = (*ExpenseRepo)(nil)

func (r *ExpenseRepo) List(ctx context.Context, rng *period.Range) ([]expense.Expense, error) {
	q := r.whereRange(r.baseSelect(), rng)
	recs := make([]expense.Expense, 0)
	if err := r.selectInto(ctx, q, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *ExpenseRepo) GetByID(ctx context.Context, recID id.ID) (*expense.Expense, error) {
	var rec expense.Expense
	if err := r.getInto(ctx, "expense", recID, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ExpenseRepo) Create(ctx context.Context, rec *expense.Expense) error {
	data := map[string]any{
		"id":          rec.ID,
		"date":        rec.Date,
		"category":    rec.Category,
		"description": rec.Description,
		"amount":      rec.Amount,
	}
	return r.insert(ctx, data, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *ExpenseRepo) Update(ctx context.Context, rec *expense.Expense) error {
	data := map[string]any{
		"date":        rec.Date,
		"category":    rec.Category,
		"description": rec.Description,
		"amount":      rec.Amount,
	}
	return r.update(ctx, "expense", rec.ID, data, &rec.UpdatedAt)
}

func (r *ExpenseRepo) Delete(ctx context.Context, recID id.ID) error {
	return r.delete(ctx, "expense", recID)
}
