package expense

import (
	"context"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/period"
)

// Repository defines storage operations for expenses.
type Repository interface {
	// List returns expenses within the range (nil = all), newest date first.
	List(ctx context.Context, rng *period.Range) ([]Expense, error)

	GetByID(ctx context.Context, recID id.ID) (*Expense, error)
	Create(ctx context.Context, rec *Expense) error
	Update(ctx context.Context, rec *Expense) error
	Delete(ctx context.Context, recID id.ID) error
}
