package purchase

import (
	"context"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/period"
)

// Repository defines storage operations for purchases.
type Repository interface {
	// List returns purchases within the range (nil = all), newest date first.
	List(ctx context.Context, rng *period.Range) ([]Purchase, error)

	GetByID(ctx context.Context, recID id.ID) (*Purchase, error)
	Create(ctx context.Context, rec *Purchase) error
	Update(ctx context.Context, rec *Purchase) error
	Delete(ctx context.Context, recID id.ID) error
}
