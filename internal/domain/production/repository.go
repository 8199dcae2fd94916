package production

import (
	"context"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/period"
)

// Repository defines storage operations for milling runs.
type Repository interface {
	// List returns runs within the range (nil = all), newest date first.
	List(ctx context.Context, rng *period.Range) ([]Run, error)

	GetByID(ctx context.Context, recID id.ID) (*Run, error)
	Create(ctx context.Context, rec *Run) error
	Update(ctx context.Context, rec *Run) error
	Delete(ctx context.Context, recID id.ID) error
}
