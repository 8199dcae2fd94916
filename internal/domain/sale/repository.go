package sale

import (
	"context"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/period"
)

// Filter narrows the sales listing. Both criteria are optional; the range
// is the same month range applied to every other record kind.
type Filter struct {
	Range       *period.Range
	PaymentType *PaymentType
}

// Repository defines storage operations for sales.
type Repository interface {
	// List returns matching sales, newest date first.
	List(ctx context.Context, filter Filter) ([]Sale, error)

	GetByID(ctx context.Context, recID id.ID) (*Sale, error)
	Create(ctx context.Context, rec *Sale) error
	Update(ctx context.Context, rec *Sale) error
	Delete(ctx context.Context, recID id.ID) error
}
