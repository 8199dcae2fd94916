// Package tx defines the transaction management contract. Domain services
// depend on this interface; the implementation lives in
// infrastructure/storage/postgres.
package tx

import (
	"context"
)

// Manager runs functions inside a database transaction.
type Manager interface {
	// RunInTransaction executes fn within a transaction. An error from fn
	// rolls the transaction back; success commits it. Nested calls reuse
	// the transaction already on the context.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
