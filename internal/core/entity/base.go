// Package entity provides the base record type shared by all stored kinds.
package entity

import (
	"context"
	"time"

	"ricemill/internal/core/id"
)

// Validatable is implemented by records that check their own invariants
// (without database access).
type Validatable interface {
	// Validate returns nil if the record is well-formed, an AppError
	// with details otherwise.
	Validate(ctx context.Context) error
}

// Record holds the fields every stored kind shares: a generated identity
// and store-assigned audit timestamps. The timestamps are written by the
// database (insert default, update trigger in the repository) and are
// immutable from the domain's perspective.
type Record struct {
	ID        id.ID     `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewRecord creates a Record with a generated id. Timestamps are left for
// the store to assign.
func NewRecord() Record {
	return Record{ID: id.New()}
}
