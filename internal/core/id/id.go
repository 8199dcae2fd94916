// Package id provides UUIDv7 identifiers for all stored records.
// UUIDv7 embeds the creation timestamp, so ids sort chronologically.
package id

import (
	"github.com/google/uuid"
)

// ID is the identifier type shared by every record kind.
type ID = uuid.UUID

// New generates a time-ordered UUIDv7.
func New() ID {
	v7, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does; fall back to V4.
		return uuid.New()
	}
	return v7
}

// Parse validates and converts a string to an ID.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts a string to an ID, panicking on error. Tests only.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// IsNil reports whether the id is the zero UUID.
func IsNil(v ID) bool {
	return v == uuid.Nil
}
