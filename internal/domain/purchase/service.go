package purchase

import (
	"context"
	"fmt"

	"ricemill/internal/core/id"
	"ricemill/internal/core/tx"
	"ricemill/internal/domain/period"
)

// Service provides purchase operations.
type Service struct {
	repo Repository
	txm  tx.Manager
}

// NewService creates a purchase service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{repo: repo, txm: txm}
}

// List returns purchases for the optional month range, newest first.
func (s *Service) List(ctx context.Context, rng *period.Range) ([]Purchase, error) {
	return s.repo.List(ctx, rng)
}

// GetByID returns one purchase.
func (s *Service) GetByID(ctx context.Context, recID id.ID) (*Purchase, error) {
	return s.repo.GetByID(ctx, recID)
}

// Create validates and inserts a purchase.
func (s *Service) Create(ctx context.Context, rec *Purchase) error {
	if err := rec.Validate(ctx); err != nil {
		return err
	}
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, rec); err != nil {
			return fmt.Errorf("create purchase: %w", err)
		}
		return nil
	})
}

// Update validates and replaces a purchase's mutable fields.
func (s *Service) Update(ctx context.Context, rec *Purchase) error {
	if err := rec.Validate(ctx); err != nil {
		return err
	}
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, rec); err != nil {
			return fmt.Errorf("update purchase: %w", err)
		}
		return nil
	})
}

// Delete removes a purchase.
func (s *Service) Delete(ctx context.Context, recID id.ID) error {
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, recID); err != nil {
			return fmt.Errorf("delete purchase: %w", err)
		}
		return nil
	})
}
