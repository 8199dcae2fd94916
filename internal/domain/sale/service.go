package sale

import (
	"context"
	"fmt"

	"ricemill/internal/core/id"
	"ricemill/internal/core/tx"
)

// Service provides sale operations.
type Service struct {
	repo Repository
	txm  tx.Manager
}

// NewService creates a sale service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{repo: repo, txm: txm}
}

// List returns sales matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter Filter) ([]Sale, error) {
	return s.repo.List(ctx, filter)
}

// GetByID returns one sale.
func (s *Service) GetByID(ctx context.Context, recID id.ID) (*Sale, error) {
	return s.repo.GetByID(ctx, recID)
}

// Create validates and inserts a sale.
func (s *Service) Create(ctx context.Context, rec *Sale) error {
	if err := rec.Validate(ctx); err != nil {
		return err
	}
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, rec); err != nil {
			return fmt.Errorf("create sale: %w", err)
		}
		return nil
	})
}

// Update validates and replaces a sale's mutable fields.
func (s *Service) Update(ctx context.Context, rec *Sale) error {
	if err := rec.Validate(ctx); err != nil {
		return err
	}
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, rec); err != nil {
			return fmt.Errorf("update sale: %w", err)
		}
		return nil
	})
}

// Delete removes a sale.
func (s *Service) Delete(ctx context.Context, recID id.ID) error {
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, recID); err != nil {
			return fmt.Errorf("delete sale: %w", err)
		}
		return nil
	})
}
