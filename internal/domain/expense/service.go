package expense

import (
	"context"
	"fmt"

	"ricemill/internal/core/id"
	"ricemill/internal/core/tx"
	"ricemill/internal/domain/period"
)

// Service provides expense operations.
type Service struct {
	repo Repository
	txm  tx.Manager
}

// NewService creates an expense service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{repo: repo, txm: txm}
}

// List returns expenses for the optional month range, newest first.
func (s *Service) List(ctx context.Context, rng *period.Range) ([]Expense, error) {
	return s.repo.List(ctx, rng)
}

// GetByID returns one expense.
func (s *Service) GetByID(ctx context.Context, recID id.ID) (*Expense, error) {
	return s.repo.GetByID(ctx, recID)
}

// Create validates and inserts an expense.
func (s *Service) Create(ctx context.Context, rec *Expense) error {
	if err := rec.Validate(ctx); err != nil {
		return err
	}
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, rec); err != nil {
			return fmt.Errorf("create expense: %w", err)
		}
		return nil
	})
}

// Update validates and replaces an expense's mutable fields.
func (s *Service) Update(ctx context.Context, rec *Expense) error {
	if err := rec.Validate(ctx); err != nil {
		return err
	}
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, rec); err != nil {
			return fmt.Errorf("update expense: %w", err)
		}
		return nil
	})
}

// Delete removes an expense.
func (s *Service) Delete(ctx context.Context, recID id.ID) error {
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, recID); err != nil {
			return fmt.Errorf("delete expense: %w", err)
		}
		return nil
	})
}
