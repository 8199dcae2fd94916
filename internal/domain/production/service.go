package production

import (
	"context"
	"fmt"

	"ricemill/internal/core/id"
	"ricemill/internal/core/tx"
	"ricemill/internal/domain/period"
)

// Service provides milling run operations. The derived yield field is
// always recomputed before a write so that stored values match the rule.
type Service struct {
	repo Repository
	txm  tx.Manager
}

// NewService creates a production service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{repo: repo, txm: txm}
}

// List returns runs for the optional month range, newest first.
func (s *Service) List(ctx context.Context, rng *period.Range) ([]Run, error) {
	return s.repo.List(ctx, rng)
}

// GetByID returns one run.
func (s *Service) GetByID(ctx context.Context, recID id.ID) (*Run, error) {
	return s.repo.GetByID(ctx, recID)
}

// Create validates, derives the yield and inserts a run.
func (s *Service) Create(ctx context.Context, rec *Run) error {
	if err := rec.Validate(ctx); err != nil {
		return err
	}
	rec.RecalculateYield()
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, rec); err != nil {
			return fmt.Errorf("create production run: %w", err)
		}
		return nil
	})
}

// Update validates, re-derives the yield and replaces a run's fields.
func (s *Service) Update(ctx context.Context, rec *Run) error {
	if err := rec.Validate(ctx); err != nil {
		return err
	}
	rec.RecalculateYield()
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, rec); err != nil {
			return fmt.Errorf("update production run: %w", err)
		}
		return nil
	})
}

// Delete removes a run.
func (s *Service) Delete(ctx context.Context, recID id.ID) error {
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, recID); err != nil {
			return fmt.Errorf("delete production run: %w", err)
		}
		return nil
	})
}
