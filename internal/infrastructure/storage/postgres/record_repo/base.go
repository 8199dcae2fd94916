// Package record_repo provides PostgreSQL repositories for the four
// record kinds. Each table follows the same shape: UUID key, a DATE
// business date the listings and summaries filter on, and store-assigned
// created_at/updated_at timestamps.
package record_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/id"
	"ricemill/internal/domain/period"
	"ricemill/internal/infrastructure/storage/postgres"
)

// baseRepo carries the query plumbing shared by the record repositories.
type baseRepo struct {
	txm   *postgres.TxManager
	table string
	cols  []string
}

func newBaseRepo(txm *postgres.TxManager, table string, cols []string) baseRepo {
	return baseRepo{txm: txm, table: table, cols: cols}
}

// Builder returns a squirrel builder with PostgreSQL placeholders.
func (r *baseRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// baseSelect lists newest business date first; ties break on insertion order.
func (r *baseRepo) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.cols...).
		From(r.table).
		OrderBy("date DESC", "created_at DESC")
}

// whereRange bounds the business date, both ends inclusive.
func (r *baseRepo) whereRange(q squirrel.SelectBuilder, rng *period.Range) squirrel.SelectBuilder {
	if rng == nil {
		return q
	}
	return q.
		Where(squirrel.GtOrEq{"date": rng.Start}).
		Where(squirrel.LtOrEq{"date": rng.End})
}

// selectInto builds and runs q, scanning all rows into dest.
func (r *baseRepo) selectInto(ctx context.Context, q squirrel.SelectBuilder, dest any) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build select: %w", err)
	}
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, dest, sql, args...); err != nil {
		return fmt.Errorf("select %s: %w", r.table, err)
	}
	return nil
}

// getInto scans a single row by primary key into dest.
func (r *baseRepo) getInto(ctx context.Context, kind string, recID id.ID, dest any) error {
	q := r.Builder().
		Select(r.cols...).
		From(r.table).
		Where(squirrel.Eq{"id": recID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build select: %w", err)
	}
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, dest, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewNotFound(kind, recID.String())
		}
		return fmt.Errorf("get %s: %w", r.table, err)
	}
	return nil
}

// insert runs the insert and scans back the store-assigned timestamps.
func (r *baseRepo) insert(ctx context.Context, data map[string]any, createdAt, updatedAt any) error {
	q := r.Builder().
		Insert(r.table).
		SetMap(data).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(createdAt, updatedAt); err != nil {
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// update replaces the mutable columns and refreshes updated_at.
func (r *baseRepo) update(ctx context.Context, kind string, recID id.ID, data map[string]any, updatedAt any) error {
	q := r.Builder().
		Update(r.table).
		SetMap(data).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": recID}).
		Suffix("RETURNING updated_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewNotFound(kind, recID.String())
		}
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	return nil
}

// delete removes the row by primary key.
func (r *baseRepo) delete(ctx context.Context, kind string, recID id.ID) error {
	q := r.Builder().
		Delete(r.table).
		Where(squirrel.Eq{"id": recID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	querier := r.txm.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(kind, recID.String())
	}
	return nil
}
