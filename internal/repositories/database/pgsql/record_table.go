package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// recordTable implements the query/delete/toggle surface shared by every
// entity repository. Entity-specific repositories embed it and add their own
// SaveRecord/UpdateRecord with the table's column list.
//
// selectQuery must enumerate columns whose names match the entity's db tags;
// rows are collected with pgx.RowToStructByName.
type recordTable[T any] struct {
	BaseRepository
	table       string
	idColumn    string
	selectQuery string
	// dependent child table and its FK column; empty means the entity has no
	// dependents and deletion is never blocked.
	depTable  string
	depColumn string
}

func newRecordTable[T any](pool *pgxpool.Pool, table, idColumn, selectQuery string) recordTable[T] {
	return recordTable[T]{
		BaseRepository: BaseRepository{Pool: pool},
		table:          table,
		idColumn:       idColumn,
		selectQuery:    selectQuery,
	}
}

// getRecords runs selectQuery with the given filter suffix and collects rows
// into the entity struct by column name.
func (r *recordTable[T]) getRecords(ctx context.Context, filterQuery string, args ...any) ([]T, error) {
	query := r.selectQuery + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+r.table, err)
	}
	defer rows.Close()
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []T{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect "+r.table+" rows", err)
	}
	return records, nil
}

func (r *recordTable[T]) countWhere(ctx context.Context, whereClause string, args ...any) (int64, error) {
	query := "SELECT COUNT(*) FROM " + r.table + whereClause
	var count int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count "+r.table, err)
	}
	return count, nil
}

func (r *recordTable[T]) ListRecords(ctx context.Context) ([]T, error) {
	return r.getRecords(ctx, " ORDER BY created_at ASC")
}

func (r *recordTable[T]) PaginateRecords(ctx context.Context, page, size int) ([]T, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}
	total, err := r.countWhere(ctx, "")
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * size
	filter := fmt.Sprintf(" ORDER BY created_at DESC, %s DESC LIMIT $1 OFFSET $2", r.idColumn)
	records, err := r.getRecords(ctx, filter, size, offset)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *recordTable[T]) FindLatestRecords(ctx context.Context, n int) ([]T, error) {
	return r.getRecords(ctx, " ORDER BY created_at DESC LIMIT $1", n)
}

func (r *recordTable[T]) CountAll(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, "")
}

func (r *recordTable[T]) CountDeactivated(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, " WHERE is_active = false")
}

func (r *recordTable[T]) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.countWhere(ctx, " WHERE created_at >= $1", since)
}

func (r *recordTable[T]) FindRecordByID(ctx context.Context, id string) (*T, error) {
	filter := fmt.Sprintf(" WHERE %s = $1", r.idColumn)
	records, err := r.getRecords(ctx, filter, id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &records[0], nil
}

func (r *recordTable[T]) SetRecordActive(ctx context.Context, id string, active bool, now time.Time, updatedBy string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_active = $1, last_updated_at = $2, last_updated_by = $3
		WHERE %s = $4;
	`, r.table, r.idColumn)
	result, err := r.Pool.Exec(ctx, query, active, now, updatedBy, id)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update "+r.table+" status", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *recordTable[T]) DeleteRecord(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1;", r.table, r.idColumn)
	result, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		// The FK constraint is the second line of defense behind the service's
		// dependent-count check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewDependencyConflictError(r.table + " record still has dependents")
		}
		return apperrors.NewAppError(500, "failed to delete from "+r.table, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *recordTable[T]) CountDependents(ctx context.Context, id string) (int64, error) {
	if r.depTable == "" {
		return 0, nil
	}
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", r.depTable, r.depColumn)
	var count int64
	if err := r.Pool.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count dependents of "+r.table, err)
	}
	return count, nil
}
