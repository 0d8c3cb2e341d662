package pgsql

import (
	"context"
	"errors"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaskRepository struct {
	recordTable[domain.Task]
}

var FULL_TASK_SELECT_QUERY = `
SELECT
	task_id, name, duration, assigned_to, company_id, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM tasks
`

func newPgxTaskRepository(pool *pgxpool.Pool) portsrepo.TaskRepository {
	return &PgxTaskRepository{
		recordTable: newRecordTable[domain.Task](pool, "tasks", "task_id", FULL_TASK_SELECT_QUERY),
	}
}

var _ portsrepo.TaskRepository = (*PgxTaskRepository)(nil)

func (r *PgxTaskRepository) SaveRecord(ctx context.Context, task domain.Task) error {
	query := `
		INSERT INTO tasks (
			task_id, name, duration, assigned_to, company_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		task.TaskID,
		task.Name,
		task.Duration,
		task.AssignedTo,
		task.CompanyID,
		task.IsActive,
		task.CreatedAt,
		task.CreatedBy,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("task ID " + task.TaskID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("assignee or company does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save task "+task.TaskID, err)
	}
	return nil
}

func (r *PgxTaskRepository) UpdateRecord(ctx context.Context, task domain.Task) error {
	query := `
		UPDATE tasks
		SET name = $1, duration = $2, assigned_to = $3, company_id = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE task_id = $7;
	`
	result, err := r.Pool.Exec(ctx, query,
		task.Name,
		task.Duration,
		task.AssignedTo,
		task.CompanyID,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
		task.TaskID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("assignee or company does not exist")
		}
		return apperrors.NewAppError(500, "failed to update task "+task.TaskID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
