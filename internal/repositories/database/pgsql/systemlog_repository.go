package pgsql

import (
	"context"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSystemLogRepository is the append-only action history. There is no
// update or delete path on purpose.
type PgxSystemLogRepository struct {
	BaseRepository
}

var FULL_SYSTEM_LOG_SELECT_QUERY = `
SELECT
	log_id, message, status_code, actor_id, created_at
FROM system_logs
`

func newPgxSystemLogRepository(pool *pgxpool.Pool) portsrepo.SystemLogRepository {
	return &PgxSystemLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SystemLogRepository = (*PgxSystemLogRepository)(nil)

func (r *PgxSystemLogRepository) AppendLog(ctx context.Context, entry domain.SystemLog) error {
	query := `
		INSERT INTO system_logs (log_id, message, status_code, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.LogID,
		entry.Message,
		entry.StatusCode,
		entry.ActorID,
		entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append system log", err)
	}
	return nil
}

func (r *PgxSystemLogRepository) ListLogs(ctx context.Context) ([]domain.SystemLog, error) {
	query := FULL_SYSTEM_LOG_SELECT_QUERY + " ORDER BY created_at DESC"
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query system logs", err)
	}
	defer rows.Close()
	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.SystemLog])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect system log rows", err)
	}
	return logs, nil
}

func (r *PgxSystemLogRepository) PaginateLogs(ctx context.Context, page, size int) ([]domain.SystemLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM system_logs").Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count system logs", err)
	}
	query := FULL_SYSTEM_LOG_SELECT_QUERY + " ORDER BY created_at DESC, log_id DESC LIMIT $1 OFFSET $2"
	rows, err := r.Pool.Query(ctx, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query system logs", err)
	}
	defer rows.Close()
	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.SystemLog])
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to collect system log rows", err)
	}
	return logs, total, nil
}
