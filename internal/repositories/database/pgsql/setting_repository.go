package pgsql

import (
	"context"
	"errors"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingRepository struct {
	BaseRepository
}

func newPgxSettingRepository(pool *pgxpool.Pool) portsrepo.SettingRepository {
	return &PgxSettingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingRepository = (*PgxSettingRepository)(nil)

func (r *PgxSettingRepository) FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	query := `
		SELECT key, value, last_updated_at, last_updated_by
		FROM settings
		WHERE key = $1;
	`
	var setting domain.Setting
	err := r.Pool.QueryRow(ctx, query, key).Scan(
		&setting.Key,
		&setting.Value,
		&setting.LastUpdatedAt,
		&setting.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find setting "+key, err)
	}
	return &setting, nil
}

func (r *PgxSettingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	query := `
		SELECT key, value, last_updated_at, last_updated_by
		FROM settings
		ORDER BY key ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query settings", err)
	}
	defer rows.Close()
	settings, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Setting])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect setting rows", err)
	}
	return settings, nil
}

// UpsertSettings writes every submitted pair inside one transaction so a
// failing key never leaves the settings table half updated.
func (r *PgxSettingRepository) UpsertSettings(ctx context.Context, settings []domain.Setting) error {
	query := `
		INSERT INTO settings (key, value, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, setting := range settings {
		_, err := tx.Exec(ctx, query,
			setting.Key,
			setting.Value,
			setting.LastUpdatedAt,
			setting.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to upsert setting "+setting.Key, err)
		}
	}
	return r.Commit(ctx, tx)
}
