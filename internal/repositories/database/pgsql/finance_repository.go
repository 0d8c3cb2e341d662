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

type PgxFinanceRepository struct {
	recordTable[domain.Finance]
}

var FULL_FINANCE_SELECT_QUERY = `
SELECT
	finance_id, name, description, category, amount, company_id, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM finances
`

func newPgxFinanceRepository(pool *pgxpool.Pool) portsrepo.FinanceRepository {
	return &PgxFinanceRepository{
		recordTable: newRecordTable[domain.Finance](pool, "finances", "finance_id", FULL_FINANCE_SELECT_QUERY),
	}
}

var _ portsrepo.FinanceRepository = (*PgxFinanceRepository)(nil)

func (r *PgxFinanceRepository) SaveRecord(ctx context.Context, finance domain.Finance) error {
	query := `
		INSERT INTO finances (
			finance_id, name, description, category, amount, company_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		finance.FinanceID,
		finance.Name,
		finance.Description,
		finance.Category,
		finance.Amount,
		finance.CompanyID,
		finance.IsActive,
		finance.CreatedAt,
		finance.CreatedBy,
		finance.LastUpdatedAt,
		finance.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("finance ID " + finance.FinanceID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("company does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save finance "+finance.FinanceID, err)
	}
	return nil
}

func (r *PgxFinanceRepository) UpdateRecord(ctx context.Context, finance domain.Finance) error {
	query := `
		UPDATE finances
		SET name = $1, description = $2, category = $3, amount = $4, company_id = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE finance_id = $8;
	`
	result, err := r.Pool.Exec(ctx, query,
		finance.Name,
		finance.Description,
		finance.Category,
		finance.Amount,
		finance.CompanyID,
		finance.LastUpdatedAt,
		finance.LastUpdatedBy,
		finance.FinanceID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("company does not exist")
		}
		return apperrors.NewAppError(500, "failed to update finance "+finance.FinanceID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
