package pgsql

import (
	"context"
	"errors"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDealRepository struct {
	recordTable[domain.Deal]
}

var FULL_DEAL_SELECT_QUERY = `
SELECT
	deal_id, name, amount, start_time, end_time, company_id, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM deals
`

var FULL_DEAL_TERM_SELECT_QUERY = `
SELECT
	term_id, deal_id, body,
	created_at, created_by, last_updated_at, last_updated_by
FROM deal_terms
`

// newPgxDealRepository creates a new repository for deal data. A deal that
// still owns terms cannot be deleted.
func newPgxDealRepository(pool *pgxpool.Pool) portsrepo.DealRepository {
	table := newRecordTable[domain.Deal](pool, "deals", "deal_id", FULL_DEAL_SELECT_QUERY)
	table.depTable = "deal_terms"
	table.depColumn = "deal_id"
	return &PgxDealRepository{recordTable: table}
}

var _ portsrepo.DealRepository = (*PgxDealRepository)(nil)

func (r *PgxDealRepository) SaveRecord(ctx context.Context, deal domain.Deal) error {
	query := `
		INSERT INTO deals (
			deal_id, name, amount, start_time, end_time, company_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		deal.DealID,
		deal.Name,
		deal.Amount,
		deal.StartTime,
		deal.EndTime,
		deal.CompanyID,
		deal.IsActive,
		deal.CreatedAt,
		deal.CreatedBy,
		deal.LastUpdatedAt,
		deal.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("deal ID " + deal.DealID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("company does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save deal "+deal.DealID, err)
	}
	return nil
}

func (r *PgxDealRepository) UpdateRecord(ctx context.Context, deal domain.Deal) error {
	query := `
		UPDATE deals
		SET name = $1, amount = $2, start_time = $3, end_time = $4, company_id = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE deal_id = $8;
	`
	result, err := r.Pool.Exec(ctx, query,
		deal.Name,
		deal.Amount,
		deal.StartTime,
		deal.EndTime,
		deal.CompanyID,
		deal.LastUpdatedAt,
		deal.LastUpdatedBy,
		deal.DealID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("company does not exist")
		}
		return apperrors.NewAppError(500, "failed to update deal "+deal.DealID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDealRepository) SaveDealTerm(ctx context.Context, term domain.DealTerm) error {
	query := `
		INSERT INTO deal_terms (
			term_id, deal_id, body,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		term.TermID,
		term.DealID,
		term.Body,
		term.CreatedAt,
		term.CreatedBy,
		term.LastUpdatedAt,
		term.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("deal does not exist")
		}
		return apperrors.NewAppError(500, "failed to save deal term "+term.TermID, err)
	}
	return nil
}

func (r *PgxDealRepository) FindDealTermByID(ctx context.Context, termID string) (*domain.DealTerm, error) {
	query := FULL_DEAL_TERM_SELECT_QUERY + " WHERE term_id = $1"
	rows, err := r.Pool.Query(ctx, query, termID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query deal terms", err)
	}
	defer rows.Close()
	term, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.DealTerm])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect deal term row", err)
	}
	return &term, nil
}

func (r *PgxDealRepository) ListDealTerms(ctx context.Context, dealID string) ([]domain.DealTerm, error) {
	query := FULL_DEAL_TERM_SELECT_QUERY + " WHERE deal_id = $1 ORDER BY created_at ASC"
	rows, err := r.Pool.Query(ctx, query, dealID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query deal terms", err)
	}
	defer rows.Close()
	terms, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.DealTerm])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect deal term rows", err)
	}
	return terms, nil
}

func (r *PgxDealRepository) DeleteDealTerm(ctx context.Context, termID string) error {
	result, err := r.Pool.Exec(ctx, "DELETE FROM deal_terms WHERE term_id = $1;", termID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete deal term "+termID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
