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

type PgxSaleRepository struct {
	recordTable[domain.Sale]
}

var FULL_SALE_SELECT_QUERY = `
SELECT
	sale_id, name, quantity, amount, date_of_payment, product_id, company_id, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM sales
`

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{
		recordTable: newRecordTable[domain.Sale](pool, "sales", "sale_id", FULL_SALE_SELECT_QUERY),
	}
}

var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

func (r *PgxSaleRepository) SaveRecord(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (
			sale_id, name, quantity, amount, date_of_payment, product_id, company_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		sale.SaleID,
		sale.Name,
		sale.Quantity,
		sale.Amount,
		sale.DateOfPayment,
		sale.ProductID,
		sale.CompanyID,
		sale.IsActive,
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("sale ID " + sale.SaleID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("company or product does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save sale "+sale.SaleID, err)
	}
	return nil
}

func (r *PgxSaleRepository) UpdateRecord(ctx context.Context, sale domain.Sale) error {
	query := `
		UPDATE sales
		SET name = $1, quantity = $2, amount = $3, date_of_payment = $4, product_id = $5,
			company_id = $6, last_updated_at = $7, last_updated_by = $8
		WHERE sale_id = $9;
	`
	result, err := r.Pool.Exec(ctx, query,
		sale.Name,
		sale.Quantity,
		sale.Amount,
		sale.DateOfPayment,
		sale.ProductID,
		sale.CompanyID,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
		sale.SaleID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("company or product does not exist")
		}
		return apperrors.NewAppError(500, "failed to update sale "+sale.SaleID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
