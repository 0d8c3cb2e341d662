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

type PgxCompanyRepository struct {
	recordTable[domain.Company]
}

var FULL_COMPANY_SELECT_QUERY = `
SELECT
	company_id, name, tax_number, phone, email, city, billing_address, country,
	postal_code, employees_size, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM companies
`

// newPgxCompanyRepository creates a new repository for company data. A company
// that still owns deals cannot be deleted.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepository {
	table := newRecordTable[domain.Company](pool, "companies", "company_id", FULL_COMPANY_SELECT_QUERY)
	table.depTable = "deals"
	table.depColumn = "company_id"
	return &PgxCompanyRepository{recordTable: table}
}

var _ portsrepo.CompanyRepository = (*PgxCompanyRepository)(nil)

func (r *PgxCompanyRepository) SaveRecord(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (
			company_id, name, tax_number, phone, email, city, billing_address,
			country, postal_code, employees_size, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.TaxNumber,
		company.Phone,
		company.Email,
		company.City,
		company.BillingAddress,
		company.Country,
		company.PostalCode,
		company.EmployeesSize,
		company.IsActive,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("company ID " + company.CompanyID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save company "+company.CompanyID, err)
	}
	return nil
}

func (r *PgxCompanyRepository) UpdateRecord(ctx context.Context, company domain.Company) error {
	query := `
		UPDATE companies
		SET name = $1, tax_number = $2, phone = $3, email = $4, city = $5,
			billing_address = $6, country = $7, postal_code = $8, employees_size = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE company_id = $12;
	`
	result, err := r.Pool.Exec(ctx, query,
		company.Name,
		company.TaxNumber,
		company.Phone,
		company.Email,
		company.City,
		company.BillingAddress,
		company.Country,
		company.PostalCode,
		company.EmployeesSize,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
		company.CompanyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update company "+company.CompanyID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
