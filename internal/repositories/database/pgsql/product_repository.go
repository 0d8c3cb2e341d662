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

type PgxProductRepository struct {
	recordTable[domain.Product]
}

var FULL_PRODUCT_SELECT_QUERY = `
SELECT
	product_id, name, category, price, count, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM products
`

// newPgxProductRepository creates a new repository for product data. A product
// referenced by sales cannot be deleted.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	table := newRecordTable[domain.Product](pool, "products", "product_id", FULL_PRODUCT_SELECT_QUERY)
	table.depTable = "sales"
	table.depColumn = "product_id"
	return &PgxProductRepository{recordTable: table}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) SaveRecord(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (
			product_id, name, category, price, count, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Category,
		product.Price,
		product.Count,
		product.IsActive,
		product.CreatedAt,
		product.CreatedBy,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("product ID " + product.ProductID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save product "+product.ProductID, err)
	}
	return nil
}

func (r *PgxProductRepository) UpdateRecord(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET name = $1, category = $2, price = $3, count = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE product_id = $7;
	`
	result, err := r.Pool.Exec(ctx, query,
		product.Name,
		product.Category,
		product.Price,
		product.Count,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
		product.ProductID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update product "+product.ProductID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
