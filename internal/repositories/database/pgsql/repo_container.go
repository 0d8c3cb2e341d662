package pgsql

import (
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:   newPgxCompanyRepository(dbPool),
		DealRepo:      newPgxDealRepository(dbPool),
		FinanceRepo:   newPgxFinanceRepository(dbPool),
		SaleRepo:      newPgxSaleRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		TaskRepo:      newPgxTaskRepository(dbPool),
		SettingRepo:   newPgxSettingRepository(dbPool),
		SystemLogRepo: newPgxSystemLogRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
	}
}
