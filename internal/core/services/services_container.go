package services

import (
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Entity services resolve their page size from the settings repository on
	// every paginate call, so they take the reader directly rather than the
	// setting service.
	container.Company = NewCompanyService(repos.CompanyRepo, repos.SettingRepo)
	container.Deal = NewDealService(repos.DealRepo, repos.SettingRepo)
	container.Finance = NewFinanceService(repos.FinanceRepo, repos.SettingRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.SettingRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.SettingRepo)
	container.Task = NewTaskService(repos.TaskRepo, repos.SettingRepo)

	container.Setting = NewSettingService(repos.SettingRepo)
	container.SystemLog = NewSystemLogService(repos.SystemLogRepo, repos.SettingRepo)
	container.Dashboard = NewDashboardService(repos)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
