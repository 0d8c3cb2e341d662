package services

import (
	"context"
	"time"

	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
)

// recentItemsCount is the size of the recent-records projection on the dashboard.
const recentItemsCount = 5

// dashboardService aggregates the per-entity counters shown on the landing screen.
type dashboardService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewDashboardService creates a new dashboard service over the full repository set
func NewDashboardService(repos portsrepo.RepositoryProvider) portssvc.DashboardSvcFacade {
	return &dashboardService{repos: repos}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func entityStats[T any](ctx context.Context, q portsrepo.RecordQueries[T], since time.Time) (dto.EntityStats, error) {
	total, err := q.CountAll(ctx)
	if err != nil {
		return dto.EntityStats{}, err
	}
	deactivated, err := q.CountDeactivated(ctx)
	if err != nil {
		return dto.EntityStats{}, err
	}
	recent, err := q.CountCreatedSince(ctx, since)
	if err != nil {
		return dto.EntityStats{}, err
	}
	return dto.EntityStats{
		Total:            total,
		Deactivated:      deactivated,
		CreatedLastMonth: recent,
	}, nil
}

func (s *dashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	since := time.Now().AddDate(0, -1, 0)
	summary := &dto.DashboardSummary{}

	var err error
	if summary.Companies, err = entityStats(ctx, s.repos.CompanyRepo, since); err != nil {
		s.LogError(ctx, err, "Failed to load company stats")
		return nil, err
	}
	if summary.Deals, err = entityStats(ctx, s.repos.DealRepo, since); err != nil {
		s.LogError(ctx, err, "Failed to load deal stats")
		return nil, err
	}
	if summary.Finances, err = entityStats(ctx, s.repos.FinanceRepo, since); err != nil {
		s.LogError(ctx, err, "Failed to load finance stats")
		return nil, err
	}
	if summary.Sales, err = entityStats(ctx, s.repos.SaleRepo, since); err != nil {
		s.LogError(ctx, err, "Failed to load sale stats")
		return nil, err
	}
	if summary.Products, err = entityStats(ctx, s.repos.ProductRepo, since); err != nil {
		s.LogError(ctx, err, "Failed to load product stats")
		return nil, err
	}
	if summary.Tasks, err = entityStats(ctx, s.repos.TaskRepo, since); err != nil {
		s.LogError(ctx, err, "Failed to load task stats")
		return nil, err
	}

	if summary.RecentCompanies, err = s.repos.CompanyRepo.FindLatestRecords(ctx, recentItemsCount); err != nil {
		s.LogError(ctx, err, "Failed to load recent companies")
		return nil, err
	}
	if summary.RecentDeals, err = s.repos.DealRepo.FindLatestRecords(ctx, recentItemsCount); err != nil {
		s.LogError(ctx, err, "Failed to load recent deals")
		return nil, err
	}

	return summary, nil
}
