package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/craftscrm/crm_backend/internal/core/domain"
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/google/uuid"
)

// financeService implements the FinanceSvcFacade interface
type financeService struct {
	recordService[domain.Finance]
}

// NewFinanceService creates a new finance service with the provided dependencies
func NewFinanceService(repo portsrepo.FinanceRepository, settings portsrepo.SettingReader) portssvc.FinanceSvcFacade {
	return &financeService{
		recordService: newRecordService[domain.Finance](repo, settings, "finance",
			func(f *domain.Finance) bool { return f.IsActive }),
	}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

func (s *financeService) Create(ctx context.Context, req dto.CreateFinanceRequest, creatorUserID string) (*domain.Finance, error) {
	now := time.Now()
	finance := domain.Finance{
		FinanceID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    domain.FinanceCategory(req.Category),
		Amount:      req.Amount,
		CompanyID:   req.CompanyID,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.IsActive != nil {
		finance.IsActive = *req.IsActive
	}

	if err := s.repo.SaveRecord(ctx, finance); err != nil {
		s.LogError(ctx, err, "Failed to save finance record", slog.String("finance_id", finance.FinanceID))
		return nil, err
	}

	s.LogInfo(ctx, "Finance record created",
		slog.String("finance_id", finance.FinanceID),
		slog.String("company_id", finance.CompanyID))
	return &finance, nil
}

func (s *financeService) Update(ctx context.Context, id string, req dto.UpdateFinanceRequest, updaterUserID string) (*domain.Finance, error) {
	finance, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		finance.Name = *req.Name
	}
	if req.Description != nil {
		finance.Description = *req.Description
	}
	if req.Category != nil {
		finance.Category = domain.FinanceCategory(*req.Category)
	}
	if req.Amount != nil {
		finance.Amount = *req.Amount
	}
	if req.CompanyID != nil {
		finance.CompanyID = *req.CompanyID
	}
	finance.LastUpdatedAt = time.Now()
	finance.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateRecord(ctx, *finance); err != nil {
		s.LogError(ctx, err, "Failed to update finance record", slog.String("finance_id", id))
		return nil, err
	}
	return finance, nil
}
