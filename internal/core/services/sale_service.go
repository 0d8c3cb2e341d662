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

// saleService implements the SaleSvcFacade interface
type saleService struct {
	recordService[domain.Sale]
}

// NewSaleService creates a new sale service with the provided dependencies
func NewSaleService(repo portsrepo.SaleRepository, settings portsrepo.SettingReader) portssvc.SaleSvcFacade {
	return &saleService{
		recordService: newRecordService[domain.Sale](repo, settings, "sale",
			func(s *domain.Sale) bool { return s.IsActive }),
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error) {
	now := time.Now()
	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		Name:          req.Name,
		Quantity:      req.Quantity,
		Amount:        req.Amount,
		DateOfPayment: req.DateOfPayment,
		ProductID:     req.ProductID,
		CompanyID:     req.CompanyID,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.IsActive != nil {
		sale.IsActive = *req.IsActive
	}

	if err := s.repo.SaveRecord(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("sale_id", sale.SaleID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale created",
		slog.String("sale_id", sale.SaleID),
		slog.String("company_id", sale.CompanyID))
	return &sale, nil
}

func (s *saleService) Update(ctx context.Context, id string, req dto.UpdateSaleRequest, updaterUserID string) (*domain.Sale, error) {
	sale, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sale.Name = *req.Name
	}
	if req.Quantity != nil {
		sale.Quantity = *req.Quantity
	}
	if req.Amount != nil {
		sale.Amount = *req.Amount
	}
	if req.DateOfPayment != nil {
		sale.DateOfPayment = *req.DateOfPayment
	}
	if req.ProductID != nil {
		sale.ProductID = req.ProductID
	}
	if req.CompanyID != nil {
		sale.CompanyID = *req.CompanyID
	}
	sale.LastUpdatedAt = time.Now()
	sale.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateRecord(ctx, *sale); err != nil {
		s.LogError(ctx, err, "Failed to update sale", slog.String("sale_id", id))
		return nil, err
	}
	return sale, nil
}
