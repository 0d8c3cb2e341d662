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

// companyService implements the CompanySvcFacade interface
type companyService struct {
	recordService[domain.Company]
}

// NewCompanyService creates a new company service with the provided dependencies
func NewCompanyService(repo portsrepo.CompanyRepository, settings portsrepo.SettingReader) portssvc.CompanySvcFacade {
	return &companyService{
		recordService: newRecordService[domain.Company](repo, settings, "company",
			func(c *domain.Company) bool { return c.IsActive }),
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) Create(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	now := time.Now()
	company := domain.Company{
		CompanyID:      uuid.NewString(),
		Name:           req.Name,
		TaxNumber:      req.TaxNumber,
		Phone:          req.Phone,
		Email:          req.Email,
		City:           req.City,
		BillingAddress: req.BillingAddress,
		Country:        req.Country,
		PostalCode:     req.PostalCode,
		EmployeesSize:  req.EmployeesSize,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.IsActive != nil {
		company.IsActive = *req.IsActive
	}

	if err := s.repo.SaveRecord(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("company_id", company.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

func (s *companyService) Update(ctx context.Context, id string, req dto.UpdateCompanyRequest, updaterUserID string) (*domain.Company, error) {
	company, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.TaxNumber != nil {
		company.TaxNumber = *req.TaxNumber
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.City != nil {
		company.City = *req.City
	}
	if req.BillingAddress != nil {
		company.BillingAddress = *req.BillingAddress
	}
	if req.Country != nil {
		company.Country = *req.Country
	}
	if req.PostalCode != nil {
		company.PostalCode = *req.PostalCode
	}
	if req.EmployeesSize != nil {
		company.EmployeesSize = *req.EmployeesSize
	}
	company.LastUpdatedAt = time.Now()
	company.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateRecord(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company", slog.String("company_id", id))
		return nil, err
	}
	return company, nil
}
