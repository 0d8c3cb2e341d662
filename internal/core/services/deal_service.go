package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/google/uuid"
)

// dealService implements the DealSvcFacade interface
type dealService struct {
	recordService[domain.Deal]
	dealRepo portsrepo.DealRepository
}

// NewDealService creates a new deal service with the provided dependencies
func NewDealService(repo portsrepo.DealRepository, settings portsrepo.SettingReader) portssvc.DealSvcFacade {
	return &dealService{
		recordService: newRecordService[domain.Deal](repo, settings, "deal",
			func(d *domain.Deal) bool { return d.IsActive }),
		dealRepo: repo,
	}
}

var _ portssvc.DealSvcFacade = (*dealService)(nil)

func (s *dealService) Create(ctx context.Context, req dto.CreateDealRequest, creatorUserID string) (*domain.Deal, error) {
	if req.EndTime.Before(req.StartTime) {
		return nil, apperrors.NewValidationFailedError("deal end time precedes start time")
	}

	now := time.Now()
	deal := domain.Deal{
		DealID:    uuid.NewString(),
		Name:      req.Name,
		Amount:    req.Amount,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CompanyID: req.CompanyID,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.IsActive != nil {
		deal.IsActive = *req.IsActive
	}

	if err := s.repo.SaveRecord(ctx, deal); err != nil {
		s.LogError(ctx, err, "Failed to save deal", slog.String("deal_id", deal.DealID))
		return nil, err
	}

	s.LogInfo(ctx, "Deal created",
		slog.String("deal_id", deal.DealID),
		slog.String("company_id", deal.CompanyID))
	return &deal, nil
}

func (s *dealService) Update(ctx context.Context, id string, req dto.UpdateDealRequest, updaterUserID string) (*domain.Deal, error) {
	deal, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		deal.Name = *req.Name
	}
	if req.Amount != nil {
		deal.Amount = *req.Amount
	}
	if req.StartTime != nil {
		deal.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		deal.EndTime = *req.EndTime
	}
	if req.CompanyID != nil {
		deal.CompanyID = *req.CompanyID
	}
	if deal.EndTime.Before(deal.StartTime) {
		return nil, apperrors.NewValidationFailedError("deal end time precedes start time")
	}
	deal.LastUpdatedAt = time.Now()
	deal.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateRecord(ctx, *deal); err != nil {
		s.LogError(ctx, err, "Failed to update deal", slog.String("deal_id", id))
		return nil, err
	}
	return deal, nil
}

func (s *dealService) CreateDealTerm(ctx context.Context, dealID string, req dto.CreateDealTermRequest, creatorUserID string) (*domain.DealTerm, error) {
	// The deal must still exist; terms cannot be attached to a deleted deal.
	if _, err := s.repo.FindRecordByID(ctx, dealID); err != nil {
		return nil, err
	}

	now := time.Now()
	term := domain.DealTerm{
		TermID: uuid.NewString(),
		DealID: dealID,
		Body:   req.Body,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.dealRepo.SaveDealTerm(ctx, term); err != nil {
		s.LogError(ctx, err, "Failed to save deal term",
			slog.String("deal_id", dealID),
			slog.String("term_id", term.TermID))
		return nil, err
	}

	s.LogInfo(ctx, "Deal term created",
		slog.String("deal_id", dealID),
		slog.String("term_id", term.TermID))
	return &term, nil
}

func (s *dealService) ListDealTerms(ctx context.Context, dealID string) ([]domain.DealTerm, error) {
	terms, err := s.dealRepo.ListDealTerms(ctx, dealID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deal terms", slog.String("deal_id", dealID))
		return nil, err
	}
	if terms == nil {
		terms = []domain.DealTerm{}
	}
	return terms, nil
}

func (s *dealService) DeleteDealTerm(ctx context.Context, termID string, deleterUserID string) error {
	term, err := s.dealRepo.FindDealTermByID(ctx, termID)
	if err != nil {
		return err
	}

	if err := s.dealRepo.DeleteDealTerm(ctx, termID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete deal term", slog.String("term_id", termID))
		}
		return err
	}
	s.LogInfo(ctx, "Deal term deleted",
		slog.String("term_id", termID),
		slog.String("deal_id", term.DealID),
		slog.String("deleted_by", deleterUserID))
	return nil
}
