package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/craftscrm/crm_backend/internal/core/domain"
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
)

// settingService implements the SettingSvcFacade interface
type settingService struct {
	BaseService
	settingRepo portsrepo.SettingRepository
}

// NewSettingService creates a new setting service with the provided dependencies
func NewSettingService(settingRepo portsrepo.SettingRepository) portssvc.SettingSvcFacade {
	return &settingService{settingRepo: settingRepo}
}

var _ portssvc.SettingSvcFacade = (*settingService)(nil)

func (s *settingService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.settingRepo.ListSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list settings")
		return nil, err
	}
	if settings == nil {
		settings = []domain.Setting{}
	}
	return settings, nil
}

func (s *settingService) GetValue(ctx context.Context, key string) (string, error) {
	setting, err := s.settingRepo.FindSettingByKey(ctx, key)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// PaginationSize resolves the pagination_size setting at call time.
func (s *settingService) PaginationSize(ctx context.Context) int {
	return resolvePaginationSize(ctx, s.settingRepo)
}

// UpdateSettings upserts every submitted key/value pair in one transaction.
func (s *settingService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterUserID string) error {
	now := time.Now()
	settings := make([]domain.Setting, 0, len(req.Settings))
	for _, input := range req.Settings {
		settings = append(settings, domain.Setting{
			Key:           input.Key,
			Value:         input.Value,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		})
	}
	if err := s.settingRepo.UpsertSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to upsert settings", slog.Int("count", len(settings)))
		return err
	}
	s.LogInfo(ctx, "Settings updated",
		slog.Int("count", len(req.Settings)),
		slog.String("updated_by", updaterUserID))
	return nil
}
