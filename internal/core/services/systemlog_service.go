package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftscrm/crm_backend/internal/core/domain"
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/google/uuid"
)

// systemLogService is the audit logger: an independent, append-only write
// path recording that an action happened.
type systemLogService struct {
	BaseService
	logRepo  portsrepo.SystemLogRepository
	settings portsrepo.SettingReader
}

// NewSystemLogService creates a new system log service with the provided dependencies
func NewSystemLogService(logRepo portsrepo.SystemLogRepository, settings portsrepo.SettingReader) portssvc.SystemLogSvcFacade {
	return &systemLogService{
		logRepo:  logRepo,
		settings: settings,
	}
}

var _ portssvc.SystemLogSvcFacade = (*systemLogService)(nil)

// Append records an action in the history. It is best-effort: a failed append
// is logged and swallowed so the triggering operation still succeeds.
func (s *systemLogService) Append(ctx context.Context, message string, statusCode int, actorID string) {
	entry := domain.SystemLog{
		LogID:      uuid.NewString(),
		Message:    message,
		StatusCode: statusCode,
		ActorID:    actorID,
		CreatedAt:  time.Now(),
	}
	if err := s.logRepo.AppendLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append system log",
			slog.String("message", message),
			slog.String("actor_id", actorID))
		return
	}
	s.LogDebug(ctx, "System log appended", slog.String("log_id", entry.LogID))
}

// FormatAll returns the whole action history as presentation-ready strings,
// newest first.
func (s *systemLogService) FormatAll(ctx context.Context) ([]string, error) {
	entries, err := s.logRepo.ListLogs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list system logs")
		return nil, err
	}
	formatted := make([]string, len(entries))
	for i, e := range entries {
		formatted[i] = fmt.Sprintf("%s [%d] %s (actor: %s)",
			e.CreatedAt.Format("2006-01-02 15:04"), e.StatusCode, e.Message, e.ActorID)
	}
	return formatted, nil
}

func (s *systemLogService) Paginate(ctx context.Context, page int) (*dto.Page[domain.SystemLog], error) {
	if page < 1 {
		page = 1
	}
	size := resolvePaginationSize(ctx, s.settings)
	entries, total, err := s.logRepo.PaginateLogs(ctx, page, size)
	if err != nil {
		s.LogError(ctx, err, "Failed to paginate system logs", slog.Int("page", page))
		return nil, err
	}
	return dto.NewPage(entries, page, size, total), nil
}
