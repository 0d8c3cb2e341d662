package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portsrepo "github.com/craftscrm/crm_backend/internal/core/ports/repositories"
	"github.com/craftscrm/crm_backend/internal/dto"
)

// recordService is the command/query core shared by every CRUD entity
// service. Entity services embed it and add their typed Create/Update on top.
// The isActive accessor is the one piece of per-entity knowledge the generic
// code needs for the toggle command.
type recordService[T any] struct {
	BaseService
	repo     portsrepo.RecordStore[T]
	settings portsrepo.SettingReader
	kind     string // entity noun used in log and error messages
	isActive func(*T) bool
}

func newRecordService[T any](repo portsrepo.RecordStore[T], settings portsrepo.SettingReader, kind string, isActive func(*T) bool) recordService[T] {
	return recordService[T]{
		repo:     repo,
		settings: settings,
		kind:     kind,
		isActive: isActive,
	}
}

// resolvePaginationSize reads the pagination_size setting on every call so a
// changed value takes effect on the very next page request.
func resolvePaginationSize(ctx context.Context, settings portsrepo.SettingReader) int {
	setting, err := settings.FindSettingByKey(ctx, domain.SettingPaginationSize)
	if err != nil {
		return domain.DefaultPaginationSize
	}
	size, err := strconv.Atoi(setting.Value)
	if err != nil || size < 1 {
		return domain.DefaultPaginationSize
	}
	return size
}

func (s *recordService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	record, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find "+s.kind, slog.String("id", id))
		}
		return nil, err
	}
	return record, nil
}

func (s *recordService[T]) List(ctx context.Context) ([]T, error) {
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list "+s.kind+" records")
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (s *recordService[T]) Paginate(ctx context.Context, page int) (*dto.Page[T], error) {
	if page < 1 {
		page = 1
	}
	size := resolvePaginationSize(ctx, s.settings)
	records, total, err := s.repo.PaginateRecords(ctx, page, size)
	if err != nil {
		s.LogError(ctx, err, "Failed to paginate "+s.kind+" records", slog.Int("page", page))
		return nil, err
	}
	return dto.NewPage(records, page, size, total), nil
}

func (s *recordService[T]) ToggleActive(ctx context.Context, id string, updaterUserID string) (*T, error) {
	record, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Flip computed from the loaded record, passed explicitly to the store.
	next := !s.isActive(record)
	if err := s.repo.SetRecordActive(ctx, id, next, time.Now(), updaterUserID); err != nil {
		s.LogError(ctx, err, "Failed to toggle "+s.kind+" status", slog.String("id", id))
		return nil, err
	}

	updated, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, s.kind+" status toggled",
		slog.String("id", id),
		slog.Bool("is_active", next))
	return updated, nil
}

func (s *recordService[T]) Delete(ctx context.Context, id string, deleterUserID string) error {
	dependents, err := s.repo.CountDependents(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to count dependents of "+s.kind, slog.String("id", id))
		return err
	}
	if dependents > 0 {
		s.LogDebug(ctx, "Delete blocked by dependents",
			slog.String("kind", s.kind),
			slog.String("id", id),
			slog.Int64("dependents", dependents))
		return apperrors.NewDependencyConflictError(s.kind + " still has dependent records")
	}

	if err := s.repo.DeleteRecord(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete "+s.kind, slog.String("id", id))
		}
		return err
	}
	s.LogInfo(ctx, s.kind+" deleted", slog.String("id", id), slog.String("deleted_by", deleterUserID))
	return nil
}
