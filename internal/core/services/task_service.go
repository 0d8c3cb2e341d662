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

// taskService implements the TaskSvcFacade interface
type taskService struct {
	recordService[domain.Task]
}

// NewTaskService creates a new task service with the provided dependencies
func NewTaskService(repo portsrepo.TaskRepository, settings portsrepo.SettingReader) portssvc.TaskSvcFacade {
	return &taskService{
		recordService: newRecordService[domain.Task](repo, settings, "task",
			func(t *domain.Task) bool { return t.IsActive }),
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) Create(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error) {
	now := time.Now()
	task := domain.Task{
		TaskID:     uuid.NewString(),
		Name:       req.Name,
		Duration:   req.Duration,
		AssignedTo: req.AssignedTo,
		CompanyID:  req.CompanyID,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.IsActive != nil {
		task.IsActive = *req.IsActive
	}

	if err := s.repo.SaveRecord(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("task_id", task.TaskID))
		return nil, err
	}

	s.LogInfo(ctx, "Task created",
		slog.String("task_id", task.TaskID),
		slog.String("assigned_to", task.AssignedTo))
	return &task, nil
}

func (s *taskService) Update(ctx context.Context, id string, req dto.UpdateTaskRequest, updaterUserID string) (*domain.Task, error) {
	task, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Duration != nil {
		task.Duration = *req.Duration
	}
	if req.AssignedTo != nil {
		task.AssignedTo = *req.AssignedTo
	}
	if req.CompanyID != nil {
		task.CompanyID = req.CompanyID
	}
	task.LastUpdatedAt = time.Now()
	task.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateRecord(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task", slog.String("task_id", id))
		return nil, err
	}
	return task, nil
}
