package handlers

import (
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/gin-gonic/gin"
)

type taskRecordHandler = recordHandler[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]

// registerTaskRoutes registers routes related to tasks.
func registerTaskRoutes(rg *gin.RouterGroup, svc portssvc.TaskSvcFacade, systemLog portssvc.SystemLogSvcFacade) {
	h := newRecordHandler[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest](svc, systemLog, recordNames{
		display:       "Task",
		redirect:      "/tasks",
		storeKey:      messages.TaskStore,
		updateKey:     messages.TaskUpdate,
		deleteKey:     messages.TaskDelete,
		dependencyKey: messages.GenericError,
	})

	tasks := rg.Group("/tasks")
	tasks.GET("", listTasks(h))
	tasks.GET("/paginate", paginateTasks(h))
	tasks.GET("/:id", showTask(h))
	tasks.POST("", storeTask(h))
	tasks.PUT("/:id", updateTask(h))
	tasks.PATCH("/:id/toggle", toggleTask(h))
	tasks.DELETE("/:id", destroyTask(h))
}

// listTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} domain.Task
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks [get]
func listTasks(h *taskRecordHandler) gin.HandlerFunc { return h.list }

// paginateTasks godoc
// @Summary Paginate tasks
// @Tags tasks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.Page[domain.Task]
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/paginate [get]
func paginateTasks(h *taskRecordHandler) gin.HandlerFunc { return h.paginate }

// showTask godoc
// @Summary Get a task by id
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} domain.Task
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [get]
func showTask(h *taskRecordHandler) gin.HandlerFunc { return h.show }

// storeTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "New task"
// @Success 201 {object} dto.WriteOutcome
// @Failure 400 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /tasks [post]
func storeTask(h *taskRecordHandler) gin.HandlerFunc { return h.store }

// updateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /tasks/{id} [put]
func updateTask(h *taskRecordHandler) gin.HandlerFunc { return h.update }

// toggleTask godoc
// @Summary Toggle a task's active flag
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /tasks/{id}/toggle [patch]
func toggleTask(h *taskRecordHandler) gin.HandlerFunc { return h.toggleActive }

// destroyTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func destroyTask(h *taskRecordHandler) gin.HandlerFunc { return h.destroy }
