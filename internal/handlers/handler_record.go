package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/craftscrm/crm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recordNames parameterizes the shared CRUD handler for one entity.
type recordNames struct {
	display   string // capitalized entity name used in audit log messages
	redirect  string // path the presentation layer should navigate to after a write
	storeKey  string
	updateKey string
	deleteKey string
	// flash key when dependents block deletion; messages.GenericError for
	// entities without dependents.
	dependencyKey string
}

// recordHandler serves the CRUD endpoints shared by every entity. Each write
// runs exactly one service command and, on success, appends one audit entry
// before responding with the entity's flash key. Route registration lives in
// the per-entity files, which also carry the per-route API docs.
type recordHandler[T any, C any, U any] struct {
	svc       portssvc.RecordSvc[T, C, U]
	systemLog portssvc.SystemLogSvcFacade
	names     recordNames
}

func newRecordHandler[T any, C any, U any](svc portssvc.RecordSvc[T, C, U], systemLog portssvc.SystemLogSvcFacade, names recordNames) *recordHandler[T, C, U] {
	return &recordHandler[T, C, U]{svc: svc, systemLog: systemLog, names: names}
}

func (h *recordHandler[T, C, U]) list(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		readFailure(c, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *recordHandler[T, C, U]) paginate(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	result, err := h.svc.Paginate(c.Request.Context(), page)
	if err != nil {
		readFailure(c, err, "Failed to paginate records")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *recordHandler[T, C, U]) show(c *gin.Context) {
	record, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		readFailure(c, err, "Failed to get record")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *recordHandler[T, C, U]) store(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for store", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, errOutcome(h.names.redirect, messages.InvalidInput))
		return
	}

	if _, err := h.svc.Create(c.Request.Context(), req, userID); err != nil {
		writeFailure(c, err, h.names.redirect, h.names.dependencyKey)
		return
	}

	h.systemLog.Append(c.Request.Context(), h.names.display+" created", domain.LogCodeChanged, userID)
	writeSuccess(c, http.StatusCreated, h.names.redirect, h.names.storeKey)
}

func (h *recordHandler[T, C, U]) update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, errOutcome(h.names.redirect, messages.InvalidInput))
		return
	}

	if _, err := h.svc.Update(c.Request.Context(), c.Param("id"), req, userID); err != nil {
		writeFailure(c, err, h.names.redirect, h.names.dependencyKey)
		return
	}

	h.systemLog.Append(c.Request.Context(), h.names.display+" updated", domain.LogCodeChanged, userID)
	writeSuccess(c, http.StatusOK, h.names.redirect, h.names.updateKey)
}

func (h *recordHandler[T, C, U]) toggleActive(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if _, err := h.svc.ToggleActive(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeFailure(c, err, h.names.redirect, h.names.dependencyKey)
		return
	}

	h.systemLog.Append(c.Request.Context(), h.names.display+" activity toggled", domain.LogCodeChanged, userID)
	writeSuccess(c, http.StatusOK, h.names.redirect, h.names.updateKey)
}

func (h *recordHandler[T, C, U]) destroy(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeFailure(c, err, h.names.redirect, h.names.dependencyKey)
		return
	}

	h.systemLog.Append(c.Request.Context(), h.names.display+" deleted", domain.LogCodeChanged, userID)
	writeSuccess(c, http.StatusOK, h.names.redirect, h.names.deleteKey)
}
