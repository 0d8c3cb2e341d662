package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/craftscrm/crm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler serves the settings screen: the key-value pairs plus the
// system action history alongside them.
type settingsHandler struct {
	settingService portssvc.SettingSvcFacade
	systemLog      portssvc.SystemLogSvcFacade
}

// registerSettingsRoutes registers the settings screen routes.
func registerSettingsRoutes(rg *gin.RouterGroup, settingService portssvc.SettingSvcFacade, systemLog portssvc.SystemLogSvcFacade) {
	h := &settingsHandler{settingService: settingService, systemLog: systemLog}

	settings := rg.Group("/settings")
	settings.GET("", h.overview)
	settings.PUT("", h.update)
}

// overview godoc
// @Summary Settings screen data
// @Description Returns all settings plus the formatted and paginated action history.
// @Tags settings
// @Produce json
// @Param page query int false "System log page" default(1)
// @Success 200 {object} dto.SettingsOverview
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) overview(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := h.settingService.ListSettings(ctx)
	if err != nil {
		readFailure(c, err, "Failed to list settings")
		return
	}

	logs, err := h.systemLog.FormatAll(ctx)
	if err != nil {
		readFailure(c, err, "Failed to load system logs")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	logsPage, err := h.systemLog.Paginate(ctx, page)
	if err != nil {
		readFailure(c, err, "Failed to paginate system logs")
		return
	}

	c.JSON(http.StatusOK, dto.SettingsOverview{
		Settings:     settings,
		Logs:         logs,
		LogsPaginate: logsPage,
	})
}

// update godoc
// @Summary Update settings
// @Description Upserts every submitted key/value pair in one transaction.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Pairs to write"
// @Success 200 {object} dto.WriteOutcome
// @Failure 400 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for settings update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, errOutcome("/settings", messages.InvalidInput))
		return
	}

	if err := h.settingService.UpdateSettings(c.Request.Context(), req, userID); err != nil {
		writeFailure(c, err, "/settings", messages.GenericError)
		return
	}

	h.systemLog.Append(c.Request.Context(), "Settings updated", domain.LogCodeChanged, userID)
	writeSuccess(c, http.StatusOK, "/settings", messages.SettingsUpdate)
}
