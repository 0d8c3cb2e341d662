package handlers

import (
	"net/http"

	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the landing screen counters.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, svc portssvc.DashboardSvcFacade) {
	h := &dashboardHandler{dashboardService: svc}
	rg.GET("/dashboard", h.summary)
}

// summary godoc
// @Summary Dashboard counters
// @Description Per-entity totals, deactivated and trailing-month counts plus recent items.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummary
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		readFailure(c, err, "Failed to build dashboard summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
