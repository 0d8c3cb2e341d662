package handlers

import (
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/gin-gonic/gin"
)

type financeRecordHandler = recordHandler[domain.Finance, dto.CreateFinanceRequest, dto.UpdateFinanceRequest]

// registerFinanceRoutes registers routes related to finance records.
func registerFinanceRoutes(rg *gin.RouterGroup, svc portssvc.FinanceSvcFacade, systemLog portssvc.SystemLogSvcFacade) {
	h := newRecordHandler[domain.Finance, dto.CreateFinanceRequest, dto.UpdateFinanceRequest](svc, systemLog, recordNames{
		display:       "Finance record",
		redirect:      "/finances",
		storeKey:      messages.FinanceStore,
		updateKey:     messages.FinanceUpdate,
		deleteKey:     messages.FinanceDelete,
		dependencyKey: messages.GenericError,
	})

	finances := rg.Group("/finances")
	finances.GET("", listFinances(h))
	finances.GET("/paginate", paginateFinances(h))
	finances.GET("/:id", showFinance(h))
	finances.POST("", storeFinance(h))
	finances.PUT("/:id", updateFinance(h))
	finances.PATCH("/:id/toggle", toggleFinance(h))
	finances.DELETE("/:id", destroyFinance(h))
}

// listFinances godoc
// @Summary List finance records
// @Tags finances
// @Produce json
// @Success 200 {array} domain.Finance
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /finances [get]
func listFinances(h *financeRecordHandler) gin.HandlerFunc { return h.list }

// paginateFinances godoc
// @Summary Paginate finance records
// @Tags finances
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.Page[domain.Finance]
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /finances/paginate [get]
func paginateFinances(h *financeRecordHandler) gin.HandlerFunc { return h.paginate }

// showFinance godoc
// @Summary Get a finance record by id
// @Tags finances
// @Produce json
// @Param id path string true "Finance ID"
// @Success 200 {object} domain.Finance
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /finances/{id} [get]
func showFinance(h *financeRecordHandler) gin.HandlerFunc { return h.show }

// storeFinance godoc
// @Summary Create a finance record
// @Tags finances
// @Accept json
// @Produce json
// @Param finance body dto.CreateFinanceRequest true "New finance record"
// @Success 201 {object} dto.WriteOutcome
// @Failure 400 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /finances [post]
func storeFinance(h *financeRecordHandler) gin.HandlerFunc { return h.store }

// updateFinance godoc
// @Summary Update a finance record
// @Tags finances
// @Accept json
// @Produce json
// @Param id path string true "Finance ID"
// @Param finance body dto.UpdateFinanceRequest true "Fields to change"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /finances/{id} [put]
func updateFinance(h *financeRecordHandler) gin.HandlerFunc { return h.update }

// toggleFinance godoc
// @Summary Toggle a finance record's active flag
// @Tags finances
// @Produce json
// @Param id path string true "Finance ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /finances/{id}/toggle [patch]
func toggleFinance(h *financeRecordHandler) gin.HandlerFunc { return h.toggleActive }

// destroyFinance godoc
// @Summary Delete a finance record
// @Tags finances
// @Produce json
// @Param id path string true "Finance ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /finances/{id} [delete]
func destroyFinance(h *financeRecordHandler) gin.HandlerFunc { return h.destroy }
