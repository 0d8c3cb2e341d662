package handlers

import (
	"log/slog"
	"net/http"

	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/craftscrm/crm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dealHandler extends the shared CRUD endpoints with deal term management.
// Deleting a deal is blocked while terms still hang off it.
type dealHandler struct {
	*recordHandler[domain.Deal, dto.CreateDealRequest, dto.UpdateDealRequest]
	dealService portssvc.DealSvcFacade
}

// registerDealRoutes registers routes related to deals and their terms.
func registerDealRoutes(rg *gin.RouterGroup, svc portssvc.DealSvcFacade, systemLog portssvc.SystemLogSvcFacade) {
	h := &dealHandler{
		recordHandler: newRecordHandler[domain.Deal, dto.CreateDealRequest, dto.UpdateDealRequest](svc, systemLog, recordNames{
			display:       "Deal",
			redirect:      "/deals",
			storeKey:      messages.DealStore,
			updateKey:     messages.DealUpdate,
			deleteKey:     messages.DealDelete,
			dependencyKey: messages.DealFirstDeleteTerm,
		}),
		dealService: svc,
	}

	deals := rg.Group("/deals")
	deals.GET("", listDeals(h))
	deals.GET("/paginate", paginateDeals(h))
	deals.GET("/:id", showDeal(h))
	deals.POST("", storeDeal(h))
	deals.PUT("/:id", updateDeal(h))
	deals.PATCH("/:id/toggle", toggleDeal(h))
	deals.DELETE("/:id", destroyDeal(h))
	deals.GET("/:id/terms", h.listTerms)
	deals.POST("/:id/terms", h.storeTerm)
	deals.DELETE("/:id/terms/:termID", h.destroyTerm)
}

// listDeals godoc
// @Summary List deals
// @Tags deals
// @Produce json
// @Success 200 {array} domain.Deal
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /deals [get]
func listDeals(h *dealHandler) gin.HandlerFunc { return h.list }

// paginateDeals godoc
// @Summary Paginate deals
// @Tags deals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.Page[domain.Deal]
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /deals/paginate [get]
func paginateDeals(h *dealHandler) gin.HandlerFunc { return h.paginate }

// showDeal godoc
// @Summary Get a deal by id
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} domain.Deal
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deals/{id} [get]
func showDeal(h *dealHandler) gin.HandlerFunc { return h.show }

// storeDeal godoc
// @Summary Create a deal
// @Tags deals
// @Accept json
// @Produce json
// @Param deal body dto.CreateDealRequest true "New deal"
// @Success 201 {object} dto.WriteOutcome
// @Failure 400 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /deals [post]
func storeDeal(h *dealHandler) gin.HandlerFunc { return h.store }

// updateDeal godoc
// @Summary Update a deal
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param deal body dto.UpdateDealRequest true "Fields to change"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /deals/{id} [put]
func updateDeal(h *dealHandler) gin.HandlerFunc { return h.update }

// toggleDeal godoc
// @Summary Toggle a deal's active flag
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /deals/{id}/toggle [patch]
func toggleDeal(h *dealHandler) gin.HandlerFunc { return h.toggleActive }

// destroyDeal godoc
// @Summary Delete a deal
// @Description Fails with 409 while terms still hang off the deal.
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 409 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /deals/{id} [delete]
func destroyDeal(h *dealHandler) gin.HandlerFunc { return h.destroy }

// listTerms godoc
// @Summary List a deal's terms
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {array} domain.DealTerm
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deals/{id}/terms [get]
func (h *dealHandler) listTerms(c *gin.Context) {
	terms, err := h.dealService.ListDealTerms(c.Request.Context(), c.Param("id"))
	if err != nil {
		readFailure(c, err, "Failed to list deal terms")
		return
	}
	c.JSON(http.StatusOK, terms)
}

// storeTerm godoc
// @Summary Attach a term to a deal
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param term body dto.CreateDealTermRequest true "New term"
// @Success 201 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /deals/{id}/terms [post]
func (h *dealHandler) storeTerm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDealTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for storeTerm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, errOutcome(h.names.redirect, messages.InvalidInput))
		return
	}

	if _, err := h.dealService.CreateDealTerm(c.Request.Context(), c.Param("id"), req, userID); err != nil {
		writeFailure(c, err, h.names.redirect, h.names.dependencyKey)
		return
	}

	h.systemLog.Append(c.Request.Context(), "Deal term created", domain.LogCodeChanged, userID)
	writeSuccess(c, http.StatusCreated, h.names.redirect, messages.DealTermStore)
}

// destroyTerm godoc
// @Summary Delete a deal term
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Param termID path string true "Term ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /deals/{id}/terms/{termID} [delete]
func (h *dealHandler) destroyTerm(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.dealService.DeleteDealTerm(c.Request.Context(), c.Param("termID"), userID); err != nil {
		writeFailure(c, err, h.names.redirect, h.names.dependencyKey)
		return
	}

	h.systemLog.Append(c.Request.Context(), "Deal term deleted", domain.LogCodeChanged, userID)
	writeSuccess(c, http.StatusOK, h.names.redirect, messages.DealTermDelete)
}
