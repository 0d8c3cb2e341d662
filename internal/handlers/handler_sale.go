package handlers

import (
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/gin-gonic/gin"
)

type saleRecordHandler = recordHandler[domain.Sale, dto.CreateSaleRequest, dto.UpdateSaleRequest]

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, svc portssvc.SaleSvcFacade, systemLog portssvc.SystemLogSvcFacade) {
	h := newRecordHandler[domain.Sale, dto.CreateSaleRequest, dto.UpdateSaleRequest](svc, systemLog, recordNames{
		display:       "Sale",
		redirect:      "/sales",
		storeKey:      messages.SaleStore,
		updateKey:     messages.SaleUpdate,
		deleteKey:     messages.SaleDelete,
		dependencyKey: messages.GenericError,
	})

	sales := rg.Group("/sales")
	sales.GET("", listSales(h))
	sales.GET("/paginate", paginateSales(h))
	sales.GET("/:id", showSale(h))
	sales.POST("", storeSale(h))
	sales.PUT("/:id", updateSale(h))
	sales.PATCH("/:id/toggle", toggleSale(h))
	sales.DELETE("/:id", destroySale(h))
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce json
// @Success 200 {array} domain.Sale
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func listSales(h *saleRecordHandler) gin.HandlerFunc { return h.list }

// paginateSales godoc
// @Summary Paginate sales
// @Tags sales
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.Page[domain.Sale]
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/paginate [get]
func paginateSales(h *saleRecordHandler) gin.HandlerFunc { return h.paginate }

// showSale godoc
// @Summary Get a sale by id
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} domain.Sale
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func showSale(h *saleRecordHandler) gin.HandlerFunc { return h.show }

// storeSale godoc
// @Summary Record a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "New sale"
// @Success 201 {object} dto.WriteOutcome
// @Failure 400 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /sales [post]
func storeSale(h *saleRecordHandler) gin.HandlerFunc { return h.store }

// updateSale godoc
// @Summary Update a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param sale body dto.UpdateSaleRequest true "Fields to change"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /sales/{id} [put]
func updateSale(h *saleRecordHandler) gin.HandlerFunc { return h.update }

// toggleSale godoc
// @Summary Toggle a sale's active flag
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /sales/{id}/toggle [patch]
func toggleSale(h *saleRecordHandler) gin.HandlerFunc { return h.toggleActive }

// destroySale godoc
// @Summary Delete a sale
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /sales/{id} [delete]
func destroySale(h *saleRecordHandler) gin.HandlerFunc { return h.destroy }
