package handlers

import (
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/gin-gonic/gin"
)

type companyRecordHandler = recordHandler[domain.Company, dto.CreateCompanyRequest, dto.UpdateCompanyRequest]

// registerCompanyRoutes registers routes related to companies. Deleting a
// company is blocked while deals still reference it.
func registerCompanyRoutes(rg *gin.RouterGroup, svc portssvc.CompanySvcFacade, systemLog portssvc.SystemLogSvcFacade) {
	h := newRecordHandler[domain.Company, dto.CreateCompanyRequest, dto.UpdateCompanyRequest](svc, systemLog, recordNames{
		display:       "Company",
		redirect:      "/companies",
		storeKey:      messages.CompanyStore,
		updateKey:     messages.CompanyUpdate,
		deleteKey:     messages.CompanyDelete,
		dependencyKey: messages.CompanyFirstDeleteDeals,
	})

	companies := rg.Group("/companies")
	companies.GET("", listCompanies(h))
	companies.GET("/paginate", paginateCompanies(h))
	companies.GET("/:id", showCompany(h))
	companies.POST("", storeCompany(h))
	companies.PUT("/:id", updateCompany(h))
	companies.PATCH("/:id/toggle", toggleCompany(h))
	companies.DELETE("/:id", destroyCompany(h))
}

// listCompanies godoc
// @Summary List companies
// @Description Returns all companies ascending by creation time.
// @Tags companies
// @Produce json
// @Success 200 {array} domain.Company
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies [get]
func listCompanies(h *companyRecordHandler) gin.HandlerFunc { return h.list }

// paginateCompanies godoc
// @Summary Paginate companies
// @Description Page size comes from the pagination_size setting at call time.
// @Tags companies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.Page[domain.Company]
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/paginate [get]
func paginateCompanies(h *companyRecordHandler) gin.HandlerFunc { return h.paginate }

// showCompany godoc
// @Summary Get a company by id
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} domain.Company
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [get]
func showCompany(h *companyRecordHandler) gin.HandlerFunc { return h.show }

// storeCompany godoc
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "New company"
// @Success 201 {object} dto.WriteOutcome
// @Failure 400 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /companies [post]
func storeCompany(h *companyRecordHandler) gin.HandlerFunc { return h.store }

// updateCompany godoc
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param company body dto.UpdateCompanyRequest true "Fields to change"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /companies/{id} [put]
func updateCompany(h *companyRecordHandler) gin.HandlerFunc { return h.update }

// toggleCompany godoc
// @Summary Toggle a company's active flag
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /companies/{id}/toggle [patch]
func toggleCompany(h *companyRecordHandler) gin.HandlerFunc { return h.toggleActive }

// destroyCompany godoc
// @Summary Delete a company
// @Description Fails with 409 while deals still reference the company.
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 409 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /companies/{id} [delete]
func destroyCompany(h *companyRecordHandler) gin.HandlerFunc { return h.destroy }
