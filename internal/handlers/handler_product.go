package handlers

import (
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/gin-gonic/gin"
)

type productRecordHandler = recordHandler[domain.Product, dto.CreateProductRequest, dto.UpdateProductRequest]

// registerProductRoutes registers routes related to catalog products.
// Deleting a product is blocked while sales still reference it.
func registerProductRoutes(rg *gin.RouterGroup, svc portssvc.ProductSvcFacade, systemLog portssvc.SystemLogSvcFacade) {
	h := newRecordHandler[domain.Product, dto.CreateProductRequest, dto.UpdateProductRequest](svc, systemLog, recordNames{
		display:       "Product",
		redirect:      "/products",
		storeKey:      messages.ProductStore,
		updateKey:     messages.ProductUpdate,
		deleteKey:     messages.ProductDelete,
		dependencyKey: messages.ProductFirstDeleteSales,
	})

	products := rg.Group("/products")
	products.GET("", listProducts(h))
	products.GET("/paginate", paginateProducts(h))
	products.GET("/:id", showProduct(h))
	products.POST("", storeProduct(h))
	products.PUT("/:id", updateProduct(h))
	products.PATCH("/:id/toggle", toggleProduct(h))
	products.DELETE("/:id", destroyProduct(h))
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [get]
func listProducts(h *productRecordHandler) gin.HandlerFunc { return h.list }

// paginateProducts godoc
// @Summary Paginate products
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.Page[domain.Product]
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/paginate [get]
func paginateProducts(h *productRecordHandler) gin.HandlerFunc { return h.paginate }

// showProduct godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [get]
func showProduct(h *productRecordHandler) gin.HandlerFunc { return h.show }

// storeProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "New product"
// @Success 201 {object} dto.WriteOutcome
// @Failure 400 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /products [post]
func storeProduct(h *productRecordHandler) gin.HandlerFunc { return h.store }

// updateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /products/{id} [put]
func updateProduct(h *productRecordHandler) gin.HandlerFunc { return h.update }

// toggleProduct godoc
// @Summary Toggle a product's active flag
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 404 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /products/{id}/toggle [patch]
func toggleProduct(h *productRecordHandler) gin.HandlerFunc { return h.toggleActive }

// destroyProduct godoc
// @Summary Delete a product
// @Description Fails with 409 while sales still reference the product.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.WriteOutcome
// @Failure 409 {object} dto.WriteOutcome
// @Security BearerAuth
// @Router /products/{id} [delete]
func destroyProduct(h *productRecordHandler) gin.HandlerFunc { return h.destroy }
