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

// productService implements the ProductSvcFacade interface
type productService struct {
	recordService[domain.Product]
}

// NewProductService creates a new product service with the provided dependencies
func NewProductService(repo portsrepo.ProductRepository, settings portsrepo.SettingReader) portssvc.ProductSvcFacade {
	return &productService{
		recordService: newRecordService[domain.Product](repo, settings, "product",
			func(p *domain.Product) bool { return p.IsActive }),
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	now := time.Now()
	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Count:     req.Count,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.SaveRecord(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *productService) Update(ctx context.Context, id string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	product, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Count != nil {
		product.Count = *req.Count
	}
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateRecord(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", id))
		return nil, err
	}
	return product, nil
}
