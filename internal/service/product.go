package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhavlik/pricebook/internal/domain"
	"github.com/jhavlik/pricebook/internal/repo"
)

// ProductService implements business logic for Product operations.
type ProductService struct {
	products repo.ProductRepo
}

// NewProductService constructs a ProductService backed by the provided ProductRepo.
func NewProductService(products repo.ProductRepo) *ProductService {
	return &ProductService{products: products}
}

// Create validates and persists a new product, returning its id.
// The name must be non-empty once the sanitizer has blanked any underscore
// placeholder; a missing id is filled in server-side.
func (s *ProductService) Create(ctx context.Context, p domain.Product) (uuid.UUID, error) {
	if strings.TrimSpace(p.Name) == "" {
		return uuid.Nil, fmt.Errorf("service.ProductService.Create: %w: name is required", domain.ErrValidation)
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	id, err := s.products.Create(ctx, p)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.ProductService.Create: %w", err)
	}
	return id, nil
}

// GetByID returns a single product by id.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("service.ProductService.GetByID: %w", err)
	}
	return p, nil
}

// List returns all products.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ProductService.List: %w", err)
	}
	return products, nil
}

// ListFiltered returns the products matching the filter.
func (s *ProductService) ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.products.ListFiltered(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.ProductService.ListFiltered: %w", err)
	}
	return products, nil
}

// Update applies a partial update and returns the affected row count.
// An update supplying no fields short-circuits to 0 without touching the
// store; 0 for a non-empty update means the product does not exist.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, u domain.ProductUpdate) (int64, error) {
	if u.IsEmpty() {
		return 0, nil
	}

	n, err := s.products.Update(ctx, id, u)
	if err != nil {
		return 0, fmt.Errorf("service.ProductService.Update: %w", err)
	}
	return n, nil
}

// Delete removes a product by id and returns the affected row count.
// Deleting a missing product returns 0, not an error.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := s.products.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("service.ProductService.Delete: %w", err)
	}
	return n, nil
}
