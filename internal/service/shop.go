// Package service contains the business logic for the pricebook API.
// Services validate inputs, enforce cross-entity consistency, and
// orchestrate repo calls. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhavlik/pricebook/internal/domain"
	"github.com/jhavlik/pricebook/internal/repo"
)

// ShopService implements business logic for Shop operations.
// Its main rule is name uniqueness: two shops may not share a name,
// compared case-insensitively.
type ShopService struct {
	shops repo.ShopRepo
}

// NewShopService constructs a ShopService backed by the provided ShopRepo.
func NewShopService(shops repo.ShopRepo) *ShopService {
	return &ShopService{shops: shops}
}

// Create validates and persists a new shop, returning its id.
// A missing id is filled in server-side; a duplicate name (any casing)
// fails with domain.ErrConflict before anything is inserted.
func (s *ShopService) Create(ctx context.Context, shop domain.Shop) (uuid.UUID, error) {
	if strings.TrimSpace(shop.Name) == "" {
		return uuid.Nil, fmt.Errorf("service.ShopService.Create: %w: name is required", domain.ErrValidation)
	}
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}

	exists, err := s.shops.ExistsByName(ctx, shop.Name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.ShopService.Create: %w", err)
	}
	if exists {
		return uuid.Nil, fmt.Errorf("service.ShopService.Create: %w: shop %q already exists", domain.ErrConflict, shop.Name)
	}

	id, err := s.shops.Create(ctx, shop)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.ShopService.Create: %w", err)
	}
	return id, nil
}

// GetByID returns a single shop by id.
func (s *ShopService) GetByID(ctx context.Context, id uuid.UUID) (domain.Shop, error) {
	shop, err := s.shops.GetByID(ctx, id)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("service.ShopService.GetByID: %w", err)
	}
	return shop, nil
}

// List returns all shops.
func (s *ShopService) List(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.shops.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ShopService.List: %w", err)
	}
	return shops, nil
}

// ListFiltered returns the shops matching the filter.
func (s *ShopService) ListFiltered(ctx context.Context, f domain.ShopFilter) ([]domain.Shop, error) {
	shops, err := s.shops.ListFiltered(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.ShopService.ListFiltered: %w", err)
	}
	return shops, nil
}

// Delete removes a shop by id and returns the affected row count.
// Deleting a missing shop returns 0, not an error. Entries referencing the
// shop are left in place; listings tolerate the dangling reference.
func (s *ShopService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := s.shops.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("service.ShopService.Delete: %w", err)
	}
	return n, nil
}
