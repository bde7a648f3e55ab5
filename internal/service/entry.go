package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhavlik/pricebook/internal/domain"
	"github.com/jhavlik/pricebook/internal/repo"
)

// Price and product volume must fall within these bounds on every write.
const (
	priceMin = 0.0
	priceMax = 10000.0
)

// validate checks the struct tags on update inputs (see domain.EntryUpdate).
var validate = validator.New()

// EntryByName is the convenience creation input that names the product and
// shop instead of supplying their ids. The shop name is required on this
// path even though ShopID is optional on the raw entity.
type EntryByName struct {
	ID            *uuid.UUID
	ProductName   string
	ShopName      string
	Price         float64
	ProductVolume *float64
	Unit          domain.Unit
	Date          *time.Time
	Notes         string
}

// EntryService implements business logic for ProductEntry operations.
// It owns the pre-mutation consistency checks: value bounds, volume
// positivity, shop existence, and name-to-id resolution.
type EntryService struct {
	entries  repo.EntryRepo
	products repo.ProductRepo
	shops    repo.ShopRepo
}

// NewEntryService constructs an EntryService backed by the provided repos.
func NewEntryService(entries repo.EntryRepo, products repo.ProductRepo, shops repo.ShopRepo) *EntryService {
	return &EntryService{entries: entries, products: products, shops: shops}
}

// Create validates and persists a new entry with fully-resolved ids.
// ProductVolume, when present, must be non-negative (0.0 is allowed);
// price must lie within [0, 10000]. A missing id is filled in server-side.
func (s *EntryService) Create(ctx context.Context, e domain.ProductEntry) (uuid.UUID, error) {
	if e.ProductID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("service.EntryService.Create: %w: product_id is required", domain.ErrValidation)
	}
	if e.Price < priceMin || e.Price > priceMax {
		return uuid.Nil, fmt.Errorf("service.EntryService.Create: %w: price must be between %g and %g", domain.ErrValidation, priceMin, priceMax)
	}
	if e.ProductVolume != nil && *e.ProductVolume < 0 {
		return uuid.Nil, fmt.Errorf("service.EntryService.Create: %w: product_volume must not be negative", domain.ErrValidation)
	}
	if _, err := domain.ParseUnit(e.Unit.String()); err != nil {
		return uuid.Nil, fmt.Errorf("service.EntryService.Create: %w", err)
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	id, err := s.entries.Create(ctx, e)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.EntryService.Create: %w", err)
	}
	return id, nil
}

// CreateByName resolves the product and shop names to ids and funnels into
// Create. Resolution is exact-match: a product name matching no product
// fails with domain.ErrNotFound, a name shared by several products fails
// with domain.ErrConflict rather than silently picking one. The shop name
// is required and must resolve; shop names are unique case-insensitively,
// so shop resolution cannot be ambiguous.
func (s *EntryService) CreateByName(ctx context.Context, in EntryByName) (uuid.UUID, error) {
	if strings.TrimSpace(in.ProductName) == "" {
		return uuid.Nil, fmt.Errorf("service.EntryService.CreateByName: %w: product_name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.ShopName) == "" {
		return uuid.Nil, fmt.Errorf("service.EntryService.CreateByName: %w: shop_name is required", domain.ErrValidation)
	}

	matches, err := s.products.FindByName(ctx, in.ProductName)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.EntryService.CreateByName: %w", err)
	}
	switch len(matches) {
	case 0:
		return uuid.Nil, fmt.Errorf("service.EntryService.CreateByName: %w: no product named %q", domain.ErrNotFound, in.ProductName)
	case 1:
	default:
		return uuid.Nil, fmt.Errorf("service.EntryService.CreateByName: %w: product name %q is ambiguous", domain.ErrConflict, in.ProductName)
	}

	shops, err := s.shops.ListFiltered(ctx, domain.ShopFilter{Name: &in.ShopName})
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.EntryService.CreateByName: %w", err)
	}
	if len(shops) == 0 {
		return uuid.Nil, fmt.Errorf("service.EntryService.CreateByName: %w: no shop named %q", domain.ErrNotFound, in.ShopName)
	}
	shopID := shops[0].ID

	e := domain.ProductEntry{
		ProductID:     matches[0].ID,
		Price:         in.Price,
		ProductVolume: in.ProductVolume,
		Unit:          in.Unit,
		ShopID:        &shopID,
		Date:          in.Date,
		Notes:         in.Notes,
	}
	if in.ID != nil {
		e.ID = *in.ID
	}
	return s.Create(ctx, e)
}

// GetByID returns a single entry by id.
func (s *EntryService) GetByID(ctx context.Context, id uuid.UUID) (domain.ProductEntry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return domain.ProductEntry{}, fmt.Errorf("service.EntryService.GetByID: %w", err)
	}
	return e, nil
}

// ListFiltered returns the entries matching the filter, each enriched with
// its shop's display name. An entry whose shop has since been deleted keeps
// an empty name; only a store failure aborts the listing.
func (s *EntryService) ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.ProductEntry, error) {
	entries, err := s.entries.ListFiltered(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.ListFiltered: %w", err)
	}

	for i := range entries {
		if entries[i].ShopID == nil {
			continue
		}
		shop, err := s.shops.GetByID(ctx, *entries[i].ShopID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("service.EntryService.ListFiltered: resolve shop: %w", err)
		}
		entries[i].ShopName = shop.Name
	}
	return entries, nil
}

// Update applies a partial update and returns the affected row count.
// Price and volume bounds are enforced by the validator tags on
// domain.EntryUpdate; a supplied shop id must reference an existing shop
// (checked up front, so a violation aborts the whole update, no partial
// field application). Zero supplied fields short-circuit to 0.
func (s *EntryService) Update(ctx context.Context, id uuid.UUID, u domain.EntryUpdate) (int64, error) {
	if err := validate.Struct(u); err != nil {
		return 0, fmt.Errorf("service.EntryService.Update: %w: %v", domain.ErrValidation, err)
	}
	if u.IsEmpty() {
		return 0, nil
	}

	if u.ShopID != nil {
		exists, err := s.shops.Exists(ctx, *u.ShopID)
		if err != nil {
			return 0, fmt.Errorf("service.EntryService.Update: %w", err)
		}
		if !exists {
			return 0, fmt.Errorf("service.EntryService.Update: %w: shop %s does not exist", domain.ErrReference, u.ShopID)
		}
	}

	n, err := s.entries.Update(ctx, id, u)
	if err != nil {
		return 0, fmt.Errorf("service.EntryService.Update: %w", err)
	}
	return n, nil
}

// Delete removes an entry by id and returns the affected row count.
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := s.entries.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("service.EntryService.Delete: %w", err)
	}
	return n, nil
}
