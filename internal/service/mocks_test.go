package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhavlik/pricebook/internal/domain"
	"github.com/jhavlik/pricebook/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field; set only the ones your test needs; an unset method
// panics, which points straight at the missing expectation.
// This is idiomatic Go: no mock generation library for simple cases.

type mockShopRepo struct {
	create       func(ctx context.Context, shop domain.Shop) (uuid.UUID, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Shop, error)
	list         func(ctx context.Context) ([]domain.Shop, error)
	listFiltered func(ctx context.Context, f domain.ShopFilter) ([]domain.Shop, error)
	existsByName func(ctx context.Context, name string) (bool, error)
	exists       func(ctx context.Context, id uuid.UUID) (bool, error)
	delete       func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockShopRepo) Create(ctx context.Context, shop domain.Shop) (uuid.UUID, error) {
	return m.create(ctx, shop)
}
func (m *mockShopRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Shop, error) {
	return m.getByID(ctx, id)
}
func (m *mockShopRepo) List(ctx context.Context) ([]domain.Shop, error) {
	return m.list(ctx)
}
func (m *mockShopRepo) ListFiltered(ctx context.Context, f domain.ShopFilter) ([]domain.Shop, error) {
	return m.listFiltered(ctx, f)
}
func (m *mockShopRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.existsByName(ctx, name)
}
func (m *mockShopRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.exists(ctx, id)
}
func (m *mockShopRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.delete(ctx, id)
}

var _ repo.ShopRepo = (*mockShopRepo)(nil)

type mockProductRepo struct {
	create       func(ctx context.Context, p domain.Product) (uuid.UUID, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Product, error)
	list         func(ctx context.Context) ([]domain.Product, error)
	listFiltered func(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error)
	findByName   func(ctx context.Context, name string) ([]domain.Product, error)
	update       func(ctx context.Context, id uuid.UUID, u domain.ProductUpdate) (int64, error)
	delete       func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockProductRepo) Create(ctx context.Context, p domain.Product) (uuid.UUID, error) {
	return m.create(ctx, p)
}
func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	return m.getByID(ctx, id)
}
func (m *mockProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return m.list(ctx)
}
func (m *mockProductRepo) ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	return m.listFiltered(ctx, f)
}
func (m *mockProductRepo) FindByName(ctx context.Context, name string) ([]domain.Product, error) {
	return m.findByName(ctx, name)
}
func (m *mockProductRepo) Update(ctx context.Context, id uuid.UUID, u domain.ProductUpdate) (int64, error) {
	return m.update(ctx, id, u)
}
func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.delete(ctx, id)
}

var _ repo.ProductRepo = (*mockProductRepo)(nil)

type mockEntryRepo struct {
	create       func(ctx context.Context, e domain.ProductEntry) (uuid.UUID, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.ProductEntry, error)
	listFiltered func(ctx context.Context, f domain.ProductFilter) ([]domain.ProductEntry, error)
	update       func(ctx context.Context, id uuid.UUID, u domain.EntryUpdate) (int64, error)
	delete       func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockEntryRepo) Create(ctx context.Context, e domain.ProductEntry) (uuid.UUID, error) {
	return m.create(ctx, e)
}
func (m *mockEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ProductEntry, error) {
	return m.getByID(ctx, id)
}
func (m *mockEntryRepo) ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.ProductEntry, error) {
	return m.listFiltered(ctx, f)
}
func (m *mockEntryRepo) Update(ctx context.Context, id uuid.UUID, u domain.EntryUpdate) (int64, error) {
	return m.update(ctx, id, u)
}
func (m *mockEntryRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.delete(ctx, id)
}

var _ repo.EntryRepo = (*mockEntryRepo)(nil)
