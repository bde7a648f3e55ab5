package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jhavlik/pricebook/internal/domain"
	"github.com/jhavlik/pricebook/internal/handler"
	"github.com/jhavlik/pricebook/internal/service"
)

// Function-field mocks for the servicer interfaces. A test sets only the
// fields it expects to be called; an unexpected call panics on the nil field
// and fails the test loudly.

type mockShopService struct {
	create       func(ctx context.Context, shop domain.Shop) (uuid.UUID, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Shop, error)
	list         func(ctx context.Context) ([]domain.Shop, error)
	listFiltered func(ctx context.Context, f domain.ShopFilter) ([]domain.Shop, error)
	delete       func(ctx context.Context, id uuid.UUID) (int64, error)
}

var _ handler.ShopServicer = (*mockShopService)(nil)

func (m *mockShopService) Create(ctx context.Context, shop domain.Shop) (uuid.UUID, error) {
	return m.create(ctx, shop)
}
func (m *mockShopService) GetByID(ctx context.Context, id uuid.UUID) (domain.Shop, error) {
	return m.getByID(ctx, id)
}
func (m *mockShopService) List(ctx context.Context) ([]domain.Shop, error) {
	return m.list(ctx)
}
func (m *mockShopService) ListFiltered(ctx context.Context, f domain.ShopFilter) ([]domain.Shop, error) {
	return m.listFiltered(ctx, f)
}
func (m *mockShopService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.delete(ctx, id)
}

type mockProductService struct {
	create       func(ctx context.Context, p domain.Product) (uuid.UUID, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Product, error)
	list         func(ctx context.Context) ([]domain.Product, error)
	listFiltered func(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error)
	update       func(ctx context.Context, id uuid.UUID, u domain.ProductUpdate) (int64, error)
	delete       func(ctx context.Context, id uuid.UUID) (int64, error)
}

var _ handler.ProductServicer = (*mockProductService)(nil)

func (m *mockProductService) Create(ctx context.Context, p domain.Product) (uuid.UUID, error) {
	return m.create(ctx, p)
}
func (m *mockProductService) GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	return m.getByID(ctx, id)
}
func (m *mockProductService) List(ctx context.Context) ([]domain.Product, error) {
	return m.list(ctx)
}
func (m *mockProductService) ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	return m.listFiltered(ctx, f)
}
func (m *mockProductService) Update(ctx context.Context, id uuid.UUID, u domain.ProductUpdate) (int64, error) {
	return m.update(ctx, id, u)
}
func (m *mockProductService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.delete(ctx, id)
}

type mockEntryService struct {
	create       func(ctx context.Context, e domain.ProductEntry) (uuid.UUID, error)
	createByName func(ctx context.Context, in service.EntryByName) (uuid.UUID, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.ProductEntry, error)
	listFiltered func(ctx context.Context, f domain.ProductFilter) ([]domain.ProductEntry, error)
	update       func(ctx context.Context, id uuid.UUID, u domain.EntryUpdate) (int64, error)
	delete       func(ctx context.Context, id uuid.UUID) (int64, error)
}

var _ handler.EntryServicer = (*mockEntryService)(nil)

func (m *mockEntryService) Create(ctx context.Context, e domain.ProductEntry) (uuid.UUID, error) {
	return m.create(ctx, e)
}
func (m *mockEntryService) CreateByName(ctx context.Context, in service.EntryByName) (uuid.UUID, error) {
	return m.createByName(ctx, in)
}
func (m *mockEntryService) GetByID(ctx context.Context, id uuid.UUID) (domain.ProductEntry, error) {
	return m.getByID(ctx, id)
}
func (m *mockEntryService) ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.ProductEntry, error) {
	return m.listFiltered(ctx, f)
}
func (m *mockEntryService) Update(ctx context.Context, id uuid.UUID, u domain.EntryUpdate) (int64, error) {
	return m.update(ctx, id, u)
}
func (m *mockEntryService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.delete(ctx, id)
}

// doRequest routes a request through the full router so path parameters and
// route precedence behave as in production.
func doRequest(t *testing.T, srv *handler.Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded response body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func newServer(shops handler.ShopServicer, products handler.ProductServicer, entries handler.EntryServicer) *handler.Server {
	return handler.NewServer(shops, products, entries)
}

func rawRequest(t *testing.T, srv *handler.Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}
