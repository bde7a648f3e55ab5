// Package handler implements the HTTP handlers for the pricebook API.
// All handlers are methods on Server; they are split into entity-specific
// files (shop.go, product.go, entry.go) but share the same struct so they
// can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jhavlik/pricebook/internal/domain"
	"github.com/jhavlik/pricebook/internal/service"
	"github.com/jhavlik/pricebook/spec"
)

// ShopServicer defines the business operations the shop handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ShopServicer interface {
	Create(ctx context.Context, shop domain.Shop) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Shop, error)
	List(ctx context.Context) ([]domain.Shop, error)
	ListFiltered(ctx context.Context, f domain.ShopFilter) ([]domain.Shop, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// ProductServicer defines the business operations the product handlers depend on.
type ProductServicer interface {
	Create(ctx context.Context, p domain.Product) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, u domain.ProductUpdate) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// EntryServicer defines the business operations the entry handlers depend on.
type EntryServicer interface {
	Create(ctx context.Context, e domain.ProductEntry) (uuid.UUID, error)
	CreateByName(ctx context.Context, in service.EntryByName) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.ProductEntry, error)
	ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.ProductEntry, error)
	Update(ctx context.Context, id uuid.UUID, u domain.EntryUpdate) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// Server holds the dependencies shared by all HTTP handlers.
type Server struct {
	shops    ShopServicer
	products ProductServicer
	entries  EntryServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(shops ShopServicer, products ProductServicer, entries EntryServicer) *Server {
	return &Server{shops: shops, products: products, entries: entries}
}

// Routes returns the chi router with every API route registered.
// Filter routes are registered before the {id} routes so "filter" is never
// captured as an id parameter.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)

	r.Route("/products", func(r chi.Router) {
		r.Post("/", s.handleCreateProduct)
		r.Get("/", s.handleListProducts)
		r.Get("/filter", s.handleFilterProducts)
		r.Get("/{id}", s.handleGetProduct)
		r.Put("/{id}", s.handleUpdateProduct)
		r.Delete("/{id}", s.handleDeleteProduct)
	})

	r.Route("/product-entries", func(r chi.Router) {
		r.Post("/", s.handleCreateEntry)
		r.Get("/filter", s.handleFilterEntries)
		r.Get("/{id}", s.handleGetEntry)
		r.Put("/{id}", s.handleUpdateEntry)
		r.Delete("/{id}", s.handleDeleteEntry)
	})

	r.Route("/shops", func(r chi.Router) {
		r.Post("/", s.handleCreateShop)
		r.Get("/", s.handleListShops)
		r.Get("/filter", s.handleFilterShops)
		r.Get("/{id}", s.handleGetShop)
		r.Delete("/{id}", s.handleDeleteShop)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleOpenAPI serves the embedded OpenAPI document. Serving it from the
// binary means the document and the running code are always shipped together.
func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
