package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jhavlik/pricebook/internal/domain"
)

// productCreateRequest is the POST /products body.
type productCreateRequest struct {
	ID    *uuid.UUID `json:"id"`
	Name  string     `json:"name"`
	Notes string     `json:"notes"`
	Tags  []string   `json:"tags"`
}

// productUpdateRequest is the PUT /products/{id} body. Absent fields stay
// untouched; only the supplied ones become SET clauses.
type productUpdateRequest struct {
	Name  *string  `json:"name"`
	Notes *string  `json:"notes"`
	Tags  []string `json:"tags"`
}

// handleCreateProduct handles POST /products.
func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productCreateRequest
	if err := decodeSanitized(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid product JSON: "+err.Error())
		return
	}

	p := domain.Product{Name: req.Name, Notes: req.Notes, Tags: req.Tags}
	if req.ID != nil {
		p.ID = *req.ID
	}

	id, err := s.products.Create(r.Context(), p)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

// handleListProducts handles GET /products.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.List(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// handleFilterProducts handles GET /products/filter.
func (s *Server) handleFilterProducts(w http.ResponseWriter, r *http.Request) {
	f, err := parseProductFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := s.products.ListFiltered(r.Context(), f)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// handleGetProduct handles GET /products/{id}.
func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleUpdateProduct handles PUT /products/{id}.
// The affected row count is the success signal: 0 means the product does
// not exist or the body supplied nothing to update.
func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req productUpdateRequest
	if err := decodeSanitized(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid product JSON: "+err.Error())
		return
	}

	u := domain.ProductUpdate{Name: req.Name, Notes: req.Notes, Tags: req.Tags}
	n, err := s.products.Update(r.Context(), id, u)
	if err != nil {
		serviceError(w, err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "Product not found or nothing to update")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// handleDeleteProduct handles DELETE /products/{id}.
func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := s.products.Delete(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}
