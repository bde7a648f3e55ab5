package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jhavlik/pricebook/internal/domain"
)

// shopCreateRequest is the POST /shops body. The id is optional; one is
// generated when absent, matching the frontend which never supplies ids.
type shopCreateRequest struct {
	ID    *uuid.UUID `json:"id"`
	Name  string     `json:"name"`
	Notes string     `json:"notes"`
}

// handleCreateShop handles POST /shops.
func (s *Server) handleCreateShop(w http.ResponseWriter, r *http.Request) {
	var req shopCreateRequest
	if err := decodeSanitized(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop JSON: "+err.Error())
		return
	}

	shop := domain.Shop{Name: req.Name, Notes: req.Notes}
	if req.ID != nil {
		shop.ID = *req.ID
	}

	id, err := s.shops.Create(r.Context(), shop)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

// handleListShops handles GET /shops.
func (s *Server) handleListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := s.shops.List(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shops)
}

// handleFilterShops handles GET /shops/filter.
func (s *Server) handleFilterShops(w http.ResponseWriter, r *http.Request) {
	f, err := parseShopFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	shops, err := s.shops.ListFiltered(r.Context(), f)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shops)
}

// handleGetShop handles GET /shops/{id}.
func (s *Server) handleGetShop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	shop, err := s.shops.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Shop not found")
			return
		}
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

// handleDeleteShop handles DELETE /shops/{id}.
func (s *Server) handleDeleteShop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := s.shops.Delete(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "Shop not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}
