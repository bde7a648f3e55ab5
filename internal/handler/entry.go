package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jhavlik/pricebook/internal/domain"
	"github.com/jhavlik/pricebook/internal/service"
)

// entryCreateRequest is the POST /product-entries body. Two creation paths
// share it: the convenience path names the product (and shop) and resolves
// them to ids; the direct path supplies product_id (and optionally shop_id)
// outright. product_name takes precedence when both are present.
type entryCreateRequest struct {
	ID            *uuid.UUID  `json:"id"`
	ProductID     *uuid.UUID  `json:"product_id"`
	ProductName   *string     `json:"product_name"`
	ShopID        *uuid.UUID  `json:"shop_id"`
	ShopName      *string     `json:"shop_name"`
	Price         float64     `json:"price"`
	ProductVolume *float64    `json:"product_volume"`
	Unit          domain.Unit `json:"unit"`
	Date          *time.Time  `json:"date"`
	Notes         string      `json:"notes"`
}

// entryUpdateRequest is the PUT /product-entries/{id} body.
type entryUpdateRequest struct {
	Price         *float64     `json:"price"`
	ProductVolume *float64     `json:"product_volume"`
	Unit          *domain.Unit `json:"unit"`
	ShopID        *uuid.UUID   `json:"shop_id"`
	Date          *time.Time   `json:"date"`
	Notes         *string      `json:"notes"`
}

// handleCreateEntry handles POST /product-entries.
// A failed name resolution is the client's mistake, so ErrNotFound maps to
// 400 here rather than the 404 used for direct lookups.
func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryCreateRequest
	if err := decodeSanitized(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid product entry JSON: "+err.Error())
		return
	}

	var (
		id  uuid.UUID
		err error
	)
	switch {
	case req.ProductName != nil:
		in := service.EntryByName{
			ID:            req.ID,
			ProductName:   *req.ProductName,
			Price:         req.Price,
			ProductVolume: req.ProductVolume,
			Unit:          req.Unit,
			Date:          req.Date,
			Notes:         req.Notes,
		}
		if req.ShopName != nil {
			in.ShopName = *req.ShopName
		}
		id, err = s.entries.CreateByName(r.Context(), in)
	case req.ProductID != nil:
		e := domain.ProductEntry{
			ProductID:     *req.ProductID,
			Price:         req.Price,
			ProductVolume: req.ProductVolume,
			Unit:          req.Unit,
			ShopID:        req.ShopID,
			Date:          req.Date,
			Notes:         req.Notes,
		}
		if req.ID != nil {
			e.ID = *req.ID
		}
		id, err = s.entries.Create(r.Context(), e)
	default:
		writeError(w, http.StatusBadRequest, "Missing product_name in product entry")
		return
	}

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusBadRequest, errorMessage(err))
			return
		}
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

// handleFilterEntries handles GET /product-entries/filter.
// Entries come back enriched with their shop's display name.
func (s *Server) handleFilterEntries(w http.ResponseWriter, r *http.Request) {
	f, err := parseProductFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := s.entries.ListFiltered(r.Context(), f)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleGetEntry handles GET /product-entries/{id}.
func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := s.entries.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Product entry not found")
			return
		}
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// handleUpdateEntry handles PUT /product-entries/{id}.
func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req entryUpdateRequest
	if err := decodeSanitized(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid product entry JSON: "+err.Error())
		return
	}

	u := domain.EntryUpdate{
		Price:         req.Price,
		ProductVolume: req.ProductVolume,
		Unit:          req.Unit,
		ShopID:        req.ShopID,
		Date:          req.Date,
		Notes:         req.Notes,
	}
	n, err := s.entries.Update(r.Context(), id, u)
	if err != nil {
		serviceError(w, err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "Product entry not found or nothing to update")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// handleDeleteEntry handles DELETE /product-entries/{id}.
func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := s.entries.Delete(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "Product entry not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}
