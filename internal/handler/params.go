package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jhavlik/pricebook/internal/domain"
)

// pathID parses the {id} path parameter as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID %q", raw)
	}
	return id, nil
}

// queryStr returns a pointer to the query parameter value, or nil when the
// parameter is absent. Absence means "no constraint", so the distinction
// between missing and empty matters.
func queryStr(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}

func queryUUID(q url.Values, key string) (*uuid.UUID, error) {
	s := queryStr(q, key)
	if s == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in %q", key)
	}
	return &id, nil
}

func queryFloat(q url.Values, key string) (*float64, error) {
	s := queryStr(q, key)
	if s == nil {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number in %q", key)
	}
	return &f, nil
}

// queryDate accepts both RFC 3339 and the frontend's zone-less
// "2006-01-02T15:04:05" form.
func queryDate(q url.Values, key string) (*time.Time, error) {
	s := queryStr(q, key)
	if s == nil {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid timestamp in %q", key)
}

// parseShopFilter builds a ShopFilter from query parameters.
func parseShopFilter(r *http.Request) (domain.ShopFilter, error) {
	q := r.URL.Query()
	id, err := queryUUID(q, "id")
	if err != nil {
		return domain.ShopFilter{}, err
	}
	return domain.ShopFilter{
		ID:    id,
		Name:  queryStr(q, "name"),
		Notes: queryStr(q, "notes"),
	}, nil
}

// parseProductFilter builds a ProductFilter from query parameters. The same
// parameter set serves both /products/filter and /product-entries/filter;
// each repo consumes only the fields that apply to its table.
func parseProductFilter(r *http.Request) (domain.ProductFilter, error) {
	q := r.URL.Query()
	var f domain.ProductFilter
	var err error

	if f.ID, err = queryUUID(q, "id"); err != nil {
		return f, err
	}
	if f.ProductID, err = queryUUID(q, "product_id"); err != nil {
		return f, err
	}
	if f.ShopID, err = queryUUID(q, "shop_id"); err != nil {
		return f, err
	}
	if f.MinPrice, err = queryFloat(q, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = queryFloat(q, "max_price"); err != nil {
		return f, err
	}
	if f.ProductVolume, err = queryFloat(q, "product_volume"); err != nil {
		return f, err
	}
	if f.Date, err = queryDate(q, "date"); err != nil {
		return f, err
	}
	if s := queryStr(q, "unit"); s != nil {
		unit, err := domain.ParseUnit(*s)
		if err != nil {
			return f, fmt.Errorf("invalid unit %q", *s)
		}
		f.Unit = &unit
	}
	f.Name = queryStr(q, "name")
	f.Notes = queryStr(q, "notes")
	f.Tag = queryStr(q, "tag")
	return f, nil
}
