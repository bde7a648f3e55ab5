package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductEntry is one priced observation of a product: what it cost,
// in which shop, on which date. ShopID and Date are optional; an entry
// may record a price without tying it to a shop or a day.
//
// ShopName is a display-only enrichment filled in when listing entries;
// it is never stored. It stays empty when the referenced shop has been
// deleted since the entry was created.
type ProductEntry struct {
	ID            uuid.UUID  `json:"id"`
	ProductID     uuid.UUID  `json:"product_id"`
	Price         float64    `json:"price"`
	ProductVolume *float64   `json:"product_volume,omitempty"`
	Unit          Unit       `json:"unit"`
	ShopID        *uuid.UUID `json:"shop_id,omitempty"`
	ShopName      string     `json:"shop_name,omitempty"`
	Date          *time.Time `json:"date,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// EntryUpdate carries the fields of a partial product entry update.
// Nil fields are left untouched. Price and ProductVolume must stay within
// [0, 10000] when supplied; the service layer enforces the bounds before
// the update reaches the database.
type EntryUpdate struct {
	Price         *float64 `validate:"omitempty,gte=0,lte=10000"`
	ProductVolume *float64 `validate:"omitempty,gte=0,lte=10000"`
	Unit          *Unit
	ShopID        *uuid.UUID
	Date          *time.Time
	Notes         *string
}

// IsEmpty reports whether the update supplies no fields at all.
func (u EntryUpdate) IsEmpty() bool {
	return u.Price == nil && u.ProductVolume == nil && u.Unit == nil &&
		u.ShopID == nil && u.Date == nil && u.Notes == nil
}
