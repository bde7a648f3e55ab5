package domain

import "github.com/google/uuid"

// Product is a catalog entry, decoupled from any price, shop, or date.
// Priced observations of a product live in ProductEntry.
type Product struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Notes string    `json:"notes,omitempty"`
	Tags  []string  `json:"tags,omitempty"`
}

// ProductUpdate carries the fields of a partial product update.
// Nil fields are left untouched by the update.
type ProductUpdate struct {
	Name  *string
	Notes *string
	Tags  []string
}

// IsEmpty reports whether the update supplies no fields at all.
// An empty update never reaches the database.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Notes == nil && u.Tags == nil
}
