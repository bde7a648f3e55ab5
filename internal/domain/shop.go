// Package domain contains the core data types for the pricebook application.
// This package has zero dependencies on the rest of the module and is imported
// by every other internal package (repo, service, handler).
package domain

import "github.com/google/uuid"

// Shop represents a store where product prices are observed.
// Names are unique case-insensitively; identity is the caller-assigned UUID.
// Shops are immutable after creation; there is no update path.
type Shop struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Notes string    `json:"notes,omitempty"`
}

// ShopFilter narrows a shop listing. Nil fields impose no constraint;
// a filter with all fields nil matches every shop.
type ShopFilter struct {
	ID    *uuid.UUID
	Name  *string
	Notes *string
}
