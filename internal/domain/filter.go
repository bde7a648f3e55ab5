package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductFilter narrows product and product entry listings. It spans the
// union of Product and ProductEntry fields because the two tables were
// split out of one; product queries ignore the entry-only fields and vice
// versa. Nil fields impose no constraint; they never match NULL.
//
// Tag is a membership test ("fruit" matches a product whose tag list
// contains "fruit"); Name, Notes and Unit are exact matches; MinPrice and
// MaxPrice are independent inclusive bounds and may be combined.
type ProductFilter struct {
	// Product fields.
	ID    *uuid.UUID
	Name  *string
	Notes *string
	Tag   *string

	// ProductEntry fields.
	ProductID     *uuid.UUID
	MinPrice      *float64
	MaxPrice      *float64
	ProductVolume *float64
	Unit          *Unit
	ShopID        *uuid.UUID
	Date          *time.Time
}
