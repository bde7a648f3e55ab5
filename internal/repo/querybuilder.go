package repo

import (
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhavlik/pricebook/internal/domain"
)

// sqlBuilder accumulates bound clauses for dynamic statements. Every value
// is bound through a pgx named argument; no filter or update value ever
// appears in the statement text, so the assembled SQL is injection-safe by
// construction.
type sqlBuilder struct {
	clauses []string
	args    pgx.NamedArgs
}

func newSQLBuilder() *sqlBuilder {
	return &sqlBuilder{args: pgx.NamedArgs{}}
}

// add appends a clause and binds val under name. The clause must reference
// the placeholder as @name.
func (b *sqlBuilder) add(clause, name string, val any) {
	b.clauses = append(b.clauses, clause)
	b.args[name] = val
}

func (b *sqlBuilder) empty() bool { return len(b.clauses) == 0 }

// whereTail returns the filter clauses as an AND-joined tail to append to a
// base statement that ends in "WHERE 1=1". An empty builder returns "".
func (b *sqlBuilder) whereTail() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " AND " + strings.Join(b.clauses, " AND ")
}

// setList returns the assignment clauses as a comma-joined SET list.
func (b *sqlBuilder) setList() string {
	return strings.Join(b.clauses, ", ")
}

// fieldCond describes one optional filter field: the predicate appended
// when the field is present, the placeholder it binds, and a getter that
// extracts the value. Each entity's conditions live in a static table and
// are applied in table order, so the assembled SQL is deterministic.
type fieldCond[F any] struct {
	clause string
	name   string
	get    func(F) (any, bool)
}

// applyConds walks a condition table in order and adds a clause for every
// present field.
func applyConds[F any](b *sqlBuilder, conds []fieldCond[F], f F) {
	for _, c := range conds {
		if v, ok := c.get(f); ok {
			b.add(c.clause, c.name, v)
		}
	}
}

// opt converts an optional field into the (value, present) shape applyConds
// expects.
func opt[T any](p *T) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

// shopConds is the condition table for shop filters.
var shopConds = []fieldCond[domain.ShopFilter]{
	{"id = @id", "id", func(f domain.ShopFilter) (any, bool) { return opt(f.ID) }},
	{"name = @name", "name", func(f domain.ShopFilter) (any, bool) { return opt(f.Name) }},
	{"notes = @notes", "notes", func(f domain.ShopFilter) (any, bool) { return opt(f.Notes) }},
}

// productConds is the condition table for product filters. Only the
// product-side fields of domain.ProductFilter apply; the entry-side fields
// (prices, unit, shop, date) are ignored here and consumed by entryConds.
// The tag predicate is array membership, not a substring match.
var productConds = []fieldCond[domain.ProductFilter]{
	{"id = @id", "id", func(f domain.ProductFilter) (any, bool) { return opt(f.ID) }},
	{"name = @name", "name", func(f domain.ProductFilter) (any, bool) { return opt(f.Name) }},
	{"notes = @notes", "notes", func(f domain.ProductFilter) (any, bool) { return opt(f.Notes) }},
	{"@tag = ANY(tags)", "tag", func(f domain.ProductFilter) (any, bool) { return opt(f.Tag) }},
}

// entryConds is the condition table for product entry filters.
// MinPrice and MaxPrice are independent inclusive bounds.
var entryConds = []fieldCond[domain.ProductFilter]{
	{"id = @id", "id", func(f domain.ProductFilter) (any, bool) { return opt(f.ID) }},
	{"product_id = @product_id", "product_id", func(f domain.ProductFilter) (any, bool) { return opt(f.ProductID) }},
	{"price >= @min_price", "min_price", func(f domain.ProductFilter) (any, bool) { return opt(f.MinPrice) }},
	{"price <= @max_price", "max_price", func(f domain.ProductFilter) (any, bool) { return opt(f.MaxPrice) }},
	{"product_volume = @product_volume", "product_volume", func(f domain.ProductFilter) (any, bool) { return opt(f.ProductVolume) }},
	{"unit = @unit", "unit", func(f domain.ProductFilter) (any, bool) {
		if f.Unit == nil {
			return nil, false
		}
		return f.Unit.String(), true
	}},
	{"shop_id = @shop_id", "shop_id", func(f domain.ProductFilter) (any, bool) { return opt(f.ShopID) }},
	{"date = @date", "date", func(f domain.ProductFilter) (any, bool) { return opt(f.Date) }},
	{"notes = @notes", "notes", func(f domain.ProductFilter) (any, bool) { return opt(f.Notes) }},
}

// productSetBuilder collects the SET clauses for a partial product update.
func productSetBuilder(u domain.ProductUpdate) *sqlBuilder {
	b := newSQLBuilder()
	if u.Name != nil {
		b.add("name = @name", "name", *u.Name)
	}
	if u.Notes != nil {
		b.add("notes = @notes", "notes", *u.Notes)
	}
	if u.Tags != nil {
		b.add("tags = @tags", "tags", u.Tags)
	}
	return b
}

// entrySetBuilder collects the SET clauses for a partial entry update.
func entrySetBuilder(u domain.EntryUpdate) *sqlBuilder {
	b := newSQLBuilder()
	if u.Price != nil {
		b.add("price = @price", "price", *u.Price)
	}
	if u.ProductVolume != nil {
		b.add("product_volume = @product_volume", "product_volume", *u.ProductVolume)
	}
	if u.Unit != nil {
		b.add("unit = @unit", "unit", u.Unit.String())
	}
	if u.ShopID != nil {
		b.add("shop_id = @shop_id", "shop_id", *u.ShopID)
	}
	if u.Date != nil {
		b.add("date = @date", "date", *u.Date)
	}
	if u.Notes != nil {
		b.add("notes = @notes", "notes", *u.Notes)
	}
	return b
}
