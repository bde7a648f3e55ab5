package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhavlik/pricebook/internal/domain"
)

// EntryRepo defines the persistence operations for ProductEntries.
type EntryRepo interface {
	// Create inserts a new entry under the caller-assigned id and returns that id.
	Create(ctx context.Context, e domain.ProductEntry) (uuid.UUID, error)

	// GetByID retrieves a single entry by its UUID primary key.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.ProductEntry, error)

	// ListFiltered returns the entries matching every present entry-side
	// filter field. Row order is unspecified; ShopName is not populated
	// here; the service layer enriches it.
	ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.ProductEntry, error)

	// Update applies the supplied fields to the entry with the given id and
	// returns the affected row count (0 or 1). An update with zero supplied
	// fields returns 0 without touching the database.
	Update(ctx context.Context, id uuid.UUID, u domain.EntryUpdate) (int64, error)

	// Delete removes an entry by ID and returns the affected row count.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// pgEntryRepo is the Postgres implementation of EntryRepo.
type pgEntryRepo struct {
	db db
}

// NewEntryRepo constructs an EntryRepo backed by the provided db connection.
func NewEntryRepo(db db) EntryRepo {
	return &pgEntryRepo{db: db}
}

func (r *pgEntryRepo) Create(ctx context.Context, e domain.ProductEntry) (uuid.UUID, error) {
	const q = `
		INSERT INTO product_entries (id, product_id, price, product_volume, unit, shop_id, date, notes)
		VALUES (@id, @product_id, @price, @product_volume, @unit, @shop_id, @date, @notes)
		RETURNING id`

	args := pgx.NamedArgs{
		"id":             e.ID,
		"product_id":     e.ProductID,
		"price":          e.Price,
		"product_volume": e.ProductVolume,
		"unit":           e.Unit.String(),
		"shop_id":        e.ShopID,
		"date":           e.Date,
		"notes":          nullable(e.Notes),
	}

	var id pgtype.UUID
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("repo.EntryRepo.Create: %w", err)
	}
	return uuid.UUID(id.Bytes), nil
}

func (r *pgEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ProductEntry, error) {
	const q = `
		SELECT id, product_id, price, product_volume, unit, shop_id, date, notes
		FROM product_entries
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	e, err := scanEntry(row)
	if err != nil {
		return domain.ProductEntry{}, fmt.Errorf("repo.EntryRepo.GetByID: %w", err)
	}
	return e, nil
}

// ListFiltered appends one bound predicate per present entry-side filter
// field to the unconditional base statement, in entryConds order.
func (r *pgEntryRepo) ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.ProductEntry, error) {
	b := newSQLBuilder()
	applyConds(b, entryConds, f)
	q := `
		SELECT id, product_id, price, product_volume, unit, shop_id, date, notes
		FROM product_entries WHERE 1=1` + b.whereTail()

	rows, err := r.db.Query(ctx, q, b.args)
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.ListFiltered: %w", err)
	}
	defer rows.Close()

	entries := []domain.ProductEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.EntryRepo.ListFiltered: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.ListFiltered: rows: %w", err)
	}
	return entries, nil
}

func (r *pgEntryRepo) Update(ctx context.Context, id uuid.UUID, u domain.EntryUpdate) (int64, error) {
	b := entrySetBuilder(u)
	if b.empty() {
		return 0, nil
	}
	b.args["id"] = id
	q := `UPDATE product_entries SET ` + b.setList() + ` WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, b.args)
	if err != nil {
		return 0, fmt.Errorf("repo.EntryRepo.Update: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgEntryRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	const q = `DELETE FROM product_entries WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return 0, fmt.Errorf("repo.EntryRepo.Delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanEntry maps a single database row into a domain.ProductEntry.
// It handles the nullable volume, shop, date, and notes columns and parses
// the stored unit tag through the canonical conversion.
func scanEntry(s scanner) (domain.ProductEntry, error) {
	var (
		e       domain.ProductEntry
		id      pgtype.UUID
		prodID  pgtype.UUID
		volume  pgtype.Float8
		unitTag string
		shopID  pgtype.UUID
		date    pgtype.Timestamp
		notes   pgtype.Text
	)
	if err := s.Scan(&id, &prodID, &e.Price, &volume, &unitTag, &shopID, &date, &notes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ProductEntry{}, domain.ErrNotFound
		}
		return domain.ProductEntry{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.ProductID = uuid.UUID(prodID.Bytes)
	if volume.Valid {
		v := volume.Float64
		e.ProductVolume = &v
	}
	unit, err := domain.ParseUnit(unitTag)
	if err != nil {
		return domain.ProductEntry{}, fmt.Errorf("stored unit: %w", err)
	}
	e.Unit = unit
	if shopID.Valid {
		sid := uuid.UUID(shopID.Bytes)
		e.ShopID = &sid
	}
	if date.Valid {
		d := date.Time
		e.Date = &d
	}
	e.Notes = notes.String
	return e, nil
}
