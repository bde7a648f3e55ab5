// Package repo contains all database access logic for the pricebook API.
// Each entity has its own file with an interface and a Postgres
// implementation; querybuilder.go holds the dynamic WHERE/SET assembly they
// share. No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhavlik/pricebook/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ShopRepo defines the persistence operations for Shops.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ShopRepo interface {
	// Create inserts a new shop under the caller-assigned id and returns that id.
	Create(ctx context.Context, shop domain.Shop) (uuid.UUID, error)

	// GetByID retrieves a single shop by its UUID primary key.
	// Returns domain.ErrNotFound if no shop with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Shop, error)

	// List returns all shops. Row order is unspecified.
	List(ctx context.Context) ([]domain.Shop, error)

	// ListFiltered returns the shops matching every present filter field.
	ListFiltered(ctx context.Context, f domain.ShopFilter) ([]domain.Shop, error)

	// ExistsByName reports whether a shop with the given name exists,
	// compared case-insensitively.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Exists reports whether a shop with the given id exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Delete removes a shop by ID and returns the affected row count
	// (0 when the shop does not exist). Referencing entries are left in
	// place; deletes do not cascade.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// pgShopRepo is the Postgres implementation of ShopRepo.
type pgShopRepo struct {
	db db
}

// NewShopRepo constructs a ShopRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewShopRepo(db db) ShopRepo {
	return &pgShopRepo{db: db}
}

func (r *pgShopRepo) Create(ctx context.Context, shop domain.Shop) (uuid.UUID, error) {
	const q = `
		INSERT INTO shops (id, name, notes)
		VALUES (@id, @name, @notes)
		RETURNING id`

	args := pgx.NamedArgs{
		"id":    shop.ID,
		"name":  shop.Name,
		"notes": nullable(shop.Notes),
	}

	var id pgtype.UUID
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("repo.ShopRepo.Create: %w", err)
	}
	return uuid.UUID(id.Bytes), nil
}

func (r *pgShopRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Shop, error) {
	const q = `
		SELECT id, name, notes
		FROM shops
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	shop, err := scanShop(row)
	if err != nil {
		return domain.Shop{}, fmt.Errorf("repo.ShopRepo.GetByID: %w", err)
	}
	return shop, nil
}

func (r *pgShopRepo) List(ctx context.Context) ([]domain.Shop, error) {
	return r.ListFiltered(ctx, domain.ShopFilter{})
}

// ListFiltered appends one bound predicate per present filter field to the
// unconditional base statement, in shopConds order.
func (r *pgShopRepo) ListFiltered(ctx context.Context, f domain.ShopFilter) ([]domain.Shop, error) {
	b := newSQLBuilder()
	applyConds(b, shopConds, f)
	q := `SELECT id, name, notes FROM shops WHERE 1=1` + b.whereTail()

	rows, err := r.db.Query(ctx, q, b.args)
	if err != nil {
		return nil, fmt.Errorf("repo.ShopRepo.ListFiltered: %w", err)
	}
	defer rows.Close()

	shops := []domain.Shop{}
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ShopRepo.ListFiltered: scan: %w", err)
		}
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ShopRepo.ListFiltered: rows: %w", err)
	}
	return shops, nil
}

func (r *pgShopRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM shops WHERE lower(name) = lower(@name))`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.ShopRepo.ExistsByName: %w", err)
	}
	return exists, nil
}

func (r *pgShopRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM shops WHERE id = @id)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.ShopRepo.Exists: %w", err)
	}
	return exists, nil
}

func (r *pgShopRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	const q = `DELETE FROM shops WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return 0, fmt.Errorf("repo.ShopRepo.Delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanShop maps a single database row into a domain.Shop.
func scanShop(s scanner) (domain.Shop, error) {
	var (
		shop  domain.Shop
		id    pgtype.UUID
		notes pgtype.Text
	)
	if err := s.Scan(&id, &shop.Name, &notes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Shop{}, domain.ErrNotFound
		}
		return domain.Shop{}, err
	}
	shop.ID = uuid.UUID(id.Bytes)
	shop.Notes = notes.String
	return shop, nil
}

// nullable maps an empty string to NULL so optional text columns stay NULL
// instead of accumulating empty strings.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
