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

// ProductRepo defines the persistence operations for Products.
type ProductRepo interface {
	// Create inserts a new product under the caller-assigned id and returns that id.
	Create(ctx context.Context, p domain.Product) (uuid.UUID, error)

	// GetByID retrieves a single product by its UUID primary key.
	// Returns domain.ErrNotFound if no product with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error)

	// List returns all products. Row order is unspecified.
	List(ctx context.Context) ([]domain.Product, error)

	// ListFiltered returns the products matching every present filter field.
	// Entry-side filter fields are ignored.
	ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error)

	// FindByName returns all products whose name matches exactly.
	FindByName(ctx context.Context, name string) ([]domain.Product, error)

	// Update applies the supplied fields to the product with the given id
	// and returns the affected row count (0 or 1). An update with zero
	// supplied fields returns 0 without touching the database.
	Update(ctx context.Context, id uuid.UUID, u domain.ProductUpdate) (int64, error)

	// Delete removes a product by ID and returns the affected row count.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// pgProductRepo is the Postgres implementation of ProductRepo.
type pgProductRepo struct {
	db db
}

// NewProductRepo constructs a ProductRepo backed by the provided db connection.
func NewProductRepo(db db) ProductRepo {
	return &pgProductRepo{db: db}
}

func (r *pgProductRepo) Create(ctx context.Context, p domain.Product) (uuid.UUID, error) {
	const q = `
		INSERT INTO products (id, name, notes, tags)
		VALUES (@id, @name, @notes, @tags)
		RETURNING id`

	args := pgx.NamedArgs{
		"id":    p.ID,
		"name":  p.Name,
		"notes": nullable(p.Notes),
		"tags":  p.Tags, // nil becomes NULL
	}

	var id pgtype.UUID
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("repo.ProductRepo.Create: %w", err)
	}
	return uuid.UUID(id.Bytes), nil
}

func (r *pgProductRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	const q = `
		SELECT id, name, notes, tags
		FROM products
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	p, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("repo.ProductRepo.GetByID: %w", err)
	}
	return p, nil
}

func (r *pgProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.ListFiltered(ctx, domain.ProductFilter{})
}

// ListFiltered appends one bound predicate per present product-side filter
// field to the unconditional base statement, in productConds order.
func (r *pgProductRepo) ListFiltered(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	b := newSQLBuilder()
	applyConds(b, productConds, f)
	q := `SELECT id, name, notes, tags FROM products WHERE 1=1` + b.whereTail()

	rows, err := r.db.Query(ctx, q, b.args)
	if err != nil {
		return nil, fmt.Errorf("repo.ProductRepo.ListFiltered: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ProductRepo.ListFiltered: scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ProductRepo.ListFiltered: rows: %w", err)
	}
	return products, nil
}

func (r *pgProductRepo) FindByName(ctx context.Context, name string) ([]domain.Product, error) {
	products, err := r.ListFiltered(ctx, domain.ProductFilter{Name: &name})
	if err != nil {
		return nil, fmt.Errorf("repo.ProductRepo.FindByName: %w", err)
	}
	return products, nil
}

func (r *pgProductRepo) Update(ctx context.Context, id uuid.UUID, u domain.ProductUpdate) (int64, error) {
	b := productSetBuilder(u)
	if b.empty() {
		return 0, nil
	}
	b.args["id"] = id
	q := `UPDATE products SET ` + b.setList() + ` WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, b.args)
	if err != nil {
		return 0, fmt.Errorf("repo.ProductRepo.Update: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgProductRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	const q = `DELETE FROM products WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return 0, fmt.Errorf("repo.ProductRepo.Delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanProduct maps a single database row into a domain.Product.
func scanProduct(s scanner) (domain.Product, error) {
	var (
		p     domain.Product
		id    pgtype.UUID
		notes pgtype.Text
		tags  []string
	)
	if err := s.Scan(&id, &p.Name, &notes, &tags); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, err
	}
	p.ID = uuid.UUID(id.Bytes)
	p.Notes = notes.String
	p.Tags = tags
	return p, nil
}
