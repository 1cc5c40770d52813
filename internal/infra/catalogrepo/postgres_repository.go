package catalogrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skintrack/skintrack/internal/domain/catalog"
)

// PostgresRepository implements catalog.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns the full catalog in insertion order.
func (r *PostgresRepository) List(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, brand, rating, impact, description, image, benefits, concerns
		FROM products
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// Get fetches a single product by id.
func (r *PostgresRepository) Get(ctx context.Context, id string) (catalog.Product, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, brand, rating, impact, description, image, benefits, concerns
		FROM products
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return catalog.Product{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return catalog.Product{}, false, rows.Err()
	}
	product, err := scanProduct(rows)
	if err != nil {
		return catalog.Product{}, false, err
	}
	return product, true, rows.Err()
}

func scanProduct(row pgx.Row) (catalog.Product, error) {
	var (
		product catalog.Product
		image   *string
	)
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Brand,
		&product.Rating,
		&product.Impact,
		&product.Description,
		&image,
		&product.Benefits,
		&product.Concerns,
	); err != nil {
		return catalog.Product{}, err
	}
	if image != nil {
		product.Image = *image
	}
	return product, nil
}

var _ catalog.Repository = (*PostgresRepository)(nil)
