package repository

import (
	"context"
	"fmt"

	"stockpile/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresProductRepository implements ProductRepository using PostgreSQL.
type postgresProductRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresProductRepository creates a PostgreSQL-backed product repository.
func NewPostgresProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &postgresProductRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product_postgres").Logger(),
	}
}

func (r *postgresProductRepository) list(ctx context.Context, query string) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.InStock); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// List retrieves all products in insertion order.
func (r *postgresProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, price, in_stock
		FROM products
		ORDER BY id
	`
	return r.list(ctx, query)
}

// ListInStock retrieves the products with in_stock set.
func (r *postgresProductRepository) ListInStock(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, price, in_stock
		FROM products
		WHERE in_stock
		ORDER BY id
	`
	return r.list(ctx, query)
}

// GetByID retrieves a single product by its ID.
func (r *postgresProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	query := `
		SELECT id, name, price, in_stock
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.InStock)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product. The ID is allocated inside the insert
// as one greater than the highest existing ID, matching the other
// backends.
func (r *postgresProductRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	query := `
		INSERT INTO products (id, name, price, in_stock)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3 FROM products
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, product.Name, product.Price, product.InStock).Scan(&product.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return &product, nil
}

// Update merges the supplied patch fields into an existing product.
func (r *postgresProductRepository) Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error) {
	query := `
		UPDATE products
		SET name     = COALESCE($2, name),
		    price    = COALESCE($3, price),
		    in_stock = COALESCE($4, in_stock)
		WHERE id = $1
		RETURNING id, name, price, in_stock
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id, patch.Name, patch.Price, patch.InStock).
		Scan(&p.ID, &p.Name, &p.Price, &p.InStock)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, model.ErrProductNotFound
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

// Delete removes a product by its ID.
func (r *postgresProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}
