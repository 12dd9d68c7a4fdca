package repository

import (
	"context"

	"stockpile/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves every product in insertion order.
	List(ctx context.Context) ([]model.Product, error)

	// ListInStock retrieves the products with inStock set, preserving
	// their relative order.
	ListInStock(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil)
	// when no product with that ID exists.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create stores a new product, assigning it the next free ID, and
	// returns the stored product.
	Create(ctx context.Context, product model.Product) (*model.Product, error)

	// Update merges the supplied patch fields into an existing product.
	// Returns model.ErrProductNotFound when the ID is unknown.
	Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error)

	// Delete removes a product. Returns model.ErrProductNotFound when
	// the ID is unknown.
	Delete(ctx context.Context, id int) error
}

// nextID returns one greater than the highest existing ID, or 1 for an
// empty collection. IDs of deleted products may be reused.
func nextID(products []model.Product) int {
	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}
