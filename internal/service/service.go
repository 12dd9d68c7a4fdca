package service

import (
	"context"

	"stockpile/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves all products.
	List(ctx context.Context) ([]model.Product, error)

	// ListInStock retrieves the products currently in stock.
	ListInStock(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create validates and stores a new product, assigning its ID.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Update merges the supplied fields into an existing product.
	Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error)

	// Delete removes a product by ID.
	Delete(ctx context.Context, id int) error
}
