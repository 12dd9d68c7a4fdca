package repository

import (
	"context"
	"sync"

	"stockpile/internal/model"
)

// memoryProductRepository is an in-memory ProductRepository. It backs
// the "memory" store driver and doubles as a substitutable fake in
// tests; it follows the same ID allocation rules as the file backend.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products []model.Product
}

// NewMemoryProductRepository creates an empty in-memory product repository.
func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{
		products: []model.Product{},
	}
}

func (r *memoryProductRepository) List(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryProductRepository) ListInStock(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inStock := []model.Product{}
	for _, p := range r.products {
		if p.InStock {
			inStock = append(inStock, p)
		}
	}
	return inStock, nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memoryProductRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = nextID(r.products)
	r.products = append(r.products, product)
	return &product, nil
}

func (r *memoryProductRepository) Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			patch.Apply(&r.products[i])
			updated := r.products[i]
			return &updated, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (r *memoryProductRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return model.ErrProductNotFound
}
