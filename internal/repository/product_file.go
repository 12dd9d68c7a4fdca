package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"stockpile/internal/model"

	"github.com/rs/zerolog"
)

// fileProductRepository persists the whole collection as a single
// pretty-printed JSON array on disk. Every call re-reads the file, so
// no state survives across requests; a mutex serializes the
// load-mutate-save sequence within the process.
type fileProductRepository struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger
}

// NewFileProductRepository creates a product repository backed by the
// JSON file at path. The file is created lazily on the first write.
func NewFileProductRepository(path string, logger zerolog.Logger) ProductRepository {
	return &fileProductRepository{
		path:   path,
		logger: logger.With().Str("repository", "product_file").Logger(),
	}
}

// loadAll reads the backing file. A missing file means an empty
// collection. An unreadable or unparsable file is logged and also
// treated as empty, so callers cannot tell "empty" from "corrupt".
func (r *fileProductRepository) loadAll() []model.Product {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Error().Err(err).Str("path", r.path).Msg("failed to read products file")
		}
		return []model.Product{}
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		r.logger.Error().Err(err).Str("path", r.path).Msg("failed to parse products file")
		return []model.Product{}
	}
	if products == nil {
		products = []model.Product{}
	}

	return products
}

// saveAll serializes the full collection and overwrites the backing
// file in one write.
func (r *fileProductRepository) saveAll(products []model.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.logger.Error().Err(err).Str("path", r.path).Msg("failed to write products file")
		return fmt.Errorf("failed to write products file: %w", err)
	}

	return nil
}

func (r *fileProductRepository) List(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadAll(), nil
}

func (r *fileProductRepository) ListInStock(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inStock := []model.Product{}
	for _, p := range r.loadAll() {
		if p.InStock {
			inStock = append(inStock, p)
		}
	}
	return inStock, nil
}

func (r *fileProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.loadAll() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fileProductRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.loadAll()
	product.ID = nextID(products)
	products = append(products, product)

	if err := r.saveAll(products); err != nil {
		return nil, err
	}

	r.logger.Debug().Int("product_id", product.ID).Msg("product created")
	return &product, nil
}

func (r *fileProductRepository) Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.loadAll()
	for i := range products {
		if products[i].ID != id {
			continue
		}

		patch.Apply(&products[i])
		if err := r.saveAll(products); err != nil {
			return nil, err
		}

		updated := products[i]
		r.logger.Debug().Int("product_id", id).Msg("product updated")
		return &updated, nil
	}

	return nil, model.ErrProductNotFound
}

func (r *fileProductRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.loadAll()
	for i := range products {
		if products[i].ID != id {
			continue
		}

		products = append(products[:i], products[i+1:]...)
		if err := r.saveAll(products); err != nil {
			return err
		}

		r.logger.Debug().Int("product_id", id).Msg("product deleted")
		return nil
	}

	return model.ErrProductNotFound
}
