package service

import (
	"context"
	"fmt"

	"stockpile/internal/model"
	"stockpile/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")
	return products, nil
}

// ListInStock retrieves the products currently in stock.
func (s *productService) ListInStock(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListInStock(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list in-stock products")
		return nil, fmt.Errorf("failed to list in-stock products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved in-stock products")
	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create stores a new product built from the validated input.
func (s *productService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	product := model.Product{
		Name:    *input.Name,
		Price:   *input.Price,
		InStock: *input.InStock,
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// Update merges the supplied fields into an existing product.
func (s *productService) Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error) {
	updated, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		if err == model.ErrProductNotFound {
			s.logger.Debug().Int("product_id", id).Msg("product not found")
			return nil, err
		}
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Int("product_id", id).Msg("product updated")
	return updated, nil
}

// Delete removes a product by ID.
func (s *productService) Delete(ctx context.Context, id int) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if err == model.ErrProductNotFound {
			s.logger.Debug().Int("product_id", id).Msg("product not found")
			return err
		}
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}
