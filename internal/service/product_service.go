package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/repository"

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

// GetAll retrieves products matching the filter, with pagination.
func (s *productService) GetAll(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	if filter.Category != "" && !model.ValidCategory(filter.Category) {
		s.logger.Warn().Str("category", filter.Category).Msg("unknown category filter")
		return nil, model.ErrInvalidCategory
	}

	products, err := s.productRepo.GetAll(ctx, filter, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Str("category", filter.Category).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("category", filter.Category).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// GetByIDs retrieves multiple products by their IDs.
func (s *productService) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to get products by IDs")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("requested", len(ids)).
		Int("found", len(products)).
		Msg("retrieved products by IDs")

	return products, nil
}

// Create adds a new product to the catalogue.
func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		s.logger.Warn().Err(err).Msg("invalid product")
		return nil, err
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Ingredients == nil {
		product.Ingredients = []string{}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("category", product.Category).
		Msg("product created")

	return product, nil
}

// Update replaces an existing product's fields.
func (s *productService) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		s.logger.Warn().Err(err).Str("product_id", product.ID).Msg("invalid product update")
		return nil, err
	}

	product.UpdatedAt = time.Now()
	if product.Ingredients == nil {
		product.Ingredients = []string{}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if err == model.ErrProductNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID).Msg("product updated")

	return product, nil
}

// Delete removes a product from the catalogue.
func (s *productService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if err == model.ErrProductNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}

// validateProduct checks the fields an admin can set.
func validateProduct(product *model.Product) error {
	if product == nil {
		return fmt.Errorf("product is nil")
	}
	if strings.TrimSpace(product.ID) == "" {
		return fmt.Errorf("product ID is required")
	}
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if product.Price < 0 {
		return model.ErrInvalidPrice
	}
	if !model.ValidCategory(product.Category) {
		return model.ErrInvalidCategory
	}
	return nil
}
