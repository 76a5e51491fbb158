package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/store"
	"github.com/MKhiriev/acme-store/models"
)

// productService is the concrete implementation of ProductService.
type productService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

// NewProductService constructs a new ProductService wired to the given
// ProductRepository.
func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

// Create adds a new product to the catalog.
//
// Returns ErrInvalidDataProvided if name is empty, otherwise delegates to the
// ProductRepository.
func (s *productService) Create(ctx context.Context, name string) (models.Product, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Msg("invalid product data provided")
		return models.Product{}, ErrInvalidDataProvided
	}

	product, err := s.productRepository.CreateProduct(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return product, nil
}

// List returns the full product catalog.
func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products, err := s.productRepository.GetAllProducts(ctx)
	if err != nil {
		log.Err(err).Msg("product listing ended with error")
		return nil, fmt.Errorf("product listing ended with error: %w", err)
	}

	return products, nil
}
