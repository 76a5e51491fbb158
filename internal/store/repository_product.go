package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/utils"
	"github.com/MKhiriev/acme-store/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository].
type productRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateProduct persists a new product row and returns the fully populated
// [models.Product]. The primary key is a v4 UUID generated here, before the
// INSERT. Product names need not be unique, so no constraint mapping is
// required beyond the generic wrapping.
func (r *productRepository) CreateProduct(ctx context.Context, name string) (models.Product, error) {
	log := logger.FromContext(ctx)

	var product models.Product
	row := r.db.QueryRowContext(ctx, createProduct, r.ids.Generate(), name)

	// create product in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Str("name", name).Msg("error: insert failed")
		return models.Product{}, r.db.wrapUnexpected(err)
	}

	// scan saved product from db
	if err := row.Scan(&product.ID, &product.Name); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, nil
}

// GetAllProducts returns every product row in unspecified order.
func (r *productRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllProducts)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetAllProducts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 16)
	for rows.Next() {
		var product models.Product
		if scanErr := rows.Scan(&product.ID, &product.Name); scanErr != nil {
			log.Err(scanErr).Str("func", "*productRepository.GetAllProducts").Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.GetAllProducts").Msg("row iteration ended with error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}
