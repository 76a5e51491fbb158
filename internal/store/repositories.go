package store

import "github.com/MKhiriev/acme-store/internal/logger"

// Repositories aggregates the data-access layer for all three entities.
type Repositories struct {
	UserRepository     UserRepository
	ProductRepository  ProductRepository
	FavoriteRepository FavoriteRepository
}

// NewRepositories constructs all repositories over the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		ProductRepository:  NewProductRepository(db, logger),
		FavoriteRepository: NewFavoriteRepository(db, logger),
	}
}
