package store

import (
	"context"

	"github.com/MKhiriev/acme-store/models"
	"github.com/google/uuid"
)

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	// CreateUser inserts a new user row with a layer-generated v4 UUID.
	// passwordHash must already be the bcrypt hash; the repository never
	// sees plaintext. Returns [ErrUsernameAlreadyExists] when the username
	// is taken.
	CreateUser(ctx context.Context, username string, passwordHash string) (models.User, error)

	// GetAllUsers returns every user row in unspecified order.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// ProductRepository is the data-access contract for the products table.
type ProductRepository interface {
	// CreateProduct inserts a new product row with a layer-generated v4 UUID.
	CreateProduct(ctx context.Context, name string) (models.Product, error)

	// GetAllProducts returns every product row in unspecified order.
	GetAllProducts(ctx context.Context) ([]models.Product, error)
}

// FavoriteRepository is the data-access contract for the favorites table.
type FavoriteRepository interface {
	// CreateFavorite inserts a new favorite row with a layer-generated v4
	// UUID. Returns [ErrFavoriteAlreadyExists] when the (userID, productID)
	// pair exists, [ErrFavoriteParentNotFound] when either id references no
	// row.
	CreateFavorite(ctx context.Context, userID, productID uuid.UUID) (models.Favorite, error)

	// GetUserFavorites returns all favorites owned by userID in unspecified
	// order; an empty slice when there are none.
	GetUserFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)

	// DeleteFavorite removes the favorite identified by favoriteID, but only
	// if it is owned by userID. A delete that matches no row is not an
	// error.
	DeleteFavorite(ctx context.Context, userID, favoriteID uuid.UUID) error
}

// ErrorClassificator places database errors into the taxonomy exposed to
// callers. See [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
