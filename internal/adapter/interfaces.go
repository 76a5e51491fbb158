package adapter

import (
	"context"

	"github.com/MKhiriev/acme-store/models"
	"github.com/google/uuid"
)

// StoreClient is a typed client for the store's REST API. It is the
// programmatic counterpart of the HTTP surface: seed tooling, smoke tests,
// and other Go programs talk to a running server through it instead of
// hand-rolling requests.
type StoreClient interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListProducts(ctx context.Context) ([]models.Product, error)

	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, userID, productID uuid.UUID) (models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, favoriteID uuid.UUID) error
}
