package service

import (
	"context"

	"github.com/MKhiriev/acme-store/models"
	"github.com/google/uuid"
)

type UserService interface {
	Register(ctx context.Context, username string, password string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type ProductService interface {
	Create(ctx context.Context, name string) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
}

type FavoriteService interface {
	Add(ctx context.Context, userID, productID uuid.UUID) (models.Favorite, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
	Remove(ctx context.Context, userID, favoriteID uuid.UUID) error
}
