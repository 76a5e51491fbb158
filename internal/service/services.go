package service

import (
	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/store"
)

type Services struct {
	UserService     UserService
	ProductService  ProductService
	FavoriteService FavoriteService
}

func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		UserService:     NewUserService(repositories.UserRepository, logger),
		ProductService:  NewProductService(repositories.ProductRepository, logger),
		FavoriteService: NewFavoriteService(repositories.FavoriteRepository, logger),
	}
}
