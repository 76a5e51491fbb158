package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/store"
	"github.com/MKhiriev/acme-store/models"
	"github.com/google/uuid"
)

// favoriteService is the concrete implementation of FavoriteService.
// Duplicate and dangling-reference detection is left entirely to the store's
// constraints: the service does no read-before-write, so concurrent requests
// cannot race past a check.
type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	logger             *logger.Logger
}

// NewFavoriteService constructs a new FavoriteService wired to the given
// FavoriteRepository.
func NewFavoriteService(favoriteRepository store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		logger:             logger,
	}
}

// Add marks productID as a favorite of userID.
//
// Returns the persisted favorite (with a generated ID) or:
//   - ErrInvalidDataProvided if either ID is the zero UUID.
//   - store.ErrFavoriteAlreadyExists if the pair is already favorited.
//   - store.ErrFavoriteParentNotFound if the user or product does not exist.
func (s *favoriteService) Add(ctx context.Context, userID, productID uuid.UUID) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	if userID == uuid.Nil || productID == uuid.Nil {
		log.Error().
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("invalid favorite data provided")
		return models.Favorite{}, ErrInvalidDataProvided
	}

	favorite, err := s.favoriteRepository.CreateFavorite(ctx, userID, productID)
	if err != nil {
		log.Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("favorite creation ended with error")
		return models.Favorite{}, fmt.Errorf("favorite creation ended with error: %w", err)
	}

	return favorite, nil
}

// ListForUser returns all favorites owned by userID. A user with no
// favorites — or no such user at all — yields an empty slice.
func (s *favoriteService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	if userID == uuid.Nil {
		log.Error().Msg("invalid user ID provided")
		return nil, ErrInvalidDataProvided
	}

	favorites, err := s.favoriteRepository.GetUserFavorites(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("favorite listing ended with error")
		return nil, fmt.Errorf("favorite listing ended with error: %w", err)
	}

	return favorites, nil
}

// Remove deletes the favorite identified by favoriteID from userID's list.
// Removing a favorite that does not exist, or that belongs to another user,
// succeeds silently.
func (s *favoriteService) Remove(ctx context.Context, userID, favoriteID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if userID == uuid.Nil || favoriteID == uuid.Nil {
		log.Error().Msg("invalid favorite data provided")
		return ErrInvalidDataProvided
	}

	if err := s.favoriteRepository.DeleteFavorite(ctx, userID, favoriteID); err != nil {
		log.Err(err).
			Str("user_id", userID.String()).
			Str("favorite_id", favoriteID.String()).
			Msg("favorite removal ended with error")
		return fmt.Errorf("favorite removal ended with error: %w", err)
	}

	return nil
}
