package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/utils"
	"github.com/MKhiriev/acme-store/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository]. It owns the join table between users and products
// and relies entirely on the store's constraints for correctness:
// concurrent inserts of the same (user, product) pair are serialized by the
// unique constraint, so exactly one succeeds.
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateFavorite persists a new favorite row and returns the fully populated
// [models.Favorite]. The primary key is a v4 UUID generated here, before the
// INSERT.
//
// Error handling:
//   - unique_violation (23505) on (user_id, product_id) → [ErrFavoriteAlreadyExists].
//   - foreign_key_violation (23503) → [ErrFavoriteParentNotFound].
//   - Connection-level failures → wrapped [ErrConnectionFailure].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *favoriteRepository) CreateFavorite(ctx context.Context, userID, productID uuid.UUID) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	var favorite models.Favorite
	row := r.db.QueryRowContext(ctx, createFavorite, r.ids.Generate(), productID, userID)

	// create favorite in db
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.CreateFavorite").
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Favorite{}, ErrFavoriteAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Favorite{}, ErrFavoriteParentNotFound
		default:
			return models.Favorite{}, r.db.wrapUnexpected(err)
		}
	}

	// scan saved favorite from db
	if err := row.Scan(&favorite.ID, &favorite.ProductID, &favorite.UserID); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.CreateFavorite").Msg("error: scanning error")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return favorite, nil
}

// GetUserFavorites returns all favorites owned by userID, in unspecified
// order. An empty slice (never nil) is returned when the user has none.
func (r *favoriteRepository) GetUserFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserFavoritesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.GetUserFavorites").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.GetUserFavorites").
			Str("user_id", userID.String()).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0, 16)
	for rows.Next() {
		var favorite models.Favorite
		if scanErr := rows.Scan(&favorite.ID, &favorite.ProductID, &favorite.UserID); scanErr != nil {
			log.Err(scanErr).Str("func", "*favoriteRepository.GetUserFavorites").Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		favorites = append(favorites, favorite)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.GetUserFavorites").Msg("row iteration ended with error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

// DeleteFavorite removes the favorite identified by favoriteID if it is
// owned by userID. A delete that matches no row — wrong owner, already
// removed, or never existed — succeeds silently.
func (r *favoriteRepository) DeleteFavorite(ctx context.Context, userID, favoriteID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFavoriteQuery(userID, favoriteID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.DeleteFavorite").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.DeleteFavorite").
			Str("user_id", userID.String()).
			Str("favorite_id", favoriteID.String()).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil {
		log.Debug().
			Str("func", "*favoriteRepository.DeleteFavorite").
			Str("favorite_id", favoriteID.String()).
			Int64("rows_affected", affected).
			Send()
	}

	return nil
}
