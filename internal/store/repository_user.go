package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/utils"
	"github.com/MKhiriev/acme-store/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user creation and listing against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateUser persists a new user row and returns the fully populated
// [models.User]. The primary key is a v4 UUID generated here, before the
// INSERT — the store never assigns identifiers. passwordHash must already be
// the bcrypt hash.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Connection-level failures → wrapped [ErrConnectionFailure].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, username string, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, createUser, r.ids.Generate(), username, passwordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", username).Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, r.db.wrapUnexpected(err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.ID, &user.Username, &user.Password); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// GetAllUsers returns every user row in unspecified order.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.ID, &user.Username, &user.Password); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.GetAllUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("row iteration ended with error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// wrapUnexpected wraps a driver-level error that matched no specific
// sentinel, surfacing connection failures as [ErrConnectionFailure] so
// callers can tell them apart without string inspection.
func (db *DB) wrapUnexpected(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == ConnectionFailure {
		return fmt.Errorf("%w: %w", ErrConnectionFailure, err)
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
