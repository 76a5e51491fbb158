package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/store"
	"github.com/MKhiriev/acme-store/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService.
// It handles user registration and listing, using a UserRepository for
// persistence and bcrypt for password hashing.
type userService struct {
	// userRepository is the data-access layer used to create and list users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that both username and password are non-empty, hashes the
// password with bcrypt at the default cost, and delegates persistence to the
// UserRepository. The plain-text password is never stored or logged.
//
// Returns the persisted user (with a generated ID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrPasswordHashingFailed if bcrypt rejects the password.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (s *userService) Register(ctx context.Context, username string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, username, string(hash))
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// List returns all registered users, hashed passwords included: the caller
// decides what to expose on the wire.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}
