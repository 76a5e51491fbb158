package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a new
	// user fails because a user with the same username already exists in the
	// database.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrFavoriteAlreadyExists is returned when a user tries to favorite a
	// product they have already favorited: the unique (user_id, product_id)
	// constraint rejected the insert.
	ErrFavoriteAlreadyExists = errors.New("favorite already exists")

	// ErrFavoriteParentNotFound is returned when an INSERT into favorites
	// references a user or product row that does not exist, violating one of
	// the foreign-key constraints.
	ErrFavoriteParentNotFound = errors.New("favorite references a missing user or product")

	// ErrConnectionFailure is returned (wrapping the driver error) when the
	// database is unreachable or the connection was dropped mid-operation.
	ErrConnectionFailure = errors.New("database connection failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
