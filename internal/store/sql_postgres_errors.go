package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify]
// and [PostgresErrorClassifier.Classify]. It places a failed database
// operation into the error taxonomy exposed to callers: a constraint
// violation, a connection failure, or an unrecognised error.
type ErrorClassification int

const (
	// Unknown is the default classification for unrecognised errors
	// (syntax errors, data exceptions, anything not listed below).
	Unknown ErrorClassification = iota

	// ConstraintViolation indicates that a uniqueness or referential-
	// integrity rule enforced by the store rejected the operation.
	ConstraintViolation

	// ConnectionFailure indicates that the store is unreachable or the
	// connection was dropped; the operation never reached a definite
	// outcome and may be retried by the caller.
	ConnectionFailure
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to an [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. Driver-level bad
// connections are reported as [ConnectionFailure]. If err is nil or not a
// recognised database error, [Unknown] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unknown
	}

	if errors.Is(err, driver.ErrBadConn) {
		return ConnectionFailure
	}

	// Attempt to unwrap to a pgconn.PgError.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	// Default: treat unrecognised errors as unknown.
	return Unknown
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// ConstraintViolation codes:
//   - Class 23 — integrity constraint violations
//
// ConnectionFailure codes:
//   - Class 08 — connection exceptions (08000, 08003, 08006)
//   - Class 57 — cannot connect now (57P03)
//
// Any code not listed above is classified as [Unknown].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 23 — integrity constraint violations
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.UniqueViolation,
		pgerrcode.CheckViolation:
		return ConstraintViolation
	}

	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return ConnectionFailure

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return ConnectionFailure
	}

	// Default: treat unrecognised codes as unknown.
	return Unknown
}
