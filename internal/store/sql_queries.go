package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	createUser = `INSERT INTO users (id, username, password)
    VALUES ($1, $2, $3)
    RETURNING id, username, password;`

	getAllUsers = `SELECT id, username, password
    FROM users;`

	createProduct = `INSERT INTO products (id, name)
    VALUES ($1, $2)
    RETURNING id, name;`

	getAllProducts = `SELECT id, name
    FROM products;`

	createFavorite = `INSERT INTO favorites (id, product_id, user_id)
    VALUES ($1, $2, $3)
    RETURNING id, product_id, user_id;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildGetUserFavoritesQuery builds the SELECT returning all favorites owned
// by userID.
func buildGetUserFavoritesQuery(userID uuid.UUID) (string, []any, error) {
	return psql.
		Select("id", "product_id", "user_id").
		From("favorites").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildDeleteFavoriteQuery builds the DELETE scoped to the owning user:
// a favorite id belonging to a different user matches no row.
func buildDeleteFavoriteQuery(userID, favoriteID uuid.UUID) (string, []any, error) {
	return psql.
		Delete("favorites").
		Where(sq.Eq{"id": favoriteID, "user_id": userID}).
		ToSql()
}
