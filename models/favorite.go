package models

import "github.com/google/uuid"

// Favorite is the join entity recording that a user has marked a product as
// favorited. The pair (UserID, ProductID) is unique: a user may favorite a
// given product at most once. Both foreign keys are mandatory and must
// reference existing rows.
type Favorite struct {
	// ID is the primary key, a v4 UUID generated by the data-access layer
	// before insertion.
	ID uuid.UUID `json:"id"`

	// ProductID references the favorited product.
	ProductID uuid.UUID `json:"product_id"`

	// UserID references the owning user. Deletion of a favorite is scoped
	// to this user.
	UserID uuid.UUID `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}
