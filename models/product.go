package models

import "github.com/google/uuid"

// Product represents an item of the catalog that users can favorite.
// Product names are required but not unique.
type Product struct {
	// ID is the primary key, a v4 UUID generated by the data-access layer
	// before insertion.
	ID uuid.UUID `json:"id"`

	// Name is the display name of the product.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
