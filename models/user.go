package models

import "github.com/google/uuid"

// User represents a registered account.
//
// The Password field always holds the bcrypt hash produced at registration
// time, never the plaintext. The JSON field names are the interface contract
// of the REST API and must not change.
type User struct {
	// ID is the primary key, a v4 UUID generated by the data-access layer
	// before insertion.
	ID uuid.UUID `json:"id"`

	// Username is globally unique and required.
	Username string `json:"username"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
