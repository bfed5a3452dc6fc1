package models

import "time"

// User represents an account entity used for authentication and course
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// FirstName is the user's given name.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// EmailAddress is the unique login identifier of the account.
	// Used during authentication; matched exactly as stored.
	EmailAddress string `json:"emailAddress"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized and never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last account modification.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserRegistration is the request body accepted by the sign-up endpoint.
// Password is the plaintext password supplied by the user; it is hashed
// before storage and never persisted as-is.
type UserRegistration struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}
