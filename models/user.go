package models

import "time"

// User represents an account entity used for authentication. Credential
// fields must never leave trusted boundaries: Password only flows inbound
// over the transport, PasswordHash never leaves the server process.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the server; not exposed via JSON.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name,omitempty"`

	// Password is the plaintext credential supplied at registration and
	// login. It is bcrypt-hashed on arrival and never stored.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored bcrypt hash of the password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table associated with the
// User model.
func (u User) TableName() string {
	return "users"
}
