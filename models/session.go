package models

import "time"

// Session is the client-side persisted sign-in state. The server keeps no
// session of its own, so the client must retain the email address and the
// plaintext password to re-derive the Basic-Auth header for every request.
// The record lives in a local SQLite file until it expires or the user
// signs out.
type Session struct {
	// UserID is the server-side id of the signed-in account.
	UserID int64

	// FirstName and LastName mirror the signed-in account for display.
	FirstName string
	LastName  string

	// EmailAddress is the signed-in account's login identifier.
	EmailAddress string

	// Password is the plaintext password needed to authenticate subsequent
	// requests. It never leaves the local device except inside the
	// Basic-Auth header.
	Password string

	// CreatedAt is when the user signed in.
	CreatedAt time.Time

	// ExpiresAt is when the persisted session stops being honoured.
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionState describes where the client currently is in its sign-in
// lifecycle.
type SessionState int

const (
	// SignedOut means no session is active; only public reads are possible.
	SignedOut SessionState = iota

	// SigningIn means credential verification against the server is in
	// flight.
	SigningIn

	// SignedIn means a session is active and its credentials are attached
	// to every authenticated request.
	SignedIn
)

func (s SessionState) String() string {
	switch s {
	case SigningIn:
		return "signing-in"
	case SignedIn:
		return "signed-in"
	default:
		return "signed-out"
	}
}
