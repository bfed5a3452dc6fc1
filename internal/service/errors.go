package service

import "errors"

var (
	// ErrInvalidCredentials is returned for every authentication failure:
	// missing credentials, unknown email address, or a wrong password.
	// Callers must not be able to tell which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotCourseOwner is returned when an authenticated user attempts to
	// modify a course owned by a different user.
	ErrNotCourseOwner = errors.New("authenticated user does not own the course")
)

// Client-side session errors.
var (
	// ErrNotSignedIn is returned when an operation requires a signed-in
	// user but no session is active or persisted.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrSessionExpired is returned when the persisted session has passed
	// its expiry, or when the server stops accepting the stored
	// credentials mid-session.
	ErrSessionExpired = errors.New("session expired, please sign in again")
)
