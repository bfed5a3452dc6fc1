package http

import "errors"

// Sentinel errors used by the authentication middleware when inspecting the
// "Authorization" HTTP header. They exist for logging only: clients always
// receive the same opaque 401 regardless of which one fired.
var (
	// ErrNoBasicCredentials is logged when the incoming request carries no
	// parseable "Authorization: Basic" header.
	ErrNoBasicCredentials = errors.New("missing or malformed `Authorization: Basic` header")

	// ErrMissingCourseID is returned when the course id path parameter is
	// absent or not a number.
	ErrMissingCourseID = errors.New("missing or non-numeric course id")
)
