// Package adapter provides transport-layer abstractions for communicating
// with the coursebook server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/avdeev/go-coursebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the coursebook
// server. Implementations are responsible for serialisation, Basic-Auth
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetCredentials stores the email address and password that will be
	// attached as Basic authentication to all subsequent authenticated
	// requests. The server holds no session state, so the pair is re-sent
	// on every call.
	SetCredentials(emailAddress string, password string)

	// ClearCredentials forgets the stored credential pair. Subsequent
	// authenticated calls fail with [ErrUnauthorized] on the server side.
	ClearCredentials()

	// HasCredentials reports whether a credential pair is currently stored.
	HasCredentials() bool

	// Register creates a new account. The server responds with no body, so
	// on success the caller typically follows up with SetCredentials and
	// CurrentUser. A 400 maps to [*ValidationFailedError] listing the
	// rejected fields.
	Register(ctx context.Context, registration models.UserRegistration) error

	// CurrentUser fetches the account matching the stored credentials.
	// Returns [ErrUnauthorized] when the pair is missing or rejected.
	CurrentUser(ctx context.Context) (models.User, error)

	// ListCourses fetches all courses. No credentials required.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse fetches one course by id. No credentials required.
	// Returns [ErrNotFound] when the id does not exist.
	GetCourse(ctx context.Context, id int64) (models.Course, error)

	// CreateCourse creates a course owned by the authenticated user and
	// returns the id the server assigned to it (parsed from the Location
	// header).
	CreateCourse(ctx context.Context, input models.CourseInput) (int64, error)

	// UpdateCourse overwrites an existing course. Returns [ErrNotFound]
	// for a missing course and [ErrForbidden] when the authenticated user
	// is not the owner.
	UpdateCourse(ctx context.Context, id int64, input models.CourseInput) error

	// DeleteCourse removes an existing course, with the same error mapping
	// as UpdateCourse.
	DeleteCourse(ctx context.Context, id int64) error
}
