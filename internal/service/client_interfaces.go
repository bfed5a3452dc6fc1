package service

import (
	"context"
	"time"

	"github.com/avdeev/go-coursebook/models"
)

// SessionService manages the client's sign-in lifecycle and the persisted
// session record. The server holds no session state, so "being signed in"
// is purely a client-side notion: a stored credential pair that the
// transport re-sends on every authenticated request.
type SessionService interface {
	// State returns the current lifecycle state.
	State() models.SessionState

	// CurrentSession returns the active session.
	// Returns ErrNotSignedIn when no session is active.
	CurrentSession() (models.Session, error)

	// Restore loads the persisted session from local storage, verifies it
	// has not expired, and re-arms the transport credentials. Returns
	// ErrNotSignedIn when nothing is persisted and ErrSessionExpired when
	// the stored session is past its expiry (the stale record is removed).
	Restore(ctx context.Context) (models.Session, error)

	// SignIn verifies the credential pair against the server and persists
	// a fresh session on success. Every verification failure surfaces as
	// ErrInvalidCredentials, mirroring the server's opaque response.
	SignIn(ctx context.Context, emailAddress string, password string) (models.Session, error)

	// SignUp registers a new account and, on success, signs in with the
	// same credentials.
	SignUp(ctx context.Context, registration models.UserRegistration) (models.Session, error)

	// SignOut removes the persisted session and forgets the transport
	// credentials. Signing out while signed out is not an error.
	SignOut(ctx context.Context) error

	// ExpireIfDue signs out if the active session has passed its expiry at
	// the given time. It reports whether an expiry occurred. Used by the
	// background janitor.
	ExpireIfDue(ctx context.Context, now time.Time) (bool, error)
}

// CourseClientService exposes the course catalogue to the client views,
// translating transport errors into the session-level sentinels the views
// understand.
type CourseClientService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (models.Course, error)

	// CreateCourse creates a course owned by the signed-in user and
	// returns its server-assigned id.
	CreateCourse(ctx context.Context, input models.CourseInput) (int64, error)

	UpdateCourse(ctx context.Context, id int64, input models.CourseInput) error
	DeleteCourse(ctx context.Context, id int64) error
}
