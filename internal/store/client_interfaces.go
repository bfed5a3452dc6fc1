package store

import (
	"context"

	"github.com/avdeev/go-coursebook/models"
)

// SessionRepository is the persistence contract for the client's single
// sign-in session. At most one session exists at a time; saving a new one
// replaces whatever was stored before.
type SessionRepository interface {
	// SaveSession persists the session, replacing any existing one.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the persisted session.
	// Returns [ErrSessionNotFound] when no session is stored.
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the persisted session. Deleting when nothing
	// is stored is not an error.
	DeleteSession(ctx context.Context) error
}
