package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository].
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs the session repository and ensures the
// backing table exists.
func NewSessionRepository(db *DB, logger *logger.Logger) (SessionRepository, error) {
	if _, err := db.ExecContext(context.Background(), createSessionTable); err != nil {
		logger.Err(err).Str("func", "NewSessionRepository").Msg("error creating session table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return &sessionRepository{db: db, logger: logger}, nil
}

// SaveSession implements [SessionRepository] as an upsert of the single
// session row.
func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := s.db.ExecContext(ctx, upsertSession,
		session.UserID,
		session.FirstName,
		session.LastName,
		session.EmailAddress,
		session.Password,
		session.CreatedAt,
		session.ExpiresAt,
	)
	if err != nil {
		s.logger.Err(err).Str("func", "SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession implements [SessionRepository].
func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	row := s.db.QueryRowContext(ctx, selectSession)
	err := row.Scan(
		&session.UserID,
		&session.FirstName,
		&session.LastName,
		&session.EmailAddress,
		&session.Password,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		s.logger.Err(err).Str("func", "GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// DeleteSession implements [SessionRepository].
func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteSession); err != nil {
		s.logger.Err(err).Str("func", "DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
