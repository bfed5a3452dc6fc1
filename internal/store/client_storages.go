package store

import (
	"context"
	"fmt"

	"github.com/avdeev/go-coursebook/internal/config"
	"github.com/avdeev/go-coursebook/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer. Currently it
// holds only [SessionRepository].
type ClientStorages struct {
	// SessionRepository is the SQLite-backed repository for the persisted
	// sign-in session.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer: it opens (or
// creates) the SQLite file named by cfg.DBPath, ensures the schema exists,
// and wires up the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientSession, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	sessionRepository, err := NewSessionRepository(db, logger)
	if err != nil {
		return nil, fmt.Errorf("session repository init error: %w", err)
	}

	return &ClientStorages{
		SessionRepository: sessionRepository,
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
