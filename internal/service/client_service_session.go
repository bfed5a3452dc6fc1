package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avdeev/go-coursebook/internal/adapter"
	"github.com/avdeev/go-coursebook/internal/config"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/store"
	"github.com/avdeev/go-coursebook/models"
)

// sessionService is the concrete implementation of SessionService. It keeps
// the in-memory lifecycle state, the persisted session record, and the
// transport credentials in step with each other.
type sessionService struct {
	sessionRepository store.SessionRepository
	serverAdapter     adapter.ServerAdapter

	// ttl is how long a fresh session stays valid.
	ttl time.Duration

	mu      sync.RWMutex
	state   models.SessionState
	session models.Session

	logger *logger.Logger
}

// NewSessionService constructs a SessionService in the signed-out state.
func NewSessionService(sessionRepository store.SessionRepository, serverAdapter adapter.ServerAdapter, cfg config.ClientSession, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		serverAdapter:     serverAdapter,
		ttl:               cfg.TTL,
		state:             models.SignedOut,
		logger:            logger,
	}
}

// State implements [SessionService].
func (s *sessionService) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CurrentSession implements [SessionService].
func (s *sessionService) CurrentSession() (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != models.SignedIn {
		return models.Session{}, ErrNotSignedIn
	}

	return s.session, nil
}

// Restore implements [SessionService]. It is called once at client startup
// so that a previous sign-in survives a restart, the way a browser cookie
// would.
func (s *sessionService) Restore(ctx context.Context) (models.Session, error) {
	persisted, err := s.sessionRepository.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNotSignedIn
		}
		return models.Session{}, fmt.Errorf("error loading persisted session: %w", err)
	}

	if persisted.Expired(time.Now()) {
		s.logger.Debug().Str("emailAddress", persisted.EmailAddress).Msg("persisted session expired, discarding")
		if err = s.sessionRepository.DeleteSession(ctx); err != nil {
			return models.Session{}, fmt.Errorf("error discarding expired session: %w", err)
		}
		return models.Session{}, ErrSessionExpired
	}

	s.serverAdapter.SetCredentials(persisted.EmailAddress, persisted.Password)
	s.setSignedIn(persisted)

	return persisted, nil
}

// SignIn implements [SessionService].
//
// The credential pair is armed on the transport first and verified by
// fetching the account record; any rejection tears the credentials back
// down, so a failed sign-in leaves the service exactly as it was.
func (s *sessionService) SignIn(ctx context.Context, emailAddress string, password string) (models.Session, error) {
	s.setState(models.SigningIn)

	s.serverAdapter.SetCredentials(emailAddress, password)

	user, err := s.serverAdapter.CurrentUser(ctx)
	if err != nil {
		s.serverAdapter.ClearCredentials()
		s.setState(models.SignedOut)

		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Session{}, ErrInvalidCredentials
		}
		return models.Session{}, fmt.Errorf("sign-in verification failed: %w", err)
	}

	now := time.Now()
	session := models.Session{
		UserID:       user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
		Password:     password,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}

	if err = s.sessionRepository.SaveSession(ctx, session); err != nil {
		s.logger.Err(err).Str("func", "SignIn").Msg("error persisting session")
		// the sign-in itself succeeded; stay signed in for this run
	}

	s.setSignedIn(session)

	return session, nil
}

// SignUp implements [SessionService].
func (s *sessionService) SignUp(ctx context.Context, registration models.UserRegistration) (models.Session, error) {
	if err := s.serverAdapter.Register(ctx, registration); err != nil {
		return models.Session{}, err
	}

	return s.SignIn(ctx, registration.EmailAddress, registration.Password)
}

// SignOut implements [SessionService].
func (s *sessionService) SignOut(ctx context.Context) error {
	s.serverAdapter.ClearCredentials()

	s.mu.Lock()
	s.state = models.SignedOut
	s.session = models.Session{}
	s.mu.Unlock()

	if err := s.sessionRepository.DeleteSession(ctx); err != nil {
		return fmt.Errorf("error removing persisted session: %w", err)
	}

	return nil
}

// ExpireIfDue implements [SessionService].
func (s *sessionService) ExpireIfDue(ctx context.Context, now time.Time) (bool, error) {
	s.mu.RLock()
	dueToExpire := s.state == models.SignedIn && s.session.Expired(now)
	emailAddress := s.session.EmailAddress
	s.mu.RUnlock()

	if !dueToExpire {
		return false, nil
	}

	s.logger.Info().Str("emailAddress", emailAddress).Msg("session reached its expiry, signing out")

	return true, s.SignOut(ctx)
}

func (s *sessionService) setState(state models.SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *sessionService) setSignedIn(session models.Session) {
	s.mu.Lock()
	s.state = models.SignedIn
	s.session = session
	s.mu.Unlock()
}
