package workers

import (
	"context"
	"time"

	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/service"
)

const defaultSweepInterval = time.Minute

// SessionJanitor periodically checks whether the active session has passed
// its expiry and signs it out when it has, so a long-running client does not
// keep sending credentials the user expects to be gone.
type SessionJanitor struct {
	sessionService service.SessionService
	interval       time.Duration

	logger *logger.Logger
}

// NewSessionJanitor creates a SessionJanitor that sweeps every interval.
// A non-positive interval falls back to one minute.
func NewSessionJanitor(sessionService service.SessionService, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &SessionJanitor{
		sessionService: sessionService,
		interval:       interval,
		logger:         logger,
	}
}

// Run implements [Worker]. It blocks until ctx is cancelled.
func (j *SessionJanitor) Run(ctx context.Context) {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			j.sweep(ctx, now)
		}
	}
}

func (j *SessionJanitor) sweep(ctx context.Context, now time.Time) {
	expired, err := j.sessionService.ExpireIfDue(ctx, now)
	if err != nil {
		j.logger.Err(err).Str("func", "sweep").Msg("error expiring session")
		return
	}

	if expired {
		j.logger.Info().Str("func", "sweep").Msg("session expired, signed out")
	}
}
