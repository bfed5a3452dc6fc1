package http

import (
	"net/http"

	"github.com/avdeev/go-coursebook/internal/app"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/utils"
)

// auth is an HTTP middleware that enforces Basic authentication.
//
// It parses the incoming "Authorization: Basic" header, verifies the
// credential pair via [service.UserService.Authenticate], and — on success —
// stores the authenticated user in the request context under
// [utils.CurrentUserCtxKey] before delegating to the next handler.
//
// Every failure mode — absent header, malformed header, unknown email
// address, wrong password — produces the identical 401 response with a
// "WWW-Authenticate: Basic" challenge. The reason is logged via the
// context-scoped logger but never exposed to the client.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		emailAddress, password, ok := r.BasicAuth()
		if !ok {
			log.Debug().Err(ErrNoBasicCredentials).Send()
			h.accessDenied(w, r)
			return
		}

		ctx := r.Context()
		currentUser, err := h.services.UserService.Authenticate(ctx, emailAddress, password)
		if err != nil {
			log.Debug().Err(err).Str("emailAddress", emailAddress).Msg("authentication failed")
			h.accessDenied(w, r)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-verifying credentials.
		ctx = utils.WithCurrentUser(ctx, currentUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) accessDenied(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Basic realm="courses"`)
	h.writeMessage(w, r, http.StatusUnauthorized, app.MsgAccessDenied)
}
