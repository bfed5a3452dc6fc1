package http

import (
	"net/http"
	"runtime/debug"

	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/utils"
	"github.com/avdeev/go-coursebook/models"
)

// recoverer is the top-level error handler. A panic anywhere below it is
// logged and converted into a JSON 500 whose error object is always empty,
// so no stack trace or internal detail ever reaches the client.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			event := logger.FromRequest(r).Error().Any("panic", rvr)
			if h.logGlobalErrors {
				event = event.Bytes("stack", debug.Stack())
			}
			event.Msg("request handler panicked")

			utils.WriteJSON(w, models.APIServerError{
				Message: http.StatusText(http.StatusInternalServerError),
			}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
