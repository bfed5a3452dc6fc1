package http

import (
	"errors"
	"net/http"

	"github.com/avdeev/go-coursebook/internal/app"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/service"
	"github.com/avdeev/go-coursebook/internal/store"
	"github.com/avdeev/go-coursebook/internal/utils"
	"github.com/avdeev/go-coursebook/internal/validators"
	"github.com/avdeev/go-coursebook/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrNotCourseOwner:     http.StatusForbidden,

	store.ErrCourseNotFound: http.StatusNotFound,
	store.ErrNoUserWasFound: http.StatusNotFound,
	store.ErrCourseNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

var errorMessageMap = map[int]string{
	http.StatusUnauthorized: app.MsgAccessDenied,
	http.StatusForbidden:    app.MsgNotCourseOwner,
	http.StatusNotFound:     app.MsgNotFound,
}

// writeError translates a service or storage error into the API's JSON error
// contract: validation failures become a 400 listing every violated rule,
// mapped errors get their status with a short message body, and anything
// unclassified becomes an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if validationErr, ok := validators.AsValidationError(err); ok {
		utils.WriteJSON(w, models.ValidationErrors{Errors: validationErr.Messages}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed with an unclassified error")
		utils.WriteJSON(w, models.APIServerError{
			Message: http.StatusText(http.StatusInternalServerError),
		}, http.StatusInternalServerError)
		return
	}

	h.writeMessage(w, r, status, errorMessageMap[status])
}

func (h *Handler) writeMessage(w http.ResponseWriter, _ *http.Request, status int, message string) {
	utils.WriteJSON(w, models.APIMessage{Message: message}, status)
}
