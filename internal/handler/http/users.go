package http

import (
	"encoding/json"
	"net/http"

	"github.com/avdeev/go-coursebook/internal/app"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/utils"
	"github.com/avdeev/go-coursebook/models"
)

// createUser handles POST /api/users. On success the response carries 201
// with a Location header pointing at the site root and no body.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration models.UserRegistration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg(app.MsgInvalidJSON)
		h.writeMessage(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	if _, err := h.services.UserService.Register(ctx, registration); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}

// currentUser handles GET /api/users. It returns the authenticated caller's
// own record; the password hash and timestamps never serialize.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		// the auth middleware always sets the user; a miss means the route
		// was wired without it
		logger.FromRequest(r).Error().Str("func", "*Handler.currentUser").Msg("no authenticated user in context")
		h.writeMessage(w, r, http.StatusNotFound, app.MsgNotFound)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
