package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avdeev/go-coursebook/internal/app"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/utils"
	"github.com/avdeev/go-coursebook/models"
)

// listCourses handles GET /api/courses. Reads are public.
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// an empty table serializes as [], not null
	if courses == nil {
		courses = []models.Course{}
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}

// getCourse handles GET /api/courses/{courseID}. Reads are public.
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromRequest(r)
	if err != nil {
		h.writeMessage(w, r, http.StatusNotFound, app.MsgNotFound)
		return
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), courseID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, course, http.StatusOK)
}

// createCourse handles POST /api/courses. The owner is always the
// authenticated caller; a userId in the body is ignored. On success the
// response carries 201 with a Location header pointing at the new course
// and no body.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.accessDenied(w, r)
		return
	}

	var input models.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.createCourse").Msg(app.MsgInvalidJSON)
		h.writeMessage(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	createdCourse, err := h.services.CourseService.CreateCourse(ctx, input, owner)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/courses/%d", createdCourse.ID))
	w.WriteHeader(http.StatusCreated)
}

// updateCourse handles PUT /api/courses/{courseID}. Succeeds with an empty
// 204 response.
func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.accessDenied(w, r)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		h.writeMessage(w, r, http.StatusNotFound, app.MsgNotFound)
		return
	}

	var input models.CourseInput
	if err = json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.updateCourse").Msg(app.MsgInvalidJSON)
		h.writeMessage(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	if err = h.services.CourseService.UpdateCourse(ctx, courseID, input, actor); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteCourse handles DELETE /api/courses/{courseID}. Succeeds with an
// empty 204 response.
func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.accessDenied(w, r)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		h.writeMessage(w, r, http.StatusNotFound, app.MsgNotFound)
		return
	}

	if err = h.services.CourseService.DeleteCourse(ctx, courseID, actor); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func courseIDFromRequest(r *http.Request) (int64, error) {
	courseID, err := strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
	if err != nil {
		return 0, ErrMissingCourseID
	}

	return courseID, nil
}
