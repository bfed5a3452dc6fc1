package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avdeev/go-coursebook/internal/app"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.createUser)
		r.Get("/api/courses", h.listCourses)
		r.Get("/api/courses/{courseID}", h.getCourse)
	})

	// routes behind Basic authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users", h.currentUser)
		r.Post("/api/courses", h.createCourse)
		r.Put("/api/courses/{courseID}", h.updateCourse)
		r.Delete("/api/courses/{courseID}", h.deleteCourse)
	})

	// any unmatched route or method falls through to the same JSON 404
	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeMessage(w, r, http.StatusNotFound, app.MsgRouteNotFound)
}
