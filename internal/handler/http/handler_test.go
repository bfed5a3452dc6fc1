package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/mock"
	"github.com/avdeev/go-coursebook/internal/service"
)

// newTestHandler wires a Handler with mocked services and a nop logger.
func newTestHandler(ctrl *gomock.Controller) (*Handler, *mock.MockUserService, *mock.MockCourseService) {
	mockUsers := mock.NewMockUserService(ctrl)
	mockCourses := mock.NewMockCourseService(ctrl)

	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			UserService:   mockUsers,
			CourseService: mockCourses,
		},
	}

	return h, mockUsers, mockCourses
}

// injectNopLogger puts a nop logger into the request context for tests that
// exercise a handler without the full middleware chain.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// serve runs a request through the fully wired router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestNewHandler_WiresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)
	if h.services == nil || h.logger == nil {
		t.Fatal("handler must carry services and a logger")
	}
}
