package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avdeev/go-coursebook/internal/service"
	"github.com/avdeev/go-coursebook/internal/store"
	"github.com/avdeev/go-coursebook/internal/validators"
	"github.com/avdeev/go-coursebook/models"
)

var courseOwner = models.User{ID: 1, EmailAddress: "joe@smith.com"}

func TestListCourses_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockCourses := newTestHandler(ctrl)

	mockCourses.EXPECT().ListCourses(gomock.Any()).Return([]models.Course{
		{ID: 1, Title: "Build a Basic Bookcase", Description: "...", UserID: 1},
	}, nil)

	rr := serve(h, jsonRequest(http.MethodGet, "/api/courses", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`[{"id":1,"title":"Build a Basic Bookcase","description":"...","estimatedTime":"","materialsNeeded":"","userId":1}]`,
		rr.Body.String())
}

func TestListCourses_EmptySerializesAsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockCourses := newTestHandler(ctrl)

	mockCourses.EXPECT().ListCourses(gomock.Any()).Return(nil, nil)

	rr := serve(h, jsonRequest(http.MethodGet, "/api/courses", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetCourse_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockCourses := newTestHandler(ctrl)

	mockCourses.EXPECT().GetCourse(gomock.Any(), int64(3)).Return(models.Course{
		ID: 3, Title: "Learn How to Program", Description: "...", UserID: 2,
	}, nil)

	rr := serve(h, jsonRequest(http.MethodGet, "/api/courses/3", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"id":3,"title":"Learn How to Program","description":"...","estimatedTime":"","materialsNeeded":"","userId":2}`,
		rr.Body.String())
}

func TestGetCourse_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockCourses := newTestHandler(ctrl)

	mockCourses.EXPECT().GetCourse(gomock.Any(), int64(99)).
		Return(models.Course{}, store.ErrCourseNotFound)

	rr := serve(h, jsonRequest(http.MethodGet, "/api/courses/99", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetCourse_NonNumericID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockCourses := newTestHandler(ctrl)
	mockCourses.EXPECT().GetCourse(gomock.Any(), gomock.Any()).Times(0)

	rr := serve(h, jsonRequest(http.MethodGet, "/api/courses/abc", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateCourse_OwnerComesFromCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, mockCourses := newTestHandler(ctrl)

	mockUsers.EXPECT().Authenticate(gomock.Any(), courseOwner.EmailAddress, "joepassword").
		Return(courseOwner, nil)

	// the userId in the body must never reach the service
	mockCourses.EXPECT().CreateCourse(gomock.Any(), models.CourseInput{
		Title:       "New Course",
		Description: "A course",
	}, courseOwner).Return(models.Course{ID: 5, UserID: courseOwner.ID}, nil)

	req := jsonRequest(http.MethodPost, "/api/courses",
		`{"title":"New Course","description":"A course","userId":999}`)
	req.SetBasicAuth(courseOwner.EmailAddress, "joepassword")
	rr := serve(h, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/courses/5", rr.Header().Get("Location"))
	assert.Empty(t, rr.Body.String())
}

func TestCreateCourse_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, mockCourses := newTestHandler(ctrl)

	mockUsers.EXPECT().Authenticate(gomock.Any(), courseOwner.EmailAddress, "joepassword").
		Return(courseOwner, nil)
	mockCourses.EXPECT().CreateCourse(gomock.Any(), gomock.Any(), courseOwner).
		Return(models.Course{}, &validators.ValidationError{Messages: []string{
			`Please provide a value for "title"`,
			`Please provide a value for "description"`,
		}})

	req := jsonRequest(http.MethodPost, "/api/courses", `{}`)
	req.SetBasicAuth(courseOwner.EmailAddress, "joepassword")
	rr := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t,
		`{"errors":["Please provide a value for \"title\"","Please provide a value for \"description\""]}`,
		rr.Body.String())
}

func TestCreateCourse_WithoutCredentials_Returns401(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockCourses := newTestHandler(ctrl)
	mockCourses.EXPECT().CreateCourse(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rr := serve(h, jsonRequest(http.MethodPost, "/api/courses",
		`{"title":"New Course","description":"A course"}`))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpdateCourse_OwnerSucceedsWithEmpty204(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, mockCourses := newTestHandler(ctrl)

	mockUsers.EXPECT().Authenticate(gomock.Any(), courseOwner.EmailAddress, "joepassword").
		Return(courseOwner, nil)
	mockCourses.EXPECT().UpdateCourse(gomock.Any(), int64(3), models.CourseInput{
		Title:       "Updated Title",
		Description: "Updated description",
	}, courseOwner).Return(nil)

	req := jsonRequest(http.MethodPut, "/api/courses/3",
		`{"title":"Updated Title","description":"Updated description"}`)
	req.SetBasicAuth(courseOwner.EmailAddress, "joepassword")
	rr := serve(h, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestUpdateCourse_NotOwner_Returns403(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, mockCourses := newTestHandler(ctrl)

	mockUsers.EXPECT().Authenticate(gomock.Any(), courseOwner.EmailAddress, "joepassword").
		Return(courseOwner, nil)
	mockCourses.EXPECT().UpdateCourse(gomock.Any(), int64(3), gomock.Any(), courseOwner).
		Return(service.ErrNotCourseOwner)

	req := jsonRequest(http.MethodPut, "/api/courses/3",
		`{"title":"Updated Title","description":"Updated description"}`)
	req.SetBasicAuth(courseOwner.EmailAddress, "joepassword")
	rr := serve(h, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUpdateCourse_Nonexistent_Returns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, mockCourses := newTestHandler(ctrl)

	mockUsers.EXPECT().Authenticate(gomock.Any(), courseOwner.EmailAddress, "joepassword").
		Return(courseOwner, nil)
	mockCourses.EXPECT().UpdateCourse(gomock.Any(), int64(99), gomock.Any(), courseOwner).
		Return(store.ErrCourseNotFound)

	req := jsonRequest(http.MethodPut, "/api/courses/99",
		`{"title":"Updated Title","description":"Updated description"}`)
	req.SetBasicAuth(courseOwner.EmailAddress, "joepassword")
	rr := serve(h, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteCourse_OwnerSucceedsWithEmpty204(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, mockCourses := newTestHandler(ctrl)

	mockUsers.EXPECT().Authenticate(gomock.Any(), courseOwner.EmailAddress, "joepassword").
		Return(courseOwner, nil)
	mockCourses.EXPECT().DeleteCourse(gomock.Any(), int64(3), courseOwner).Return(nil)

	req := jsonRequest(http.MethodDelete, "/api/courses/3", "")
	req.SetBasicAuth(courseOwner.EmailAddress, "joepassword")
	rr := serve(h, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeleteCourse_NotOwner_Returns403(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, mockCourses := newTestHandler(ctrl)

	mockUsers.EXPECT().Authenticate(gomock.Any(), courseOwner.EmailAddress, "joepassword").
		Return(courseOwner, nil)
	mockCourses.EXPECT().DeleteCourse(gomock.Any(), int64(3), courseOwner).
		Return(service.ErrNotCourseOwner)

	req := jsonRequest(http.MethodDelete, "/api/courses/3", "")
	req.SetBasicAuth(courseOwner.EmailAddress, "joepassword")
	rr := serve(h, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
