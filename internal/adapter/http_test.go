package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev/go-coursebook/internal/config"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host:port", raw: "localhost:5000", want: "http://localhost:5000"},
		{name: "full URL", raw: "http://localhost:5000/", want: "http://localhost:5000"},
		{name: "https kept", raw: "https://api.example.com", want: "https://api.example.com"},
		{name: "empty", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)

		var registration models.UserRegistration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&registration))
		assert.Equal(t, "joe@smith.com", registration.EmailAddress)

		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.UserRegistration{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	})

	require.NoError(t, err)
}

func TestRegister_ValidationErrorsSurface(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":["Please provide a value for \"firstName\"","The email address you provided is already in use"]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.UserRegistration{})

	require.Error(t, err)
	validationErr, ok := AsValidationFailed(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		`Please provide a value for "firstName"`,
		"The email address you provided is already in use",
	}, validationErr.Messages)
}

// ── CurrentUser ─────────────────────────────────────────────────────────────

func TestCurrentUser_SendsBasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		emailAddress, password, ok := r.BasicAuth()
		require.True(t, ok, "request must carry Basic credentials")
		assert.Equal(t, "joe@smith.com", emailAddress)
		assert.Equal(t, "joepassword", password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCredentials("joe@smith.com", "joepassword")

	user, err := a.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "joe@smith.com", user.EmailAddress)
}

func TestCurrentUser_RejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Access Denied"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCredentials("joe@smith.com", "wrong")

	_, err := a.CurrentUser(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Access Denied")
}

// ── Courses ─────────────────────────────────────────────────────────────────

func TestListCourses_NoCredentialsNeeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, hasAuth := r.BasicAuth()
		assert.False(t, hasAuth, "course reads must not send credentials")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Build a Basic Bookcase","description":"...","estimatedTime":"","materialsNeeded":"","userId":1}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	courses, err := a.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Build a Basic Bookcase", courses[0].Title)
}

func TestGetCourse_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.GetCourse(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCourse_ParsesLocationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/courses", r.URL.Path)

		_, _, hasAuth := r.BasicAuth()
		assert.True(t, hasAuth)

		w.Header().Set("Location", "/api/courses/42")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCredentials("joe@smith.com", "joepassword")

	id, err := a.CreateCourse(context.Background(), models.CourseInput{
		Title:       "New Course",
		Description: "A course",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestUpdateCourse_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"You are not authorized to modify this course"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCredentials("joe@smith.com", "joepassword")

	err := a.UpdateCourse(context.Background(), 3, models.CourseInput{
		Title:       "Updated",
		Description: "Updated",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteCourse_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/courses/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCredentials("joe@smith.com", "joepassword")

	require.NoError(t, a.DeleteCourse(context.Background(), 3))
}

// ── Credential bookkeeping ──────────────────────────────────────────────────

func TestCredentialLifecycle(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:5000")

	assert.False(t, a.HasCredentials())

	a.SetCredentials(" joe@smith.com ", "joepassword")
	assert.True(t, a.HasCredentials())
	assert.Equal(t, "joe@smith.com", a.emailAddress, "email must be trimmed")

	a.ClearCredentials()
	assert.False(t, a.HasCredentials())
	assert.Empty(t, a.password)
}

func TestCourseIDFromLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     int64
		wantErr  bool
	}{
		{name: "plain", location: "/api/courses/7", want: 7},
		{name: "trailing slash", location: "/api/courses/7/", want: 7},
		{name: "not numeric", location: "/api/courses/abc", wantErr: true},
		{name: "empty", location: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := courseIDFromLocation(tt.location)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
