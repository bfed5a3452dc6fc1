package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/avdeev/go-coursebook/internal/config"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/utils"
	"github.com/avdeev/go-coursebook/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu           sync.RWMutex
	emailAddress string
	password     string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredentials implements [ServerAdapter]. The pair is stored
// whitespace-trimmed and re-sent as a Basic authentication header on every
// subsequent authenticated request.
func (h *httpServerAdapter) SetCredentials(emailAddress string, password string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emailAddress = strings.TrimSpace(emailAddress)
	h.password = password
}

// ClearCredentials implements [ServerAdapter].
func (h *httpServerAdapter) ClearCredentials() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emailAddress = ""
	h.password = ""
}

// HasCredentials implements [ServerAdapter].
func (h *httpServerAdapter) HasCredentials() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.emailAddress != ""
}

// authedRequest returns a request builder carrying the stored Basic-Auth
// credentials.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.client.R().
		SetContext(ctx).
		SetBasicAuth(h.emailAddress, h.password)
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/users. The endpoint is open, so no credentials are attached.
func (h *httpServerAdapter) Register(ctx context.Context, registration models.UserRegistration) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registration).
		Post("/api/users")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// CurrentUser implements [ServerAdapter]. It GETs /api/users with the stored
// credentials and returns the authenticated account.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListCourses implements [ServerAdapter]. Course reads are public.
func (h *httpServerAdapter) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&courses).
		Get("/api/courses")
	if err != nil {
		return nil, fmt.Errorf("list courses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetCourse implements [ServerAdapter]. Course reads are public.
func (h *httpServerAdapter) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	var course models.Course

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&course).
		Get(fmt.Sprintf("/api/courses/%d", id))
	if err != nil {
		return models.Course{}, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Course{}, err
	}

	return course, nil
}

// CreateCourse implements [ServerAdapter]. The new course's id is parsed
// from the Location header of the 201 response.
func (h *httpServerAdapter) CreateCourse(ctx context.Context, input models.CourseInput) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/api/courses")
	if err != nil {
		return 0, fmt.Errorf("create course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return courseIDFromLocation(resp.Header().Get("Location"))
}

// UpdateCourse implements [ServerAdapter].
func (h *httpServerAdapter) UpdateCourse(ctx context.Context, id int64, input models.CourseInput) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Put(fmt.Sprintf("/api/courses/%d", id))
	if err != nil {
		return fmt.Errorf("update course request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteCourse implements [ServerAdapter].
func (h *httpServerAdapter) DeleteCourse(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/courses/%d", id))
	if err != nil {
		return fmt.Errorf("delete course request: %w", err)
	}

	return mapHTTPError(resp)
}

// courseIDFromLocation extracts the trailing numeric id from a Location
// header of the form "/api/courses/{id}".
func courseIDFromLocation(location string) (int64, error) {
	location = strings.TrimRight(strings.TrimSpace(location), "/")
	idx := strings.LastIndex(location, "/")
	if idx < 0 {
		return 0, fmt.Errorf("malformed Location header %q", location)
	}

	id, err := strconv.ParseInt(location[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed Location header %q: %w", location, err)
	}

	return id, nil
}
