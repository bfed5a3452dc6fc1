package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeev/go-coursebook/internal/adapter"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/models"
)

// courseClientService is the concrete implementation of CourseClientService.
// It is a thin layer over the server adapter that rewrites transport errors
// into the sentinels the views branch on.
type courseClientService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewCourseClientService constructs a CourseClientService over the given
// adapter.
func NewCourseClientService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) CourseClientService {
	return &courseClientService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

// ListCourses implements [CourseClientService]. Reads need no session.
func (c *courseClientService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := c.serverAdapter.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("course listing failed: %w", err)
	}

	return courses, nil
}

// GetCourse implements [CourseClientService]. Reads need no session.
func (c *courseClientService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	course, err := c.serverAdapter.GetCourse(ctx, id)
	if err != nil {
		return models.Course{}, c.mapCourseError(err)
	}

	return course, nil
}

// CreateCourse implements [CourseClientService].
func (c *courseClientService) CreateCourse(ctx context.Context, input models.CourseInput) (int64, error) {
	id, err := c.serverAdapter.CreateCourse(ctx, input)
	if err != nil {
		return 0, c.mapCourseError(err)
	}

	return id, nil
}

// UpdateCourse implements [CourseClientService].
func (c *courseClientService) UpdateCourse(ctx context.Context, id int64, input models.CourseInput) error {
	return c.mapCourseError(c.serverAdapter.UpdateCourse(ctx, id, input))
}

// DeleteCourse implements [CourseClientService].
func (c *courseClientService) DeleteCourse(ctx context.Context, id int64) error {
	return c.mapCourseError(c.serverAdapter.DeleteCourse(ctx, id))
}

// mapCourseError rewrites a 401 into ErrSessionExpired: the stored
// credentials stopped working mid-session (e.g. the account changed), which
// from the user's point of view is an expired sign-in. Validation failures
// and the ownership/not-found sentinels pass through untouched for the
// views to present.
func (c *courseClientService) mapCourseError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return ErrSessionExpired
	}

	return err
}
