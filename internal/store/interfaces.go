package store

import (
	"context"

	"github.com/avdeev/go-coursebook/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record with
	// server-assigned fields populated. Returns [ErrEmailAlreadyTaken] when
	// the email address is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by the exact stored email address.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, emailAddress string) (models.User, error)
}

// CourseRepository is the persistence contract for courses.
type CourseRepository interface {
	// ListCourses returns all courses ordered by id.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse returns the course with the given id.
	// Returns [ErrCourseNotFound] when the id does not exist.
	GetCourse(ctx context.Context, id int64) (models.Course, error)

	// CreateCourse persists a new course and returns the stored record with
	// server-assigned fields populated.
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)

	// UpdateCourse overwrites the mutable fields of an existing course.
	// Returns [ErrCourseNotFound] when the id does not exist.
	UpdateCourse(ctx context.Context, course models.Course) error

	// DeleteCourse removes the course with the given id.
	// Returns [ErrCourseNotFound] when the id does not exist.
	DeleteCourse(ctx context.Context, id int64) error
}
