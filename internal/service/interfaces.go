package service

import (
	"context"

	"github.com/avdeev/go-coursebook/models"
)

type UserService interface {
	// Register validates the registration payload, hashes the password and
	// persists a new account. Returns a *validators.ValidationError when any
	// rule is violated, including a taken email address.
	Register(ctx context.Context, registration models.UserRegistration) (models.User, error)

	// Authenticate verifies an email address and plaintext password pair.
	// Every failure mode collapses into ErrInvalidCredentials.
	Authenticate(ctx context.Context, emailAddress string, password string) (models.User, error)
}

type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (models.Course, error)

	// CreateCourse validates the input and persists a new course owned by
	// owner. Any userId supplied by the caller is ignored.
	CreateCourse(ctx context.Context, input models.CourseInput, owner models.User) (models.Course, error)

	// UpdateCourse overwrites the mutable fields of an existing course.
	// Existence is checked before ownership: a missing course yields
	// store.ErrCourseNotFound even when the caller would not own it.
	UpdateCourse(ctx context.Context, id int64, input models.CourseInput, actor models.User) error

	// DeleteCourse removes an existing course, with the same
	// existence-before-ownership ordering as UpdateCourse.
	DeleteCourse(ctx context.Context, id int64, actor models.User) error
}
