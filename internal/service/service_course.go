package service

import (
	"context"
	"fmt"

	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/store"
	"github.com/avdeev/go-coursebook/internal/validators"
	"github.com/avdeev/go-coursebook/models"
)

// courseService is the concrete implementation of CourseService.
type courseService struct {
	// courseRepository is the data-access layer for course records.
	courseRepository store.CourseRepository

	// validator evaluates the `validate` tags on course payloads.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewCourseService constructs a new CourseService wired to the given
// CourseRepository.
func NewCourseService(courseRepository store.CourseRepository, validator validators.Validator, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		validator:        validator,
		logger:           logger,
	}
}

// ListCourses returns all courses. Reads require no authentication.
func (c *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := c.courseRepository.ListCourses(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ListCourses").Msg("course listing failed")
		return nil, fmt.Errorf("course listing failed: %w", err)
	}

	return courses, nil
}

// GetCourse returns a single course by id.
// Returns store.ErrCourseNotFound when the id does not exist.
func (c *courseService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	course, err := c.courseRepository.GetCourse(ctx, id)
	if err != nil {
		return models.Course{}, err
	}

	return course, nil
}

// CreateCourse validates the input and persists a new course. The owner is
// always the authenticated caller; a userId supplied in the request body
// never reaches this method.
func (c *courseService) CreateCourse(ctx context.Context, input models.CourseInput, owner models.User) (models.Course, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Str("func", "CreateCourse").Msg("course payload rejected")
		return models.Course{}, err
	}

	createdCourse, err := c.courseRepository.CreateCourse(ctx, models.Course{
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		UserID:          owner.ID,
	})
	if err != nil {
		log.Err(err).Str("func", "CreateCourse").Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	return createdCourse, nil
}

// UpdateCourse overwrites the mutable fields of an existing course.
//
// The course is looked up before the ownership check, so a missing course
// reports store.ErrCourseNotFound even to a caller who would not own it.
// A caller who is not the owner gets ErrNotCourseOwner before the payload
// is validated.
func (c *courseService) UpdateCourse(ctx context.Context, id int64, input models.CourseInput, actor models.User) error {
	log := logger.FromContext(ctx)

	existingCourse, err := c.courseRepository.GetCourse(ctx, id)
	if err != nil {
		return err
	}

	if existingCourse.UserID != actor.ID {
		log.Debug().
			Int64("courseID", id).
			Int64("ownerID", existingCourse.UserID).
			Int64("actorID", actor.ID).
			Msg("course update denied: not the owner")
		return ErrNotCourseOwner
	}

	if err = c.validator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Str("func", "UpdateCourse").Msg("course payload rejected")
		return err
	}

	err = c.courseRepository.UpdateCourse(ctx, models.Course{
		ID:              id,
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		UserID:          actor.ID,
	})
	if err != nil {
		log.Err(err).Str("func", "UpdateCourse").Int64("courseID", id).Msg("course update ended with error")
		return err
	}

	return nil
}

// DeleteCourse removes an existing course, with the same
// existence-before-ownership ordering as UpdateCourse.
func (c *courseService) DeleteCourse(ctx context.Context, id int64, actor models.User) error {
	log := logger.FromContext(ctx)

	existingCourse, err := c.courseRepository.GetCourse(ctx, id)
	if err != nil {
		return err
	}

	if existingCourse.UserID != actor.ID {
		log.Debug().
			Int64("courseID", id).
			Int64("ownerID", existingCourse.UserID).
			Int64("actorID", actor.ID).
			Msg("course deletion denied: not the owner")
		return ErrNotCourseOwner
	}

	if err = c.courseRepository.DeleteCourse(ctx, id); err != nil {
		log.Err(err).Str("func", "DeleteCourse").Int64("courseID", id).Msg("course deletion ended with error")
		return err
	}

	return nil
}
