package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/models"
)

// courseRepository is the PostgreSQL-backed implementation of
// [CourseRepository]. It executes all course CRUD operations against the
// "courses" table using squirrel-built parameterised queries.
type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by the provided
// database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// ListCourses returns every stored course ordered by id. Courses are
// publicly readable, so no user filter is applied.
func (r *courseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesQuery()
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err = scanCourse(rows.Scan, &course); err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("failed to scan course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("row iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// GetCourse returns the course with the given id, or [ErrCourseNotFound]
// when no such row exists.
func (r *courseRepository) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCourseQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.GetCourse").Msg("failed to build query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var course models.Course
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanCourse(row.Scan, &course); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}

		log.Err(err).Str("func", "*courseRepository.GetCourse").Int64("course_id", id).Msg("failed to scan course row")
		return models.Course{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return course, nil
}

// CreateCourse persists a new course and returns the stored record with
// server-assigned fields populated via a RETURNING clause.
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCourseQuery(course)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("failed to build query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Course
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanCourse(row.Scan, &saved); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Int64("user_id", course.UserID).Msg("failed to insert course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// UpdateCourse overwrites the mutable fields of an existing course.
// A zero affected-row count means the course does not exist.
func (r *courseRepository) UpdateCourse(ctx context.Context, course models.Course) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCourseQuery(course)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Int64("course_id", course.ID).Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// DeleteCourse removes the course with the given id.
// A zero affected-row count means the course does not exist.
func (r *courseRepository) DeleteCourse(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCourseQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Int64("course_id", id).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// scanCourse scans one course row in the canonical column order shared by
// all course queries.
func scanCourse(scan func(dest ...any) error, course *models.Course) error {
	return scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.UserID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
}
