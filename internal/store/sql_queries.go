package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/avdeev/go-coursebook/models"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email_address, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, first_name, last_name, email_address, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
    FROM users
    WHERE email_address = $1;`
)

// psql builds parameterised queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var courseColumns = []string{
	"id",
	"title",
	"description",
	"estimated_time",
	"materials_needed",
	"user_id",
	"created_at",
	"updated_at",
}

func buildListCoursesQuery() (string, []any, error) {
	return psql.
		Select(courseColumns...).
		From("courses").
		OrderBy("id").
		ToSql()
}

func buildGetCourseQuery(id int64) (string, []any, error) {
	return psql.
		Select(courseColumns...).
		From("courses").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertCourseQuery(course models.Course) (string, []any, error) {
	return psql.
		Insert("courses").
		Columns("title", "description", "estimated_time", "materials_needed", "user_id").
		Values(course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.UserID).
		Suffix("RETURNING " + joinColumns(courseColumns)).
		ToSql()
}

func buildUpdateCourseQuery(course models.Course) (string, []any, error) {
	return psql.
		Update("courses").
		Set("title", course.Title).
		Set("description", course.Description).
		Set("estimated_time", course.EstimatedTime).
		Set("materials_needed", course.MaterialsNeeded).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": course.ID}).
		ToSql()
}

func buildDeleteCourseQuery(id int64) (string, []any, error) {
	return psql.
		Delete("courses").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
