package models

import "time"

// Course represents a single course record. Courses are publicly readable
// and mutable only by their owning user.
type Course struct {
	// ID is the internal unique identifier of the course.
	ID int64 `json:"id"`

	// Title is the course title. Required.
	Title string `json:"title"`

	// Description is the course description. Required.
	Description string `json:"description"`

	// EstimatedTime is an optional free-form completion estimate.
	// Always present in JSON; an absent value renders as "".
	EstimatedTime string `json:"estimatedTime"`

	// MaterialsNeeded is an optional free-form list of materials.
	// Always present in JSON; an absent value renders as "".
	MaterialsNeeded string `json:"materialsNeeded"`

	// UserID references the owning user. Set by the server from the
	// authenticated identity, never from the request body.
	UserID int64 `json:"userId"`

	// CreatedAt is the timestamp when the course was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last course modification.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// CourseInput is the request body accepted by the course create and update
// endpoints. A userId field in the body is deliberately not decoded: the
// owner is always the authenticated caller.
type CourseInput struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}
