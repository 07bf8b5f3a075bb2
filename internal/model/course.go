package model

import (
	"time"

	"github.com/coursehub/coursehub-go/internal/pagination"
)

// Course represents a course row together with its tutors.
type Course struct {
	ID            int64
	Name          string
	Description   string
	DurationHours int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Tutors        []Tutor
}

// Tutor represents a tutor row. Tutors belong to exactly one course.
type Tutor struct {
	ID              int64
	CourseID        int64
	Name            string
	Email           string
	Phone           string
	ExperienceYears int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateCourseRequest wraps the course fields under a "course" key.
type CreateCourseRequest struct {
	Course *CourseParams `json:"course"`
}

// CourseParams are the accepted course fields. Tutors are created with the course.
type CourseParams struct {
	Name          string        `json:"name" validate:"required"`
	Description   string        `json:"description" validate:"required"`
	DurationHours *int          `json:"duration_hours" validate:"required,gt=0"`
	Tutors        []TutorParams `json:"tutors_attributes" validate:"dive"`
}

// TutorParams are the accepted fields for one nested tutor.
// ExperienceYears defaults to 0 when omitted.
type TutorParams struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0"`
}

// CourseResponse is the API representation of a course with its tutors.
type CourseResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	DurationHours int             `json:"duration_hours"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Tutors        []TutorResponse `json:"tutors"`
}

// TutorResponse is the API representation of a tutor.
type TutorResponse struct {
	ID              int64     `json:"id"`
	CourseID        int64     `json:"course_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ExperienceYears int       `json:"experience_years"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CourseListResponse is one page of courses.
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination pagination.Meta  `json:"pagination"`
}
