package service

import (
	"context"
	"errors"
	"strings"

	"github.com/coursehub/coursehub-go/internal/model"
	"github.com/coursehub/coursehub-go/internal/pagination"
	"github.com/coursehub/coursehub-go/internal/repository"
)

var (
	ErrCourseNotFound       = errors.New("course not found")
	ErrCourseParamsRequired = errors.New("param is missing or the value is empty: course")
)

// CourseStore persists courses with their tutors. Implemented by
// repository.CourseRepository.
type CourseStore interface {
	pagination.Collection[model.Course]
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
}

// CourseService handles course business logic.
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new CourseService.
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{courses: courses}
}

// ListCourses returns one page of courses with their tutors.
func (s *CourseService) ListCourses(ctx context.Context, params pagination.Params) (model.CourseListResponse, error) {
	page, err := pagination.Paginate[model.Course](ctx, s.courses, params)
	if err != nil {
		return model.CourseListResponse{}, err
	}

	return model.CourseListResponse{
		Courses:    coursesToResponse(page.Items),
		Pagination: page.Meta,
	}, nil
}

// GetCourse returns a single course with its tutors.
func (s *CourseService) GetCourse(ctx context.Context, id int64) (model.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return model.CourseResponse{}, ErrCourseNotFound
		}
		return model.CourseResponse{}, err
	}

	return courseToResponse(*course), nil
}

// CreateCourse validates and stores a course together with its tutors.
func (s *CourseService) CreateCourse(ctx context.Context, req model.CreateCourseRequest) (model.CourseResponse, error) {
	if req.Course == nil {
		return model.CourseResponse{}, ErrCourseParamsRequired
	}
	params := *req.Course

	if messages := validateStruct(params); len(messages) > 0 {
		return model.CourseResponse{}, newValidationError(messages...)
	}

	course := model.Course{
		Name:          strings.TrimSpace(params.Name),
		Description:   params.Description,
		DurationHours: *params.DurationHours,
		Tutors:        make([]model.Tutor, 0, len(params.Tutors)),
	}
	for _, tp := range params.Tutors {
		t := model.Tutor{
			Name:  tp.Name,
			Email: strings.TrimSpace(tp.Email),
			Phone: tp.Phone,
		}
		if tp.ExperienceYears != nil {
			t.ExperienceYears = *tp.ExperienceYears
		}
		course.Tutors = append(course.Tutors, t)
	}

	if err := s.courses.Create(ctx, &course); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateCourseName):
			return model.CourseResponse{}, newValidationError("Name has already been taken")
		case errors.Is(err, repository.ErrDuplicateTutorEmail):
			return model.CourseResponse{}, newValidationError("Tutors email has already been taken")
		default:
			return model.CourseResponse{}, err
		}
	}

	return courseToResponse(course), nil
}

// coursesToResponse converts courses to their API form. The result is never nil.
func coursesToResponse(courses []model.Course) []model.CourseResponse {
	result := make([]model.CourseResponse, len(courses))
	for i, c := range courses {
		result[i] = courseToResponse(c)
	}
	return result
}

func courseToResponse(c model.Course) model.CourseResponse {
	tutors := make([]model.TutorResponse, len(c.Tutors))
	for i, t := range c.Tutors {
		tutors[i] = model.TutorResponse{
			ID:              t.ID,
			CourseID:        t.CourseID,
			Name:            t.Name,
			Email:           t.Email,
			Phone:           t.Phone,
			ExperienceYears: t.ExperienceYears,
			CreatedAt:       t.CreatedAt,
			UpdatedAt:       t.UpdatedAt,
		}
	}

	return model.CourseResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		DurationHours: c.DurationHours,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Tutors:        tutors,
	}
}
