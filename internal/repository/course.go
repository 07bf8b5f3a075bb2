package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/coursehub/coursehub-go/internal/model"
)

var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrDuplicateCourseName = errors.New("course name already exists")
	ErrDuplicateTutorEmail = errors.New("tutor email already exists")
)

const (
	courseColumns = `id, name, description, duration_hours, created_at, updated_at`
	tutorColumns  = `id, course_id, name, email, phone, experience_years, created_at, updated_at`
)

// CourseRepository handles course and tutor persistence operations.
type CourseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Count returns the total number of courses.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}

// List returns up to limit courses ordered by ID, skipping the first offset,
// with their tutors loaded.
func (r *CourseRepository) List(ctx context.Context, offset, limit int) ([]model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY id LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.DurationHours, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachTutors(ctx, courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetByID retrieves a course and its tutors.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ?`

	c := model.Course{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.DurationHours, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("querying course: %w", err)
	}

	courses := []model.Course{c}
	if err := r.attachTutors(ctx, courses); err != nil {
		return nil, err
	}
	return &courses[0], nil
}

// Create inserts a course and all of its tutors in one transaction, setting
// generated IDs and timestamps. Nothing is written if any insert fails.
func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ts := now()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO courses (name, description, duration_hours, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		course.Name, course.Description, course.DurationHours, ts, ts,
	)
	if err != nil {
		return mapCourseError(err)
	}
	courseID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for i := range course.Tutors {
		t := &course.Tutors[i]
		result, err := tx.ExecContext(ctx,
			`INSERT INTO tutors (course_id, name, email, phone, experience_years, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			courseID, t.Name, t.Email, t.Phone, t.ExperienceYears, ts, ts,
		)
		if err != nil {
			return mapCourseError(err)
		}
		if t.ID, err = result.LastInsertId(); err != nil {
			return err
		}
		t.CourseID = courseID
		t.CreatedAt = ts
		t.UpdatedAt = ts
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	course.ID = courseID
	course.CreatedAt = ts
	course.UpdatedAt = ts
	return nil
}

// attachTutors loads the tutors of all given courses with a single query.
func (r *CourseRepository) attachTutors(ctx context.Context, courses []model.Course) error {
	if len(courses) == 0 {
		return nil
	}

	index := make(map[int64]int, len(courses))
	args := make([]any, len(courses))
	for i := range courses {
		courses[i].Tutors = []model.Tutor{}
		index[courses[i].ID] = i
		args[i] = courses[i].ID
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(courses)), ", ")
	query := `SELECT ` + tutorColumns + ` FROM tutors WHERE course_id IN (` + placeholders + `) ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("listing tutors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t model.Tutor
		if err := rows.Scan(
			&t.ID, &t.CourseID, &t.Name, &t.Email, &t.Phone, &t.ExperienceYears, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return err
		}
		if i, ok := index[t.CourseID]; ok {
			courses[i].Tutors = append(courses[i].Tutors, t)
		}
	}

	return rows.Err()
}

func mapCourseError(err error) error {
	key, dup := duplicateKey(err)
	switch {
	case dup && key == "index_tutors_on_email":
		return ErrDuplicateTutorEmail
	case dup && key == "index_courses_on_name":
		return ErrDuplicateCourseName
	default:
		return fmt.Errorf("inserting course: %w", err)
	}
}
