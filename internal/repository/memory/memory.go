// Package memory provides in-process implementations of the user and course
// stores. They enforce the same uniqueness rules as the MySQL schema and
// return the repository package's sentinel errors, so they can stand in for
// the database in development and tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/coursehub/coursehub-go/internal/model"
	"github.com/coursehub/coursehub-go/internal/repository"
)

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// UserStore keeps users in memory. Emails are unique ignoring case.
type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]model.User
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]model.User)}
}

func (s *UserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}

	s.nextID++
	ts := now()
	user.ID = s.nextID
	user.CreatedAt = ts
	user.UpdatedAt = ts
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *UserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

// Delete removes a user. Tokens already issued to it stop authenticating.
func (s *UserStore) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// CourseStore keeps courses and their tutors in memory, ordered by ID.
// Course names and tutor emails are unique ignoring case.
type CourseStore struct {
	mu         sync.RWMutex
	nextCourse int64
	nextTutor  int64
	courses    []model.Course
}

// NewCourseStore creates an empty CourseStore.
func NewCourseStore() *CourseStore {
	return &CourseStore{}
}

func (s *CourseStore) Count(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.courses), nil
}

func (s *CourseStore) List(_ context.Context, offset, limit int) ([]model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Course{}
	if offset >= len(s.courses) {
		return out, nil
	}
	end := min(offset+limit, len(s.courses))
	for _, c := range s.courses[offset:end] {
		out = append(out, clone(c))
	}
	return out, nil
}

func (s *CourseStore) GetByID(_ context.Context, id int64) (*model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, found := slices.BinarySearchFunc(s.courses, id, func(c model.Course, id int64) int {
		switch {
		case c.ID < id:
			return -1
		case c.ID > id:
			return 1
		default:
			return 0
		}
	})
	if !found {
		return nil, repository.ErrCourseNotFound
	}
	c := clone(s.courses[i])
	return &c, nil
}

// Create stores the course and its tutors, or nothing if a uniqueness rule
// is violated.
func (s *CourseStore) Create(_ context.Context, course *model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	emails := make(map[string]struct{})
	for _, c := range s.courses {
		if strings.EqualFold(c.Name, course.Name) {
			return repository.ErrDuplicateCourseName
		}
		for _, t := range c.Tutors {
			emails[strings.ToLower(t.Email)] = struct{}{}
		}
	}
	for _, t := range course.Tutors {
		key := strings.ToLower(t.Email)
		if _, taken := emails[key]; taken {
			return repository.ErrDuplicateTutorEmail
		}
		emails[key] = struct{}{}
	}

	ts := now()
	s.nextCourse++
	course.ID = s.nextCourse
	course.CreatedAt = ts
	course.UpdatedAt = ts
	if course.Tutors == nil {
		course.Tutors = []model.Tutor{}
	}
	for i := range course.Tutors {
		s.nextTutor++
		course.Tutors[i].ID = s.nextTutor
		course.Tutors[i].CourseID = course.ID
		course.Tutors[i].CreatedAt = ts
		course.Tutors[i].UpdatedAt = ts
	}

	s.courses = append(s.courses, clone(*course))
	return nil
}

func clone(c model.Course) model.Course {
	c.Tutors = append([]model.Tutor{}, c.Tutors...)
	return c
}
