package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/coursehub/coursehub-go/internal/model"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestUserCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?)`)).
		WithArgs("alice@example.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	u := &model.User{Email: "alice@example.com", PasswordHash: "hash"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.ID != 7 {
		t.Errorf("expected ID 7, got %d", u.ID)
	}
	if u.CreatedAt.IsZero() || !u.CreatedAt.Equal(u.UpdatedAt) {
		t.Errorf("expected equal non-zero timestamps, got %v / %v", u.CreatedAt, u.UpdatedAt)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice@example.com' for key 'users.index_users_on_email'"})

	err := repo.Create(context.Background(), &model.User{Email: "alice@example.com", PasswordHash: "hash"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserCreate_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	dbErr := errors.New("db down")
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(dbErr)

	err := repo.Create(context.Background(), &model.User{Email: "alice@example.com", PasswordHash: "hash"})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if errors.Is(err, ErrDuplicateEmail) {
		t.Fatal("generic db error must not map to ErrDuplicateEmail")
	}
}

func TestUserGetByEmail_Found(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(3, "alice@example.com", "hash", ts, ts)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = ?`)).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if u.ID != 3 || u.Email != "alice@example.com" || u.PasswordHash != "hash" || !u.CreatedAt.Equal(ts) {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = ?`)).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateEmail.Error() != "email already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
}

func TestDuplicateKey(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantKey string
		wantDup bool
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("Duplicate entry 'x' for key 'y'")},
		{name: "other mysql error", err: &mysql.MySQLError{Number: 1452, Message: "foreign key"}},
		{
			name:    "qualified key name",
			err:     &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.c' for key 'tutors.index_tutors_on_email'"},
			wantKey: "index_tutors_on_email",
			wantDup: true,
		},
		{
			name:    "bare key name",
			err:     &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Go' for key 'index_courses_on_name'"},
			wantKey: "index_courses_on_name",
			wantDup: true,
		},
		{
			name:    "wrapped",
			err:     errors.Join(errors.New("ctx"), &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}),
			wantKey: "",
			wantDup: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, dup := duplicateKey(tt.err)
			if key != tt.wantKey || dup != tt.wantDup {
				t.Errorf("duplicateKey() = (%q, %v), want (%q, %v)", key, dup, tt.wantKey, tt.wantDup)
			}
		})
	}
}
