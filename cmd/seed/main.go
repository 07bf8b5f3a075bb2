// Command seed loads sample users and courses into the database. Records
// that already exist are left untouched, so it is safe to run repeatedly.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/coursehub/coursehub-go/internal/config"
	"github.com/coursehub/coursehub-go/internal/crypto"
	"github.com/coursehub/coursehub-go/internal/model"
	"github.com/coursehub/coursehub-go/internal/repository"
	"github.com/coursehub/coursehub-go/internal/service"
)

type seedTutor struct {
	name            string
	email           string
	phone           string
	experienceYears int
}

type seedCourse struct {
	name          string
	description   string
	durationHours int
	tutors        []seedTutor
}

type seedStats struct {
	users, courses, tutors, skipped int
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := repository.Migrate(ctx, db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	tokens := crypto.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	auth := service.NewAuthService(repository.NewUserRepository(db), tokens)
	courses := service.NewCourseService(repository.NewCourseRepository(db))

	stats, err := seed(ctx, auth, courses)
	if err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seeding complete",
		"users", stats.users,
		"courses", stats.courses,
		"tutors", stats.tutors,
		"skipped", stats.skipped,
	)
	slog.Info("sample login", "email", seedUsers[0], "password", seedPassword)
}

func seed(ctx context.Context, auth *service.AuthService, courses *service.CourseService) (seedStats, error) {
	var stats seedStats

	for _, email := range seedUsers {
		confirmation := seedPassword
		_, err := auth.Register(ctx, model.RegisterRequest{User: &model.RegisterParams{
			Email:                email,
			Password:             seedPassword,
			PasswordConfirmation: &confirmation,
		}})
		if skip, err := skippable(err, "user", email); err != nil {
			return stats, err
		} else if skip {
			stats.skipped++
			continue
		}
		stats.users++
	}

	for _, sc := range seedCourses {
		params := &model.CourseParams{
			Name:          sc.name,
			Description:   sc.description,
			DurationHours: &sc.durationHours,
		}
		for _, st := range sc.tutors {
			years := st.experienceYears
			params.Tutors = append(params.Tutors, model.TutorParams{
				Name:            st.name,
				Email:           st.email,
				Phone:           st.phone,
				ExperienceYears: &years,
			})
		}

		resp, err := courses.CreateCourse(ctx, model.CreateCourseRequest{Course: params})
		if skip, err := skippable(err, "course", sc.name); err != nil {
			return stats, err
		} else if skip {
			stats.skipped++
			continue
		}
		stats.courses++
		stats.tutors += len(resp.Tutors)
	}

	return stats, nil
}

// skippable reports whether err only says the record already exists.
func skippable(err error, kind, key string) (bool, error) {
	if err == nil {
		return false, nil
	}
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		slog.Info("skipping existing "+kind, "key", key, "reason", verr.Error())
		return true, nil
	}
	return false, err
}
