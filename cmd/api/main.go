package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/coursehub/coursehub-go/internal/api"
	"github.com/coursehub/coursehub-go/internal/config"
	"github.com/coursehub/coursehub-go/internal/crypto"
	"github.com/coursehub/coursehub-go/internal/repository"
	"github.com/coursehub/coursehub-go/internal/repository/memory"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(newLogger(cfg))

	deps := api.Deps{
		Tokens:             crypto.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry),
		AuthRateLimitRPS:   cfg.AuthRateLimitRPS,
		AuthRateLimitBurst: cfg.AuthRateLimitBurst,
	}

	switch cfg.Storage {
	case config.StorageMemory:
		slog.Warn("using in-memory storage, data is lost on restart")
		deps.Users = memory.NewUserStore()
		deps.Courses = memory.NewCourseStore()
	default:
		db, err := openDB(cfg)
		if err != nil {
			slog.Error("database setup failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		deps.Users = repository.NewUserRepository(db)
		deps.Courses = repository.NewCourseRepository(db)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func openDB(cfg config.Config) (*sql.DB, error) {
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := repository.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("database migrations applied")
	}

	return db, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
