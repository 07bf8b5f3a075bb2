package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

// Storage backends.
const (
	StorageMySQL  = "mysql"
	StorageMemory = "memory"
)

type Config struct {
	Port        string
	Env         string
	Storage     string
	DatabaseDSN string
	AutoMigrate bool
	JWTSecret   string
	JWTExpiry   time.Duration
	LogLevel    slog.Level

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int
}

// IsProduction reports whether the service runs with ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the configuration from the environment and exits the process
// when it is unusable.
func Load() Config {
	cfg, err := parse(os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

func parse(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Port:        get("PORT", "8080"),
		Env:         get("ENV", "development"),
		Storage:     strings.ToLower(get("STORAGE", StorageMySQL)),
		DatabaseDSN: get("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/coursehub?parseTime=true"),
		JWTSecret:   get("JWT_SECRET", devJWTSecret),
	}

	var errs []error

	if cfg.Storage != StorageMySQL && cfg.Storage != StorageMemory {
		errs = append(errs, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageMySQL, StorageMemory, cfg.Storage))
	}

	autoMigrate, err := strconv.ParseBool(get("DB_AUTO_MIGRATE", "true"))
	if err != nil {
		errs = append(errs, fmt.Errorf("DB_AUTO_MIGRATE: %w", err))
	}
	cfg.AutoMigrate = autoMigrate

	expiry, err := time.ParseDuration(get("JWT_EXPIRY", "24h"))
	if err != nil {
		errs = append(errs, fmt.Errorf("JWT_EXPIRY: %w", err))
	} else if expiry <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRY must be positive"))
	}
	cfg.JWTExpiry = expiry

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	rps, err := strconv.ParseFloat(get("AUTH_RATE_LIMIT_RPS", "5"), 64)
	if err != nil || rps <= 0 {
		errs = append(errs, errors.New("AUTH_RATE_LIMIT_RPS must be a positive number"))
	}
	cfg.AuthRateLimitRPS = rps

	burst, err := strconv.Atoi(get("AUTH_RATE_LIMIT_BURST", "10"))
	if err != nil || burst < 1 {
		errs = append(errs, errors.New("AUTH_RATE_LIMIT_BURST must be a positive integer"))
	}
	cfg.AuthRateLimitBurst = burst

	if cfg.IsProduction() && cfg.JWTSecret == devJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production environment"))
	}

	return cfg, errors.Join(errs...)
}
