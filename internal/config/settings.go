package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultAddr       = ":8080"
	defaultSQLitePath = "quiz.db"
	defaultRedisTTL   = 10 * time.Minute
)

type Settings struct {
	Addr           string
	DBDriver       string
	DatabaseDSN    string
	AutoMigrate    bool
	LogLevel       logrus.Level
	LogFormat      string
	RedisAddr      string
	RedisTTL       time.Duration
	AllowedOrigins []string
}

// Load reads Settings from the environment.
func Load() (*Settings, error) {
	s := &Settings{
		Addr:      getEnv("ADDR", defaultAddr),
		DBDriver:  strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisTTL:  defaultRedisTTL,
	}

	switch s.DBDriver {
	case DriverPostgres:
		s.DatabaseDSN = os.Getenv("DATABASE_DSN")
		if s.DatabaseDSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for driver %q", s.DBDriver)
		}
	case DriverSQLite:
		s.DatabaseDSN = getEnv("DATABASE_DSN", defaultSQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", s.DBDriver)
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	s.LogLevel = level

	if s.LogFormat != "text" && s.LogFormat != "json" {
		return nil, fmt.Errorf("unsupported LOG_FORMAT %q", s.LogFormat)
	}

	if v := os.Getenv("REDIS_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("REDIS_TTL must be positive, got %s", ttl)
		}
		s.RedisTTL = ttl
	}

	if v := os.Getenv("AUTO_MIGRATE"); v != "" {
		migrate, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTO_MIGRATE: %w", err)
		}
		s.AutoMigrate = migrate
	}

	s.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return s, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
