// Package config builds process configuration from the environment so main
// stays lean. A .env file is honored in development; real deployments set
// the variables directly.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures everything the server process needs to start.
type Config struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	DatabaseURL string
	RedisURL    string

	KafkaBrokers []string
	AuditTopic   string

	SchedulerEnabled  bool
	SchedulerInterval time.Duration
	AuditRetention    time.Duration

	LogLevel slog.Level
}

// FromEnv builds a Config from environment variables, loading .env first
// when present.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:              envOr("NEWSDESK_ADDR", ":8080"),
		JWTSigningKey:     envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:         envOr("JWT_ISSUER", "newsdesk"),
		JWTAudience:       envOr("JWT_AUDIENCE", "newsdesk-api"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		AuditTopic:        envOr("AUDIT_TOPIC", "newsdesk.audit"),
		SchedulerEnabled:  envBool("SCHEDULER_ENABLED", true),
		SchedulerInterval: envDuration("SCHEDULER_INTERVAL", 24*time.Hour),
		AuditRetention:    envDuration("AUDIT_RETENTION", 365*24*time.Hour),
		LogLevel:          parseLogLevel(os.Getenv("LOG_LEVEL")),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
