package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerPort           = 8080
	defaultPhaseTransitionDelay = 2 * time.Second
)

// R2Config описывает хранилище опубликованных отчётов. Пустая структура отключает публикацию.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

func (c R2Config) Enabled() bool {
	return c != R2Config{}
}

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort            int
	JWTSecretKey          string
	OrganizerPasswordHash string
	PhaseTransitionDelay  time.Duration
	DrawSeed              *int64
	CORSAllowedOrigins    []string
	LogLevel              slog.Level
	R2                    R2Config
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port := defaultServerPort
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
		}
		port = p
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	delay := defaultPhaseTransitionDelay
	if delayStr := os.Getenv("PHASE_TRANSITION_DELAY"); delayStr != "" {
		d, err := time.ParseDuration(delayStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PHASE_TRANSITION_DELAY environment variable: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("PHASE_TRANSITION_DELAY must not be negative, got %s", d)
		}
		delay = d
	}

	var drawSeed *int64
	if seedStr := os.Getenv("DRAW_SEED"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DRAW_SEED environment variable: %w", err)
		}
		drawSeed = &seed
	}

	logLevel := slog.LevelInfo
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if err := logLevel.UnmarshalText([]byte(levelStr)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
		}
	}

	r2 := R2Config{
		AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("R2_BUCKET_NAME"),
		PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}
	if r2.Enabled() && (r2.AccountID == "" || r2.AccessKeyID == "" || r2.SecretAccessKey == "" || r2.BucketName == "" || r2.PublicBaseURL == "") {
		return nil, fmt.Errorf("R2 configuration is partial: set all R2_* variables or none")
	}

	cfg := &Config{
		ServerPort:            port,
		JWTSecretKey:          jwtKey,
		OrganizerPasswordHash: os.Getenv("ORGANIZER_PASSWORD_HASH"),
		PhaseTransitionDelay:  delay,
		DrawSeed:              drawSeed,
		CORSAllowedOrigins:    parseList(os.Getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
		LogLevel:              logLevel,
		R2:                    r2,
	}

	return cfg, nil
}

func parseList(raw string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
