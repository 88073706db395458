package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr          = ":8080"
	defaultLogLevel          = "info"
	defaultProgressSteps     = 100
	defaultProgressStepDelay = 10 * time.Millisecond
	defaultMaxUploadBytes    = 20 << 20
	defaultMaxImagePixels    = 89478485
)

type Config struct {
	HTTPAddr          string
	TelegramToken     string
	RedisAddr         string // пусто: сессии бота в памяти
	LogLevel          string
	ProgressSteps     int
	ProgressStepDelay time.Duration
	MaxUploadBytes    int64
	MaxImagePixels    int64 // 0 отключает проверку
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", defaultHTTPAddr),
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		LogLevel:          getEnv("LOG_LEVEL", defaultLogLevel),
		ProgressSteps:     defaultProgressSteps,
		ProgressStepDelay: defaultProgressStepDelay,
		MaxUploadBytes:    defaultMaxUploadBytes,
		MaxImagePixels:    defaultMaxImagePixels,
	}

	if v := os.Getenv("PROGRESS_STEPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid PROGRESS_STEPS %q", v)
		}
		cfg.ProgressSteps = n
	}

	if v := os.Getenv("PROGRESS_STEP_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid PROGRESS_STEP_DELAY %q", v)
		}
		cfg.ProgressStepDelay = d
	}

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES %q", v)
		}
		cfg.MaxUploadBytes = n
	}

	if v := os.Getenv("MAX_IMAGE_PIXELS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid MAX_IMAGE_PIXELS %q", v)
		}
		cfg.MaxImagePixels = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
