package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	DatabaseDebug          bool
	DefaultListLimit       int
	RateLimit              int
	RateLimitBackend       string
	RedisAddr              string
	RedisKeyPrefix         string
	ShutdownTimeoutSeconds int
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	var errs []error

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "taskflow.db"),
		DatabaseDebug:          getEnv("DB_DEBUG", "false") == "true",
		DefaultListLimit:       getEnvAsInt("DEFAULT_LIST_LIMIT", 100, &errs),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120, &errs),
		RateLimitBackend:       strings.ToLower(getEnv("RATE_LIMIT_BACKEND", RateLimitMemory)),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisKeyPrefix:         getEnv("REDIS_KEY_PREFIX", "taskflow:ratelimit:"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20, &errs),
	}

	errs = append(errs, validate(cfg)...)
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func validate(cfg Config) []error {
	var errs []error
	if cfg.DatabaseDSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN must not be empty"))
	}
	if cfg.DefaultListLimit <= 0 {
		errs = append(errs, errors.New("DEFAULT_LIST_LIMIT must be greater than 0"))
	}
	if cfg.RateLimit <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0"))
	}
	if cfg.RateLimitBackend != RateLimitMemory && cfg.RateLimitBackend != RateLimitRedis {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BACKEND must be %q or %q", RateLimitMemory, RateLimitRedis))
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0"))
	}
	return errs
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int, errs *[]error) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid integer value for %s", key))
			return defaultVal
		}
		return i
	}
	return defaultVal
}
