// Package config
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string
	LogFormat string

	AuthAPIURL string

	StubAddress        string
	StubAllowedOrigins []string
	StubSignupStatus   int
	StubLoginStatus    int
	StubReportInterval time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	// Logs
	logLevel := getEnv("LOG_LEVEL", "info")
	logFormat := getEnv("LOG_FORMAT", "text")

	// Auth endpoint base URL
	authAPIURL := strings.TrimRight(getEnv("AUTH_API_URL", "http://localhost:5000"), "/")

	// Stub HTTP Address
	stubAddr := getEnv("STUB_HTTP_ADDR", ":5000")

	// Stub Allowed Origins
	origins := []string{"*"}
	if raw := os.Getenv("STUB_ALLOWED_ORIGINS"); raw != "" {
		origins = nil
		for o := range strings.SplitSeq(raw, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	// Stub reply statuses
	signupStatus := getStatus("STUB_SIGNUP_STATUS", 201)
	loginStatus := getStatus("STUB_LOGIN_STATUS", 200)

	reportInterval := 30 * time.Second
	if raw := os.Getenv("STUB_REPORT_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			reportInterval = d
		}
	}

	return &Config{
		LogLevel:  logLevel,
		LogFormat: logFormat,

		AuthAPIURL: authAPIURL,

		StubAddress:        stubAddr,
		StubAllowedOrigins: origins,
		StubSignupStatus:   signupStatus,
		StubLoginStatus:    loginStatus,
		StubReportInterval: reportInterval,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getStatus(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	code, err := strconv.Atoi(raw)
	if err != nil || code < 100 || code > 599 {
		return fallback
	}
	return code
}
