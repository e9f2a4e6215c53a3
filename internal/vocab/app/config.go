package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/service"
	"github.com/aussiebroadwan/vocab/pkg/httpx"
	"github.com/aussiebroadwan/vocab/pkg/jwtx"
)

type Config struct {
	AccessSecret  string        // Optional: HMAC secret for access tokens, at least 32 bytes (default: random per process)
	RefreshSecret string        // Optional: HMAC secret for refresh tokens, must differ from AccessSecret (default: random per process)
	Issuer        string        // Optional: issuer claim for tokens (default: vocab)
	AccessTTL     time.Duration // Optional: access token lifetime (default: 15m)
	RefreshTTL    time.Duration // Optional: refresh token lifetime (default: 14 days)

	DatabaseFile string // Optional: path to SQLite database file (default: ./vocab.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	CookieSecure bool   // Secure attribute on the refresh token cookie (default: true)
	CORSOrigin   string // Allowed browser origin, "*" reflects any, empty disables (default: *)

	SpeechURL     string        // Text-to-speech URL template with {lang} and {text}
	SpeechLang    string        // Text-to-speech language (default: en)
	SpeechTimeout time.Duration // Text-to-speech upstream timeout (default: 10s)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 5000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired refresh token sweep interval (default: 1h)

	RateLimits httpx.RateLimitProfiles
}

func LoadConfig() Config {
	return Config{
		AccessSecret:  os.Getenv("VOCAB_ACCESS_SECRET"),
		RefreshSecret: os.Getenv("VOCAB_REFRESH_SECRET"),
		Issuer:        getEnvOrDefault("VOCAB_ISSUER", "vocab"),
		AccessTTL:     getEnvDurationOrDefault("VOCAB_ACCESS_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTTL:    getEnvDurationOrDefault("VOCAB_REFRESH_TTL", jwtx.DefaultRefreshTokenTTL),

		DatabaseFile: getEnvOrDefault("VOCAB_DATABASE_FILE", "vocab.db"),
		PepperFile:   getEnvOrDefault("VOCAB_PEPPER_FILE", "pepper"),

		CookieSecure: getEnvBoolOrDefault("VOCAB_COOKIE_SECURE", true),
		CORSOrigin:   getEnvOrDefault("VOCAB_CORS_ORIGIN", "*"),

		SpeechURL:     getEnvOrDefault("VOCAB_SPEECH_URL", service.DefaultSpeechURL),
		SpeechLang:    getEnvOrDefault("VOCAB_SPEECH_LANG", "en"),
		SpeechTimeout: getEnvDurationOrDefault("VOCAB_SPEECH_TIMEOUT", 10*time.Second),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		RateLimits: httpx.RateLimitsFromEnv(httpx.DefaultRateLimits()),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
