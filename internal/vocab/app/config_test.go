package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/service"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("VOCAB_ISSUER", "")
	cfg := LoadConfig()

	require.Equal(t, "vocab", cfg.Issuer)
	require.Equal(t, 15*time.Minute, cfg.AccessTTL)
	require.Equal(t, 14*24*time.Hour, cfg.RefreshTTL)
	require.Equal(t, "vocab.db", cfg.DatabaseFile)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, "*", cfg.CORSOrigin)
	require.Equal(t, service.DefaultSpeechURL, cfg.SpeechURL)
	require.Equal(t, "en", cfg.SpeechLang)
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Equal(t, 10, cfg.RateLimits.Strict.RequestsPerWindow)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("VOCAB_ISSUER", "vocab-test")
	t.Setenv("VOCAB_ACCESS_TTL", "5m")
	t.Setenv("VOCAB_REFRESH_TTL", "90") // minutes
	t.Setenv("VOCAB_COOKIE_SECURE", "false")
	t.Setenv("VOCAB_CORS_ORIGIN", "https://app.example.com")
	t.Setenv("PORT", "8081")
	t.Setenv("HOUSEKEEPING_INTERVAL", "not-a-duration")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "3")

	cfg := LoadConfig()

	require.Equal(t, "vocab-test", cfg.Issuer)
	require.Equal(t, 5*time.Minute, cfg.AccessTTL)
	require.Equal(t, 90*time.Minute, cfg.RefreshTTL)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, "https://app.example.com", cfg.CORSOrigin)
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Equal(t, 3, cfg.RateLimits.Strict.RequestsPerWindow)
}

func TestGetEnvBoolOrDefault(t *testing.T) {
	t.Setenv("VOCAB_FLAG", "garbage")
	require.True(t, getEnvBoolOrDefault("VOCAB_FLAG", true))

	t.Setenv("VOCAB_FLAG", "0")
	require.False(t, getEnvBoolOrDefault("VOCAB_FLAG", true))
}
