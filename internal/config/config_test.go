package config

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t, []string{"https://app.example.com"}, parseOrigins("https://app.example.com"))
	assert.Equal(t,
		[]string{"https://a.example.com", "https://b.example.com"},
		parseOrigins(" https://a.example.com , https://b.example.com ,, "),
	)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("STUDYTRACK_TEST_STR", "value")
	assert.Equal(t, "value", getEnv("STUDYTRACK_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", getEnv("STUDYTRACK_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("STUDYTRACK_TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("STUDYTRACK_TEST_INT", 7))

	t.Setenv("STUDYTRACK_TEST_BAD_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("STUDYTRACK_TEST_BAD_INT", 7))

	assert.Equal(t, 7, getEnvInt("STUDYTRACK_TEST_INT_MISSING", 7))
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 5, cfg.MaxLoginAttempts)
	assert.Equal(t, 30*time.Second, cfg.DashboardCacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}

func TestCacheKeys(t *testing.T) {
	userID := uuid.New()
	assert.Equal(t, "login:"+userID.String(), CacheKey.UserSessionKey(userID))
	assert.Equal(t, "dashboard:summary", CacheKey.DashboardSummaryKey())
}
