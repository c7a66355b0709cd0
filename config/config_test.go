package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("VIDEO_SEGMENTS", "")
	t.Setenv("OTP_TTL", "")

	cfg := LoadConfig()
	assert.Equal(t, "3006", cfg.Port)
	assert.Equal(t, 10, cfg.SaltRound)
	assert.Equal(t, 0, cfg.VideoSegments)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("VIDEO_SEGMENTS", "4")
	t.Setenv("OTP_TTL", "2m")
	t.Setenv("SALT_ROUND", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 4, cfg.VideoSegments)
	assert.Equal(t, 2*time.Minute, cfg.OTPTTL)
	assert.Equal(t, 10, cfg.SaltRound)
}
