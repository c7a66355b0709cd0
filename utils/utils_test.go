package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	digits := regexp.MustCompile(`^\d{5}$`)
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP(OTPDigits)
		require.NoError(t, err)
		assert.Regexp(t, digits, code)
	}

	_, err := GenerateOTP(0)
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, ok := ParseID(" 42 ")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"", "0", "-1", "abc", "1.5"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, 14, d.Day())

	d, err = ParseDate("2026-10-14T08:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, d.Hour())

	_, err = ParseDate("14/10/2026")
	assert.Error(t, err)
}
