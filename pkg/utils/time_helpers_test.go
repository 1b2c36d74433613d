package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), parsed.Time)

	parsed, err = ParseDate("")
	require.NoError(t, err)
	assert.False(t, parsed.Valid)

	_, err = ParseDate("15.06.2025")
	assert.Error(t, err)
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", FormatDate(parsed))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, 6, 15, 23, 59, 59, 123, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.46, Round2(10.456))
	assert.Equal(t, 10.45, Round2(10.454))
	assert.Equal(t, 0.0, Round2(0))
}
