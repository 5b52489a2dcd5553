package pantry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		hint     string
		expected time.Time
	}{
		{"3d", now.Add(3 * 24 * time.Hour)},
		{"2w", now.Add(14 * 24 * time.Hour)},
		{"12h", now.Add(12 * time.Hour)},
		{"5", now.Add(5 * 24 * time.Hour)},
		{" 1D ", now.Add(24 * time.Hour)},
		{"0d", now},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			got, err := ParseExpiry(tt.hint, now)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, got.Equal(tt.expected), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestParseExpiryDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got, err := ParseExpiry("2025-06-10", now)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Expires at the end of the named day
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 10, got.Day())
	assert.Equal(t, 23, got.Hour())
}

func TestParseExpiryEmpty(t *testing.T) {
	got, err := ParseExpiry("", time.Now())
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseExpiry("   ", time.Now())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseExpiryInvalid(t *testing.T) {
	for _, hint := range []string{"soon", "-3d", "d", "3x4"} {
		_, err := ParseExpiry(hint, time.Now())
		assert.Error(t, err, "hint %q", hint)
	}
}
