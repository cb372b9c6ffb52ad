package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("bare date", func(t *testing.T) {
		got, err := ParseDate("2026-03-16")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("RFC 3339", func(t *testing.T) {
		got, err := ParseDate("2026-03-16T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 10, got.Hour())
	})

	t.Run("anything else", func(t *testing.T) {
		for _, s := range []string{"16/03/2026", "March 16", ""} {
			_, err := ParseDate(s)
			assert.ErrorIs(t, err, ErrInvalidDate, s)
		}
	})
}
