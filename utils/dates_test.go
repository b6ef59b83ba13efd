package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(got))

	got, err = ParseDate("2024-03-10T23:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", FormatDate(got))
	assert.Equal(t, time.UTC, got.Location())

	for _, bad := range []string{"", "10/03/2024", "2024-02-30"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	got := DateOnly(time.Date(2024, 1, 1, 2, 0, 0, 0, loc))
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestToday(t *testing.T) {
	today := Today(nil)
	assert.Zero(t, today.Hour())
	assert.Equal(t, time.UTC, today.Location())
}
