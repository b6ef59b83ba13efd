package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfirmationNumber(t *testing.T) {
	now := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^HTL[0-9A-Z]+[0-9A-F]{6}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		n := NewConfirmationNumber(now)
		assert.Regexp(t, pattern, n)
		assert.False(t, seen[n], "duplicate %s", n)
		seen[n] = true
	}
}
