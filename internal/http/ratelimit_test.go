package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Record(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(1000, 900)

	assert.Equal(t, 1, limiter.Record())
	assert.Equal(t, 2, limiter.Record())
	assert.Equal(t, 3, limiter.Record())
	assert.Equal(t, 3, limiter.Count())
}

func TestRateLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	limiter := NewRateLimiter(1000, 900)
	limiter.now = func() time.Time { return current }

	limiter.Record()
	limiter.Record()
	assert.Equal(t, 2, limiter.Count())

	// Still inside the rolling window.
	current = current.Add(59 * time.Second)
	assert.Equal(t, 3, limiter.Record())

	// Past the window, the count starts over.
	current = current.Add(2 * time.Minute)
	assert.Equal(t, 1, limiter.Record())
	assert.Equal(t, 1, limiter.Count())
}

func TestRateLimiter_ShouldWarn(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(10, 3)

	limiter.Record()
	limiter.Record()
	assert.False(t, limiter.ShouldWarn())

	limiter.Record()
	assert.True(t, limiter.ShouldWarn())

	// Warning persists for the rest of the window.
	limiter.Record()
	assert.True(t, limiter.ShouldWarn())
}

func TestRateLimiter_Budget(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(1000, 900)
	assert.Equal(t, 1000, limiter.Budget())
}
