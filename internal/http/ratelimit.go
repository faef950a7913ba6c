package http

import (
	"sync"
	"time"

	"github.com/SamP9999/intercom-cli/internal/constants"
)

// RateLimiter tracks request volume against the server's per-minute
// budget. It only counts and warns; throttling itself is enforced by the
// server through 429 responses, which the client resolves separately.
type RateLimiter struct {
	mu          sync.Mutex
	budget      int
	warnAt      int
	windowStart time.Time
	count       int
	now         func() time.Time
}

// NewRateLimiter creates a limiter with the given budget and warning
// threshold.
func NewRateLimiter(budget, warnAt int) *RateLimiter {
	return &RateLimiter{
		budget: budget,
		warnAt: warnAt,
		now:    time.Now,
	}
}

// Record accounts one outbound request, starting a fresh window when the
// previous one has elapsed. It returns the count within the current
// window.
func (r *RateLimiter) Record() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.windowStart.IsZero() || now.Sub(r.windowStart) > constants.RateLimitWindow {
		r.windowStart = now
		r.count = 0
	}

	r.count++

	return r.count
}

// ShouldWarn reports whether the current window's count has crossed the
// advisory threshold. It never blocks or delays a request.
func (r *RateLimiter) ShouldWarn() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.count >= r.warnAt
}

// Count returns the request count within the current window.
func (r *RateLimiter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.count
}

// Budget returns the per-window request budget.
func (r *RateLimiter) Budget() int {
	return r.budget
}
