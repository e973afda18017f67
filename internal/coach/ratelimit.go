package coach

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Free-tier chat endpoints allow roughly ten requests a minute
const (
	defaultRequestsPerWindow = 10
	defaultWindow            = time.Minute
	defaultMinInterval       = 500 * time.Millisecond
)

// RateLimiter spaces out tip requests so a user hammering the quick
// prompts doesn't run the API key into its quota
type RateLimiter struct {
	mu sync.Mutex

	limit    int
	usage    int
	window   time.Duration
	resetsAt time.Time

	// Minimum interval between requests
	minInterval time.Duration
	lastRequest time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window
func NewRateLimiter(limit int, window, minInterval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		window:      window,
		resetsAt:    time.Now().Add(window),
		minInterval: minInterval,
	}
}

// Wait blocks until a request can be made without exceeding the limit
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Other waiters may run while the lock is released in sleep, so
	// every condition is rechecked after waking
	for {
		now := time.Now()
		if !now.Before(r.resetsAt) {
			r.usage = 0
			r.resetsAt = now.Add(r.window)
		}

		if r.usage >= r.limit {
			if err := r.sleep(ctx, time.Until(r.resetsAt)); err != nil {
				return err
			}
			continue
		}

		if elapsed := time.Since(r.lastRequest); elapsed < r.minInterval {
			if err := r.sleep(ctx, r.minInterval-elapsed); err != nil {
				return err
			}
			continue
		}
		break
	}

	r.usage++
	r.lastRequest = time.Now()
	return nil
}

// sleep waits with the lock released. Callers hold r.mu.
func (r *RateLimiter) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Unlock()
	defer r.mu.Lock()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// UpdateFromHeaders reacts to a throttled response. A Retry-After of N
// seconds exhausts the window until then.
func (r *RateLimiter) UpdateFromHeaders(h http.Header) {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.usage = r.limit
	r.resetsAt = time.Now().Add(time.Duration(secs) * time.Second)
}

// Remaining returns how many requests are left in the current window
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if time.Now().After(r.resetsAt) {
		return r.limit
	}
	return r.limit - r.usage
}
