// Package ratelimiter throttles the frequency of repeated operations, such as
// calls to external APIs.
package ratelimiter

import (
	"log"
	"sync"
	"time"
)

// RateLimiterInterface limits how often an operation may run.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter counts calls within a fixed window and sleeps when the limit is
// hit. Safe for concurrent use.
type RateLimiter struct {
	limit    int           // calls allowed per interval
	interval time.Duration // window size

	mu        sync.Mutex // guards count and lastReset
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter instance.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded checks whether the limit has been reached and sleeps out the
// rest of the window when it has.
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			log.Printf("[RATE LIMIT] hit %d calls, sleeping for %v...", rl.limit, sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
