package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	ActionLogin         = "login"
	ActionWrite         = "write"
	ActionConsumerOrder = "consumer_order"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per caller and action.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*entry
	perMinute int
	now       func() time.Time
}

// NewRateLimiter sizes the default write bucket at perMinute requests per minute.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	return &RateLimiter{
		buckets:   make(map[string]*entry),
		perMinute: perMinute,
		now:       time.Now,
	}
}

func (rl *RateLimiter) limiterFor(action string) *rate.Limiter {
	switch action {
	case ActionLogin:
		// 5 attempts per minute
		return rate.NewLimiter(rate.Every(12*time.Second), 5)
	case ActionConsumerOrder:
		return rate.NewLimiter(rate.Every(6*time.Second), 10)
	default:
		return rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMinute)), rl.perMinute)
	}
}

// Allow consumes a token for key/action and reports how long to wait when none is left.
func (rl *RateLimiter) Allow(key, action string) (bool, time.Duration) {
	id := key + ":" + action
	now := rl.now()

	rl.mu.Lock()
	e, ok := rl.buckets[id]
	if !ok {
		e = &entry{limiter: rl.limiterFor(action)}
		rl.buckets[id] = e
	}
	e.lastSeen = now
	rl.mu.Unlock()

	r := e.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Minute
	}
	if wait := r.DelayFrom(now); wait > 0 {
		r.CancelAt(now)
		return false, wait
	}
	return true, 0
}

// Cleanup removes buckets idle for longer than idle.
func (rl *RateLimiter) Cleanup(idle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, e := range rl.buckets {
		if now.Sub(e.lastSeen) > idle {
			delete(rl.buckets, key)
		}
	}
}

// StartCleanupRoutine prunes idle buckets every interval until stop is closed.
func (rl *RateLimiter) StartCleanupRoutine(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.Cleanup(2 * interval)
			case <-stop:
				return
			}
		}
	}()
}
