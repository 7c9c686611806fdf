package account

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether a credential attempt for key may proceed
type Limiter interface {
	Allow(key string) bool
}

// maxTrackedKeys bounds the limiter table; it is cleared when full
const maxTrackedKeys = 10_000

// PhoneLimiter is a token bucket per phone number
type PhoneLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewPhoneLimiter allows perMinute attempts per phone number with the given burst
func NewPhoneLimiter(perMinute, burst int) *PhoneLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &PhoneLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(max(perMinute, 1))),
		burst:    burst,
	}
}

func (l *PhoneLimiter) Allow(key string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= maxTrackedKeys {
			l.limiters = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

type unlimited struct{}

func (unlimited) Allow(string) bool { return true }
