package handlers

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	commandRate  = rate.Limit(30.0 / 60.0)
	commandBurst = 10
	limiterTTL   = 10 * time.Minute

	rateLimitedText = "You're sending commands too quickly. Please wait a moment and try again."
)

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// userLimiters keeps one token bucket per Slack user. Idle entries are swept on access.
type userLimiters struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	entries   map[string]*userLimiter
	lastSweep time.Time
}

func newUserLimiters(limit rate.Limit, burst int, ttl time.Duration) *userLimiters {
	return &userLimiters{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		entries: make(map[string]*userLimiter),
	}
}

func (l *userLimiters) allow(userID string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.ttl {
		for id, ul := range l.entries {
			if now.Sub(ul.lastAccess) > l.ttl {
				delete(l.entries, id)
			}
		}
		l.lastSweep = now
	}

	ul, ok := l.entries[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[userID] = ul
	}
	ul.lastAccess = now

	return ul.limiter.AllowN(now, 1)
}

func (l *userLimiters) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
