package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const limiterIdleEviction = 10 * time.Minute

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// DetectionLimiter throttles detection runs per user. Detection is the one
// expensive batch operation in the module and re-runs are idempotent, so
// rejecting a burst of overlapping requests is safe. The limiter is an
// injected value, never a package-level singleton.
type DetectionLimiter struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*userLimiter
	limit    rate.Limit
	burst    int
	lastSwep time.Time
}

// NewDetectionLimiter creates a limiter allowing runsPerMinute detection runs
// per user with the given burst.
func NewDetectionLimiter(runsPerMinute, burst int) *DetectionLimiter {
	return &DetectionLimiter{
		users:    make(map[uuid.UUID]*userLimiter),
		limit:    rate.Limit(float64(runsPerMinute) / 60.0),
		burst:    burst,
		lastSwep: time.Now(),
	}
}

// Allow reports whether a detection run for the user may start now.
func (dl *DetectionLimiter) Allow(userID uuid.UUID) bool {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	dl.sweepLocked()

	entry, exists := dl.users[userID]
	if !exists {
		entry = &userLimiter{limiter: rate.NewLimiter(dl.limit, dl.burst)}
		dl.users[userID] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

// sweepLocked evicts limiters for users not seen recently. Running the sweep
// inline keeps the limiter free of background goroutines.
func (dl *DetectionLimiter) sweepLocked() {
	now := time.Now()
	if now.Sub(dl.lastSwep) < limiterIdleEviction {
		return
	}
	dl.lastSwep = now

	for userID, entry := range dl.users {
		if now.Sub(entry.lastSeen) > limiterIdleEviction {
			delete(dl.users, userID)
		}
	}
}
