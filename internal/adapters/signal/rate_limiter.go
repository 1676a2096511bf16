package signal

import (
	"sync"
	"time"

	"github.com/okuren/Tavern/internal/domain"
)

// RollRateLimiter caps how many rolls a single connection may send per
// sliding window. Floods are dropped before they reach the gateway.
type RollRateLimiter struct {
	mu       sync.Mutex
	history  map[domain.ConnID][]time.Time
	limit    int
	interval time.Duration
}

func NewRollRateLimiter(limit int, interval time.Duration) *RollRateLimiter {
	return &RollRateLimiter{
		history:  make(map[domain.ConnID][]time.Time),
		limit:    limit,
		interval: interval,
	}
}

func (rl *RollRateLimiter) Allow(id domain.ConnID) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.limit <= 0 {
		return true
	}

	now := time.Now()
	windowStart := now.Add(-rl.interval)

	attempts := rl.history[id]

	fresh := make([]time.Time, 0, len(attempts))
	for _, t := range attempts {
		if t.After(windowStart) {
			fresh = append(fresh, t)
		}
	}

	if len(fresh) >= rl.limit {
		rl.history[id] = fresh
		return false
	}

	fresh = append(fresh, now)
	rl.history[id] = fresh

	return true
}

// Forget drops the connection's history; called on disconnect so the map
// does not grow for the lifetime of the process.
func (rl *RollRateLimiter) Forget(id domain.ConnID) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.history, id)
}
