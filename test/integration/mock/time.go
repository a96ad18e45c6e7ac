package mock

import (
	"sync"
	"time"
)

// Time is a clock that can be pinned to a date and keeps ticking from there.
type Time struct {
	mu        sync.RWMutex
	start     time.Time
	updatedAt time.Time
}

func NewTime() *Time {
	now := time.Now()
	return &Time{
		start:     now,
		updatedAt: now,
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.start = currentTime
	t.updatedAt = time.Now()
}

// Reset returns the clock to wall time.
func (t *Time) Reset() {
	t.SetCurrentTime(time.Now())
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.start.Add(time.Since(t.updatedAt))
}
