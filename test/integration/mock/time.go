package mock

import "time"

// Time is a movable clock used to mint tokens in the past.
type Time struct {
	currentStartTime time.Time
	updatedAt        time.Time
}

// NewTime returns a clock reading the wall time.
func NewTime() *Time {
	now := time.Now()
	return &Time{
		currentStartTime: now,
		updatedAt:        now,
	}
}

// SetCurrentTime moves the clock; it keeps ticking from there.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

// Now returns the clock's current time.
func (t *Time) Now() time.Time {
	elapsed := time.Since(t.updatedAt)
	return t.currentStartTime.Add(elapsed)
}
