package data

import "time"

// TimeProvider is the clock seam the repositories stamp created_at and
// updated_at through, so tests can pin timestamps.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the system clock.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// FixedTimeProvider returns a fixed instant, settable between assertions.
type FixedTimeProvider struct {
	fixed time.Time
}

func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{fixed: t}
}

func (f *FixedTimeProvider) Now() time.Time { return f.fixed }

// SetTime moves the fixed clock.
func (f *FixedTimeProvider) SetTime(t time.Time) { f.fixed = t }
