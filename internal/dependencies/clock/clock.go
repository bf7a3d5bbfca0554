package clock

import "time"

// Clock stamps progress records. Tests substitute mocks.MockClock.
type Clock interface {
	Now() time.Time
}

// UTCClock reads the system clock in UTC, so stored Created and Updated
// stamps compare equal whatever zone the server runs in
type UTCClock struct{}

// New creates a new UTCClock
func New() *UTCClock {
	return &UTCClock{}
}

// Now returns the current time in UTC
func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
