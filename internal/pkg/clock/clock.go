// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-character-forge/internal/pkg/clock Clock

// Clock provides time functionality. After lets timed sequences be driven
// by a fake in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// After waits for the duration to elapse on the system clock
func (c *Real) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock frozen at a point in time whose After fires immediately.
type Fixed struct {
	At time.Time
}

// Now returns the frozen time
func (c *Fixed) Now() time.Time {
	return c.At
}

// After returns an already-fired channel
func (c *Fixed) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.At
	return ch
}
