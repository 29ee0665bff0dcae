// Package clock stamps saved builds with the current time
package clock

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// Real reads the system clock truncated to whole seconds, the resolution
// the sqlite backend stores
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now().Truncate(time.Second)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant
func (c *Fixed) Now() time.Time {
	return c.At
}
