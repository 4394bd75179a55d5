// Package clock provides the wall clock used by the date rules.
package clock

import (
	"time"

	"funnel/internal/domain/service"
)

type systemClock struct{}

// New returns a clock backed by time.Now.
func New() service.Clock {
	return systemClock{}
}

// Now returns the current time.
func (systemClock) Now() time.Time {
	return time.Now()
}
