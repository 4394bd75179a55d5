package service

import "time"

// Clock provides the current time so date rules can be tested.
type Clock interface {
	Now() time.Time
}
