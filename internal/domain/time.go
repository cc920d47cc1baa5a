package domain

import "time"

// CurrentTimeProvider abstracts the clock so date resolution and timestamps
// are deterministic in tests.
type CurrentTimeProvider interface {
	Now() time.Time
	Location() *time.Location
}
