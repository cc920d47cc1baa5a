package time

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider using
// the standard time package and a fixed reference location for date phrases.
type CurrentTimeProvider struct {
	loc *time.Location
}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	return time.Now()
}

// Location returns the reference location used to resolve relative dates.
func (ts CurrentTimeProvider) Location() *time.Location {
	return ts.loc
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	Timezone string `config:"TIME_ZONE" default:"Asia/Karachi"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := time.LoadLocation(its.Timezone)
	if err != nil {
		return ctx, fmt.Errorf("load timezone %q: %w", its.Timezone, err)
	}
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{loc: loc})
	return ctx, nil
}
