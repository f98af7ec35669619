package session

import (
	"context"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/rewards-portal/mocks/port/core"
)

// fakeClock returns a time provider whose Now is moved by advance
func fakeClock(t *testing.T) (*coremocks.MockTimeProvider, func(time.Duration)) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return now }).Maybe()
	return clock, func(d time.Duration) { now = now.Add(d) }
}

var ctx = context.Background()
