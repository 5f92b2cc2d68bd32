package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jwillison/gbupool/engine"
)

type countingRefresher struct {
	calls atomic.Int64
}

func (c *countingRefresher) RefreshSeason(ctx context.Context) (engine.RefreshStats, error) {
	c.calls.Add(1)
	return engine.RefreshStats{}, nil
}

func TestInSeasonWindow(t *testing.T) {
	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"september sunday", time.Date(2025, time.September, 7, 13, 0, 0, 0, time.UTC), true},
		{"december thursday", time.Date(2025, time.December, 4, 20, 0, 0, 0, time.UTC), true},
		{"january monday", time.Date(2026, time.January, 5, 21, 0, 0, 0, time.UTC), true},
		{"february sunday", time.Date(2026, time.February, 8, 18, 0, 0, 0, time.UTC), true},
		{"june sunday", time.Date(2025, time.June, 8, 13, 0, 0, 0, time.UTC), false},
		{"october wednesday", time.Date(2025, time.October, 8, 13, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		if got := inSeasonWindow(tc.t); got != tc.want {
			t.Errorf("%s: inSeasonWindow = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRunRefreshesInsideWindow(t *testing.T) {
	refresher := &countingRefresher{}
	s := New(refresher, zap.NewNop(), 5*time.Millisecond)
	s.now = func() time.Time {
		return time.Date(2025, time.September, 7, 13, 0, 0, 0, time.UTC)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for refresher.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("no refresh within deadline")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestRunSkipsOutsideWindow(t *testing.T) {
	refresher := &countingRefresher{}
	s := New(refresher, zap.NewNop(), time.Millisecond)
	s.now = func() time.Time {
		return time.Date(2025, time.June, 10, 13, 0, 0, 0, time.UTC)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go s.Run(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	if n := refresher.calls.Load(); n != 0 {
		t.Fatalf("refreshed %d times outside the season window", n)
	}
}
