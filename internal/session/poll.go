package session

import (
	"context"
	"fmt"
	"time"
)

// PositionSource supplies the current playback position in seconds.
type PositionSource interface {
	CurrentTime() float64
}

// Highlight is the cue active at a sampled playback position. Active is false
// when nothing covers Time.
type Highlight struct {
	Time   float64
	Entry  Entry
	Active bool
}

// Poll samples src every interval and calls fn whenever the active cue
// changes. It reads the session only and blocks until ctx is done, returning
// ctx.Err().
func (s *Session) Poll(
	ctx context.Context,
	src PositionSource,
	interval time.Duration,
	fn func(Highlight),
) error {
	if interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last Highlight
	sample := func() {
		now := src.CurrentTime()
		entry, ok := s.ActiveCueAt(now)
		current := Highlight{Time: now, Entry: entry, Active: ok}
		if sameHighlight(last, current) {
			return
		}
		last = current
		fn(current)
	}

	sample()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			sample()
		}
	}
}

func sameHighlight(a, b Highlight) bool {
	if a.Active != b.Active {
		return false
	}
	if !a.Active {
		return true
	}
	return a.Entry == b.Entry
}
