package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mgpai22/srtkit/internal/subtitle"
)

// scriptedSource replays a fixed list of positions, repeating the last one.
type scriptedSource struct {
	mu    sync.Mutex
	times []float64
	next  int
}

func (s *scriptedSource) CurrentTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.times[s.next]
	if s.next < len(s.times)-1 {
		s.next++
	}
	return t
}

func TestPollEmitsOnlyOnChange(t *testing.T) {
	s := newLoaded(t,
		subtitle.Cue{Start: 0, End: 2, Text: "a"},
		subtitle.Cue{Start: 2, End: 4, Text: "b"},
	)
	src := &scriptedSource{times: []float64{0.5, 0.7, 2.5, 3, 5, 5}}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got []Highlight
	err := s.Poll(ctx, src, time.Millisecond, func(h Highlight) {
		got = append(got, h)
		if len(got) == 3 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 highlights, got %d: %+v", len(got), got)
	}
	if !got[0].Active || got[0].Entry.Text != "a" {
		t.Errorf("first highlight = %+v", got[0])
	}
	if !got[1].Active || got[1].Entry.Text != "b" || got[1].Time != 2.5 {
		t.Errorf("second highlight = %+v", got[1])
	}
	if got[2].Active {
		t.Errorf("expected nothing active at 5, got %+v", got[2])
	}
}

func TestPollRejectsNonPositiveInterval(t *testing.T) {
	s := New(Options{})
	err := s.Poll(context.Background(), NewClock(0), 0, func(Highlight) {})
	if err == nil {
		t.Fatal("expected error for zero interval")
	}
}

func TestClockPauseSeekAndPlay(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base
	c := &Clock{now: func() time.Time { return current }}
	c.origin = current
	c.offset = 10

	current = base.Add(1500 * time.Millisecond)
	if got := c.CurrentTime(); got != 11.5 {
		t.Errorf("CurrentTime = %v, want 11.5", got)
	}

	c.Pause()
	current = base.Add(5 * time.Second)
	if got := c.CurrentTime(); got != 11.5 {
		t.Errorf("paused CurrentTime = %v, want 11.5", got)
	}

	c.Play()
	current = base.Add(6 * time.Second)
	if got := c.CurrentTime(); got != 12.5 {
		t.Errorf("resumed CurrentTime = %v, want 12.5", got)
	}

	c.SeekTo(-3)
	if got := c.CurrentTime(); got != 0 {
		t.Errorf("CurrentTime after negative seek = %v, want 0", got)
	}
}

func TestNudge(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		delta   float64
		want    float64
	}{
		{name: "forward", current: 10, delta: 0.1, want: 10.1},
		{name: "backward", current: 10, delta: -1, want: 9},
		{name: "clamped", current: 0.05, delta: -0.1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nudge(tt.current, tt.delta); got != tt.want {
				t.Errorf("Nudge(%v, %v) = %v, want %v", tt.current, tt.delta, got, tt.want)
			}
		})
	}
}
