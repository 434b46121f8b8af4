package session

import (
	"fmt"
	"slices"

	"github.com/mgpai22/srtkit/internal/subtitle"
)

// MarkAction describes what a mark did to the sequence.
type MarkAction int

const (
	MarkIgnored MarkAction = iota
	MarkOpened
	MarkClosed
	MarkSplit
)

func (a MarkAction) String() string {
	switch a {
	case MarkOpened:
		return "opened"
	case MarkClosed:
		return "closed"
	case MarkSplit:
		return "split"
	default:
		return "ignored"
	}
}

// MarkResult reports the action taken and the position of the affected entry
// (the left half for a split, -1 when ignored).
type MarkResult struct {
	Action MarkAction
	Index  int
}

// Mark places a timestamp mark at t.
//
// Inside a closed cue it splits that cue at t, the text divided at its
// midpoint. Otherwise with no open cue it opens one starting at t, unless t is
// exactly the end of an existing cue, which is ignored. With an open cue it
// closes the cue at t, which must be after the cue's start.
func (s *Session) Mark(t float64) (MarkResult, error) {
	if !validTime(t) {
		return MarkResult{Index: -1}, s.reject("mark", -1, fmt.Sprintf("invalid time %v", t))
	}

	for k, c := range s.closed {
		if t > c.Start && t < c.End {
			return s.split(k, t), nil
		}
	}

	if s.open == nil {
		for _, c := range s.closed {
			if c.End == t {
				s.logger.Debugw("Ignoring mark at end of existing cue",
					"time", subtitle.FormatSRTTime(t),
				)
				return MarkResult{Action: MarkIgnored, Index: -1}, nil
			}
		}
		s.open = &openCue{start: t}
		pos := s.openPos()
		s.logger.Debugw("Opened cue", "index", pos, "start", subtitle.FormatSRTTime(t))
		return MarkResult{Action: MarkOpened, Index: pos}, nil
	}

	pos, err := s.closeOpen("mark", t)
	if err != nil {
		return MarkResult{Index: -1}, err
	}
	return MarkResult{Action: MarkClosed, Index: pos}, nil
}

// closeOpen ends the open cue at t and moves it into the closed cues,
// returning its position.
func (s *Session) closeOpen(op string, t float64) (int, error) {
	pos := s.openPos()
	if t <= s.open.start {
		return -1, s.reject(op, pos, fmt.Sprintf(
			"end %s must be after start %s",
			subtitle.FormatSRTTime(t), subtitle.FormatSRTTime(s.open.start),
		))
	}
	if j := s.overlapping(s.open.start, t, -1); j >= 0 {
		return -1, s.reject(op, pos, fmt.Sprintf(
			"closing at %s would overlap cue %d",
			subtitle.FormatSRTTime(t), s.viewPos(j)+1,
		))
	}

	cue := subtitle.Cue{Start: s.open.start, End: t, Text: s.open.text}
	s.closed = slices.Insert(s.closed, pos, cue)
	s.open = nil
	subtitle.SortCues(s.closed)
	s.logger.Debugw("Closed cue", "op", op, "index", pos, "end", subtitle.FormatSRTTime(t))
	return pos, nil
}

// split divides closed cue k at t. A pending open cue is abandoned since the
// split clears the active mark.
func (s *Session) split(k int, t float64) MarkResult {
	if s.open != nil {
		s.logger.Infow("Discarding open cue on split",
			"start", subtitle.FormatSRTTime(s.open.start),
		)
		s.open = nil
	}

	orig := s.closed[k]
	left, right := splitText(orig.Text)

	s.closed[k].End = t
	s.closed[k].Text = left
	s.closed = slices.Insert(s.closed, k+1, subtitle.Cue{Start: t, End: orig.End, Text: right})
	subtitle.SortCues(s.closed)

	s.logger.Debugw("Split cue", "index", k, "at", subtitle.FormatSRTTime(t))
	return MarkResult{Action: MarkSplit, Index: k}
}
