package session

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mgpai22/srtkit/internal/logging"
	"github.com/mgpai22/srtkit/internal/subtitle"
)

// Entry is one row of the session view. End is zero while Open is true.
type Entry struct {
	Index int
	Start float64
	End   float64
	Text  string
	Open  bool
}

// Cue converts a closed entry back into a subtitle cue.
func (e Entry) Cue() subtitle.Cue {
	return subtitle.Cue{Index: e.Index + 1, Start: e.Start, End: e.End, Text: e.Text}
}

type openCue struct {
	start float64
	text  string
}

// Options configures a new Session.
type Options struct {
	Logger *logging.Logger
}

// Session is the authoritative in-memory cue sequence of one editing session.
type Session struct {
	id     string
	logger *logging.Logger
	closed []subtitle.Cue
	open   *openCue
}

func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		logger: logger.With("session_id", id),
		closed: []subtitle.Cue{},
	}
}

func (s *Session) ID() string {
	return s.id
}

// Load replaces the whole sequence with a sorted copy of cues and clears the
// active mark.
func (s *Session) Load(cues []subtitle.Cue) {
	s.closed = slices.Clone(cues)
	if s.closed == nil {
		s.closed = []subtitle.Cue{}
	}
	subtitle.SortCues(s.closed)
	s.open = nil
	s.logger.Debugw("Loaded cues", "count", len(s.closed))
}

// Reset empties the session, as when a new video is loaded.
func (s *Session) Reset() {
	s.closed = []subtitle.Cue{}
	s.open = nil
}

// Len returns the number of entries including the open cue.
func (s *Session) Len() int {
	if s.open != nil {
		return len(s.closed) + 1
	}
	return len(s.closed)
}

// ActiveIndex returns the position of the open cue, or -1.
func (s *Session) ActiveIndex() int {
	return s.openPos()
}

// Entries returns a snapshot of the sequence in display order.
func (s *Session) Entries() []Entry {
	entries := make([]Entry, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		entry, _ := s.Entry(i)
		entries = append(entries, entry)
	}
	return entries
}

// Entry returns the entry at position i.
func (s *Session) Entry(i int) (Entry, bool) {
	k, isOpen, ok := s.resolve(i)
	if !ok {
		return Entry{}, false
	}
	if isOpen {
		return Entry{Index: i, Start: s.open.start, Text: s.open.text, Open: true}, true
	}
	c := s.closed[k]
	return Entry{Index: i, Start: c.Start, End: c.End, Text: c.Text}, true
}

// Closed returns a numbered copy of the closed cues.
func (s *Session) Closed() []subtitle.Cue {
	cues := slices.Clone(s.closed)
	subtitle.Renumber(cues)
	return cues
}

// Export serializes the closed cues. The open cue is never exported.
func (s *Session) Export() ([]byte, error) {
	return subtitle.MarshalSRT(s.Closed())
}

// MaxLines returns the tallest cue in lines, 2 when the session is empty.
func (s *Session) MaxLines() int {
	return subtitle.MaxLines(s.closed, 2)
}

// SetStart moves the start of entry i. A closed cue must keep start < end and
// must not overlap another cue.
func (s *Session) SetStart(i int, value float64) error {
	k, isOpen, ok := s.resolve(i)
	if !ok {
		return s.reject("set start", i, "no such cue")
	}
	if !validTime(value) {
		return s.reject("set start", i, fmt.Sprintf("invalid time %v", value))
	}
	if isOpen {
		s.open.start = value
		return nil
	}

	c := s.closed[k]
	if value >= c.End {
		return s.reject("set start", i, fmt.Sprintf(
			"start %s must be before end %s",
			subtitle.FormatSRTTime(value), subtitle.FormatSRTTime(c.End),
		))
	}
	if j := s.overlapping(value, c.End, k); j >= 0 {
		return s.reject("set start", i, fmt.Sprintf("would overlap cue %d", s.viewPos(j)+1))
	}
	s.closed[k].Start = value
	subtitle.SortCues(s.closed)
	return nil
}

// SetEnd moves the end of entry i. Setting the end of the open cue closes it,
// which clears the active mark.
func (s *Session) SetEnd(i int, value float64) error {
	k, isOpen, ok := s.resolve(i)
	if !ok {
		return s.reject("set end", i, "no such cue")
	}
	if !validTime(value) {
		return s.reject("set end", i, fmt.Sprintf("invalid time %v", value))
	}
	if isOpen {
		_, err := s.closeOpen("set end", value)
		return err
	}

	c := s.closed[k]
	if value <= c.Start {
		return s.reject("set end", i, fmt.Sprintf(
			"end %s must be after start %s",
			subtitle.FormatSRTTime(value), subtitle.FormatSRTTime(c.Start),
		))
	}
	if j := s.overlapping(c.Start, value, k); j >= 0 {
		return s.reject("set end", i, fmt.Sprintf("would overlap cue %d", s.viewPos(j)+1))
	}
	s.closed[k].End = value
	return nil
}

// SetText replaces the text of entry i.
func (s *Session) SetText(i int, text string) error {
	k, isOpen, ok := s.resolve(i)
	if !ok {
		return s.reject("set text", i, "no such cue")
	}
	if isOpen {
		s.open.text = text
		return nil
	}
	s.closed[k].Text = text
	return nil
}

// Delete removes entry i. Deleting the open cue clears the active mark.
func (s *Session) Delete(i int) error {
	k, isOpen, ok := s.resolve(i)
	if !ok {
		return s.reject("delete", i, "no such cue")
	}
	if isOpen {
		s.open = nil
		return nil
	}
	s.closed = slices.Delete(s.closed, k, k+1)
	return nil
}

// ActiveCueAt returns the first entry, in display order, whose closed
// interval contains t, or the open cue when it started at or before t.
func (s *Session) ActiveCueAt(t float64) (Entry, bool) {
	for i := 0; i < s.Len(); i++ {
		entry, _ := s.Entry(i)
		if entry.Open {
			if entry.Start <= t {
				return entry, true
			}
			continue
		}
		if entry.Cue().Contains(t) {
			return entry, true
		}
	}
	return Entry{}, false
}

// resolve maps a view position to an index into closed, or reports the open
// cue.
func (s *Session) resolve(i int) (int, bool, bool) {
	if i < 0 || i >= s.Len() {
		return 0, false, false
	}
	pos := s.openPos()
	switch {
	case pos < 0 || i < pos:
		return i, false, true
	case i == pos:
		return 0, true, true
	default:
		return i - 1, false, true
	}
}

// openPos is the view position of the open cue. It sorts after closed cues
// that start at or before it.
func (s *Session) openPos() int {
	if s.open == nil {
		return -1
	}
	n := 0
	for _, c := range s.closed {
		if c.Start > s.open.start {
			break
		}
		n++
	}
	return n
}

// viewPos maps an index into closed to a view position.
func (s *Session) viewPos(k int) int {
	if pos := s.openPos(); pos >= 0 && k >= pos {
		return k + 1
	}
	return k
}

// overlapping returns the index of a closed cue other than skip that
// intersects [start, end), or -1.
func (s *Session) overlapping(start, end float64, skip int) int {
	for j, c := range s.closed {
		if j == skip {
			continue
		}
		if start < c.End && c.Start < end {
			return j
		}
	}
	return -1
}

func (s *Session) reject(op string, i int, reason string) error {
	s.logger.Debugw("Rejected edit",
		"op", op,
		"index", i,
		"reason", reason,
	)
	return &ValidationError{Op: op, Index: i, Reason: reason}
}

func validTime(t float64) bool {
	return t >= 0 && !math.IsNaN(t) && !math.IsInf(t, 0)
}

// splitText divides text at its midpoint by character count. It is a starting
// point for the user to edit, not a semantic split.
func splitText(text string) (string, string) {
	runes := []rune(text)
	mid := len(runes) / 2
	return strings.TrimSpace(string(runes[:mid])), strings.TrimSpace(string(runes[mid:]))
}
