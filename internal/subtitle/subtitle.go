package subtitle

import (
	"cmp"
	"slices"
	"strings"
)

// Cue is a single closed subtitle entry. Start and End are in seconds and
// End is always greater than Start.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Contains reports whether t falls inside the half-open interval [Start, End).
func (c Cue) Contains(t float64) bool {
	return t >= c.Start && t < c.End
}

// LineCount returns the number of text lines, counting an empty text as one.
func (c Cue) LineCount() int {
	return strings.Count(c.Text, "\n") + 1
}

// represents a parsed SRT document
type Subtitle struct {
	Cues []Cue
	// blocks that were rejected during parsing, in input order
	Skipped []*ParseError
}

// SortCues orders cues by start time. The sort is stable so cues sharing a
// start keep their relative order.
func SortCues(cues []Cue) {
	slices.SortStableFunc(cues, func(a, b Cue) int {
		return cmp.Compare(a.Start, b.Start)
	})
}

// Renumber assigns 1-based indices in slice order.
func Renumber(cues []Cue) {
	for i := range cues {
		cues[i].Index = i + 1
	}
}

// MaxLines returns the largest line count among cues, or fallback when there
// are none.
func MaxLines(cues []Cue, fallback int) int {
	if len(cues) == 0 {
		return fallback
	}
	maxLines := 1
	for _, cue := range cues {
		if n := cue.LineCount(); n > maxLines {
			maxLines = n
		}
	}
	return maxLines
}

// PadLines appends blank lines to text until it spans at least n lines.
func PadLines(text string, n int) string {
	missing := n - (strings.Count(text, "\n") + 1)
	if missing <= 0 {
		return text
	}
	return text + strings.Repeat("\n", missing)
}
