package subtitle

import (
	"errors"
	"fmt"
)

// ErrEmptySequence is returned when there is nothing eligible to serialize.
var ErrEmptySequence = errors.New("no complete cues to export")

// FormatError reports a malformed time token.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: %s", e.Input, e.Reason)
}

// ParseError reports malformed SRT structure. Line is 1-based; zero means
// the location is unknown.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("srt line %d: %s", e.Line, e.Reason)
	}
	return "srt: " + e.Reason
}
