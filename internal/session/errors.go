package session

import "fmt"

// ValidationError reports a rejected mutation. Index is the 0-based entry
// position, or -1 when the operation is not tied to an entry.
type ValidationError struct {
	Op     string
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s cue %d: %s", e.Op, e.Index+1, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
