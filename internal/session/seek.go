package session

// Edge selects which end of a cue to seek to.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// SeekTarget returns the position a player should seek to for entry i. An
// open cue has no end to seek to.
func (s *Session) SeekTarget(i int, edge Edge) (float64, error) {
	entry, ok := s.Entry(i)
	if !ok {
		return 0, &ValidationError{Op: "seek", Index: i, Reason: "no such cue"}
	}
	if edge == EdgeEnd {
		if entry.Open {
			return 0, &ValidationError{Op: "seek", Index: i, Reason: "cue has no end yet"}
		}
		return entry.End, nil
	}
	return entry.Start, nil
}
