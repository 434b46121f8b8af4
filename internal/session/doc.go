// Package session owns the cue sequence being edited interactively.
//
// A Session holds closed cues sorted by start time plus at most one open cue,
// the cue currently being timed. The open cue has no end and is not part of an
// export until a later mark closes it. Operations that would break the
// sequence invariants are rejected with a *ValidationError and leave the
// session unchanged.
//
// A Session is not safe for concurrent use. Poll runs on the caller's
// goroutine so a single owner can drive playback highlighting and edits.
package session
