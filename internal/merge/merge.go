package merge

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mgpai22/srtkit/internal/subtitle"
)

const (
	mergedSuffix    = "_merged"
	DefaultFilename = "merged.srt"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// Result is the outcome of pairing text lines with cues.
type Result struct {
	Cues      []subtitle.Cue
	Paired    int
	CueCount  int
	LineCount int
	// Mismatch is set when the cue and line counts differ. Only the
	// overlapping prefix was paired.
	Mismatch bool
}

// SplitLines splits text content into lines on LF or CRLF. Blank lines are
// kept, so a trailing newline yields a final empty line.
func SplitLines(content string) []string {
	return lineBreak.Split(content, -1)
}

// Merge pairs lines with cues by position and returns new cues whose text
// has each non-blank line appended. The input cues are not modified.
func Merge(cues []subtitle.Cue, lines []string) Result {
	paired := min(len(cues), len(lines))
	merged := make([]subtitle.Cue, len(cues))
	for i, cue := range cues {
		if i < paired {
			cue.Text = Text(cue.Text, lines[i])
		}
		merged[i] = cue
	}
	return Result{
		Cues:      merged,
		Paired:    paired,
		CueCount:  len(cues),
		LineCount: len(lines),
		Mismatch:  len(cues) != len(lines),
	}
}

// Text merges one line into a cue's text. A blank line leaves the text
// alone and blank text is replaced outright.
func Text(original, line string) string {
	if strings.TrimSpace(line) == "" {
		return original
	}
	if strings.TrimSpace(original) == "" {
		return line
	}
	return original + "\n" + line
}

// MergedFilename derives the download name for a merged file:
// "movie.srt" becomes "movie_merged.srt".
func MergedFilename(name string) string {
	return FilenameWithSuffix(name, mergedSuffix, DefaultFilename)
}

// FilenameWithSuffix inserts suffix before a trailing .srt extension (any
// case), appending one when missing. An empty name yields fallback.
func FilenameWithSuffix(name, suffix, fallback string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return fallback
	}
	ext := filepath.Ext(base)
	if strings.EqualFold(ext, ".srt") {
		return strings.TrimSuffix(base, ext) + suffix + ".srt"
	}
	return base + suffix + ".srt"
}
