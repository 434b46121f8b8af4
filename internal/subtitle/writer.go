package subtitle

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MarshalSRT renders cues as SRT. Indices are regenerated from 1 in slice
// order regardless of Cue.Index, and CRLF in text is normalized to LF.
func MarshalSRT(cues []Cue) ([]byte, error) {
	if len(cues) == 0 {
		return nil, ErrEmptySequence
	}

	var buf bytes.Buffer
	for i, cue := range cues {
		// index (1-based)
		fmt.Fprintf(&buf, "%d\n", i+1)

		// timestamps: 00:00:00,000 --> 00:00:00,000
		buf.WriteString(FormatSRTTime(cue.Start))
		buf.WriteString(timeSeparator)
		buf.WriteString(FormatSRTTime(cue.End))
		buf.WriteString("\n")

		buf.WriteString(strings.ReplaceAll(cue.Text, "\r\n", "\n"))
		buf.WriteString("\n\n")
	}
	return buf.Bytes(), nil
}

// WriteSRT writes the SRT rendering of cues to w.
func WriteSRT(w io.Writer, cues []Cue) error {
	data, err := MarshalSRT(cues)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// SRTWriter writes subtitles to files.
type SRTWriter struct{}

// writes the subtitle to an SRT file, creating parent directories
func (w *SRTWriter) Write(sub *Subtitle, path string) error {
	data, err := MarshalSRT(sub.Cues)
	if err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
