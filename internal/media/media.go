// Package media probes video files for the information subtitle editing
// needs, currently the playable duration.
package media

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/mgpai22/srtkit/internal/subtitle"
)

const DefaultProbeTimeout = 20 * time.Second

var ErrFFprobeNotFound = errors.New("ffprobe not found in PATH")

// probeFunc runs ffprobe and returns its JSON output.
var probeFunc = func(path string, timeout time.Duration) (string, error) {
	return ffmpeg.ProbeWithTimeout(path, timeout, ffmpeg.KwArgs{})
}

var lookPath = exec.LookPath

// Info is what Probe learns about a media file.
type Info struct {
	Path     string
	Duration float64
	HasVideo bool
	HasAudio bool
}

// Probe runs ffprobe on path.
func Probe(path string, timeout time.Duration) (*Info, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("media file not found: %w", err)
	}
	if _, err := lookPath("ffprobe"); err != nil {
		return nil, ErrFFprobeNotFound
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	out, err := probeFunc(path, timeout)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}
	info, err := ParseProbe(out)
	if err != nil {
		return nil, err
	}
	info.Path = path
	return info, nil
}

// ParseProbe reads ffprobe JSON output. The container duration is
// preferred, falling back to the longest stream.
func ParseProbe(out string) (*Info, error) {
	if !gjson.Valid(out) {
		return nil, errors.New("ffprobe output is not valid JSON")
	}

	info := &Info{Duration: gjson.Get(out, "format.duration").Float()}
	longest := 0.0
	for _, stream := range gjson.Get(out, "streams").Array() {
		switch stream.Get("codec_type").String() {
		case "video":
			info.HasVideo = true
		case "audio":
			info.HasAudio = true
		}
		longest = max(longest, stream.Get("duration").Float())
	}
	if info.Duration <= 0 {
		info.Duration = longest
	}

	if info.Duration <= 0 {
		return nil, errors.New("ffprobe reported no duration")
	}
	return info, nil
}

// CuesPastEnd returns the cues that end after duration.
func CuesPastEnd(cues []subtitle.Cue, duration float64) []subtitle.Cue {
	var past []subtitle.Cue
	for _, c := range cues {
		if c.End > duration {
			past = append(past, c)
		}
	}
	return past
}
