package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mgpai22/srtkit/internal/subtitle"
)

const probeOutput = `{
  "streams": [
    {"index": 0, "codec_type": "video", "duration": "61.500000"},
    {"index": 1, "codec_type": "audio", "duration": "61.480000"}
  ],
  "format": {"filename": "clip.mp4", "duration": "61.520000"}
}`

func TestParseProbe(t *testing.T) {
	tests := []struct {
		name     string
		out      string
		duration float64
		video    bool
		audio    bool
		wantErr  bool
	}{
		{name: "format duration", out: probeOutput, duration: 61.52, video: true, audio: true},
		{
			name:     "stream fallback",
			out:      `{"streams":[{"codec_type":"audio","duration":"12.0"},{"codec_type":"audio","duration":"14.5"}],"format":{}}`,
			duration: 14.5,
			audio:    true,
		},
		{name: "no duration", out: `{"streams":[],"format":{}}`, wantErr: true},
		{name: "invalid json", out: `not json`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseProbe(tt.out)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProbe failed: %v", err)
			}
			if info.Duration != tt.duration || info.HasVideo != tt.video || info.HasAudio != tt.audio {
				t.Errorf("ParseProbe = %+v", info)
			}
		})
	}
}

func TestProbeUsesFFprobe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	origProbe, origLook := probeFunc, lookPath
	t.Cleanup(func() { probeFunc, lookPath = origProbe, origLook })

	lookPath = func(string) (string, error) { return "/usr/bin/ffprobe", nil }
	var gotTimeout time.Duration
	probeFunc = func(p string, timeout time.Duration) (string, error) {
		gotTimeout = timeout
		return probeOutput, nil
	}

	info, err := Probe(path, 0)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.Path != path || info.Duration != 61.52 {
		t.Errorf("Probe = %+v", info)
	}
	if gotTimeout != DefaultProbeTimeout {
		t.Errorf("timeout = %s, want %s", gotTimeout, DefaultProbeTimeout)
	}

	lookPath = func(string) (string, error) { return "", errors.New("missing") }
	if _, err := Probe(path, time.Second); !errors.Is(err, ErrFFprobeNotFound) {
		t.Errorf("expected ErrFFprobeNotFound, got %v", err)
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := Probe(filepath.Join(t.TempDir(), "nope.mp4"), time.Second); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCuesPastEnd(t *testing.T) {
	cues := []subtitle.Cue{
		{Index: 1, Start: 0, End: 10},
		{Index: 2, Start: 58, End: 60},
		{Index: 3, Start: 60, End: 62},
	}
	past := CuesPastEnd(cues, 60)
	if len(past) != 1 || past[0].Index != 3 {
		t.Errorf("CuesPastEnd = %+v", past)
	}
}
