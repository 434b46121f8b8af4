// Package share builds and reads shareable viewer links carrying a video
// URL, a subtitle URL, and a start time.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/mgpai22/srtkit/internal/loader"
	"github.com/mgpai22/srtkit/internal/subtitle"
)

const (
	paramVideo    = "yt"
	paramSubtitle = "srt"
	paramTime     = "t"
)

var (
	ErrNoVideo       = errors.New("video URL is required")
	ErrLocalSubtitle = errors.New("a local subtitle file cannot be shared; upload it and use its URL")
)

var videoIDPattern = regexp.MustCompile(
	`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`,
)

// VideoID extracts the 11 character YouTube video id from a watch, embed,
// or short URL.
func VideoID(videoURL string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(videoURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Link is the content of a shareable link. Start is an H:MM:SS (or MM:SS,
// SS) time, empty for none.
type Link struct {
	VideoURL    string
	SubtitleURL string
	Start       string
}

// StartSeconds returns Start in whole seconds.
func (l Link) StartSeconds() (int, bool) {
	start := strings.TrimSpace(l.Start)
	if start == "" {
		return 0, false
	}
	seconds, err := subtitle.ParseHMS(start)
	if err != nil {
		return 0, false
	}
	return seconds, true
}

// Build returns base with the link's parameters as its query.
func (l Link) Build(base string) (string, error) {
	videoURL := strings.TrimSpace(l.VideoURL)
	if videoURL == "" {
		return "", ErrNoVideo
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}

	q := url.Values{}
	q.Set(paramVideo, videoURL)
	if sub := strings.TrimSpace(l.SubtitleURL); sub != "" {
		if !loader.IsRemote(sub) {
			return "", ErrLocalSubtitle
		}
		q.Set(paramSubtitle, sub)
	}
	if start := strings.TrimSpace(l.Start); start != "" {
		seconds, err := subtitle.ParseHMS(start)
		if err != nil {
			return "", fmt.Errorf("invalid start time: %w", err)
		}
		q.Set(paramTime, strconv.Itoa(seconds))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Parse reads a shareable link. A t parameter that is not a non-negative
// integer is ignored.
func Parse(raw string) (Link, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Link{}, fmt.Errorf("invalid link: %w", err)
	}
	q := u.Query()
	link := Link{
		VideoURL:    q.Get(paramVideo),
		SubtitleURL: q.Get(paramSubtitle),
	}
	if t := q.Get(paramTime); t != "" {
		if seconds, err := strconv.Atoi(t); err == nil && seconds >= 0 {
			link.Start = subtitle.FormatHMS(float64(seconds))
		}
	}
	return link, nil
}
