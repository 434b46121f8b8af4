// Package loader fetches subtitle and text content from local files or
// http(s) URLs and decodes it to UTF-8.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/mgpai22/srtkit/internal/logging"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "srtkit"

	// maxContentBytes caps how much of a source is read.
	maxContentBytes = 32 << 20
)

// LoaderError wraps any failure to obtain content from a source. The
// underlying error is passed through unchanged.
type LoaderError struct {
	Source string
	Err    error
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

func (e *LoaderError) Unwrap() error {
	return e.Err
}

// Options configures a Loader. Zero values select defaults.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client
	Logger    *logging.Logger
}

type Loader struct {
	client    *http.Client
	userAgent string
	logger    *logging.Logger
}

func New(opts Options) *Loader {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:    4,
				IdleConnTimeout: 90 * time.Second,
			},
		}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Loader{client: client, userAgent: userAgent, logger: logger}
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Load returns the decoded text of source, a file path or an http(s) URL.
// A byte order mark selects UTF-8 or UTF-16 and is removed; content without
// one is read as UTF-8.
func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	var (
		text string
		err  error
	)
	if IsRemote(source) {
		text, err = l.fetch(ctx, source)
	} else {
		text, err = readFile(source)
	}
	if err != nil {
		return "", &LoaderError{Source: source, Err: err}
	}
	l.logger.Debugw("Loaded source", "source", source, "bytes", len(text))
	return text, nil
}

func (l *Loader) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	return decode(resp.Body)
}

func readFile(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	return decode(f)
}

func decode(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxContentBytes+1))
	if err != nil {
		return "", err
	}
	if len(raw) > maxContentBytes {
		return "", fmt.Errorf("content exceeds %d bytes", maxContentBytes)
	}
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}
	return string(decoded), nil
}
