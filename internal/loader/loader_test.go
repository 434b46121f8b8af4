package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/text/encoding/unicode"
)

const sample = "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n"

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(sample)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	tests := []struct {
		name    string
		content string
	}{
		{name: "plain", content: sample},
		{name: "utf8 bom", content: "\ufeff" + sample},
		{name: "utf16 bom", content: utf16},
	}

	l := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".srt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := l.Load(context.Background(), path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got != sample {
				t.Errorf("Load = %q, want %q", got, sample)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.srt")
	_, err := New(Options{}).Load(context.Background(), path)

	var lerr *LoaderError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoaderError, got %v", err)
	}
	if lerr.Source != path {
		t.Errorf("Source = %q, want %q", lerr.Source, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped fs.ErrNotExist, got %v", err)
	}
}

func TestLoadURL(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		if r.URL.Path == "/missing.srt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	l := New(Options{UserAgent: "srtkit-test", Timeout: 5 * time.Second})

	got, err := l.Load(context.Background(), srv.URL+"/subs.srt")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != sample {
		t.Errorf("Load = %q, want %q", got, sample)
	}
	if gotAgent != "srtkit-test" {
		t.Errorf("User-Agent = %q", gotAgent)
	}

	_, err = l.Load(context.Background(), srv.URL+"/missing.srt")
	var lerr *LoaderError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoaderError for 404, got %v", err)
	}
}

func TestLoadURLCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(Options{}).Load(ctx, srv.URL)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestIsRemote(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/a.srt": true,
		"HTTP://example.com/a.srt":  true,
		"./subs/a.srt":              false,
		"ftp://example.com/a.srt":   false,
	}
	for source, want := range tests {
		if got := IsRemote(source); got != want {
			t.Errorf("IsRemote(%q) = %v, want %v", source, got, want)
		}
	}
}
