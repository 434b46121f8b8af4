package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	logger, err := New(Options{Verbose: true, Level: "error", Format: "json"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be enabled in verbose mode")
	}
}

func TestNopWithKeepsWorking(t *testing.T) {
	logger := Nop().With("session_id", "abc")
	logger.Infow("discarded", "k", 1)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		verbose bool
		debug   bool
	}{
		{verbose: false, debug: false},
		{verbose: true, debug: true},
	}

	for _, tt := range tests {
		core := NewLogger(tt.verbose).Desugar().Core()
		if !core.Enabled(zapcore.InfoLevel) {
			t.Errorf("verbose=%v: expected info to be enabled", tt.verbose)
		}
		if got := core.Enabled(zapcore.DebugLevel); got != tt.debug {
			t.Errorf("verbose=%v: debug enabled = %v, want %v", tt.verbose, got, tt.debug)
		}
	}
}
