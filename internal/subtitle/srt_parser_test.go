package subtitle

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSRTSingleCue(t *testing.T) {
	sub, err := ParseSRT("1\n00:00:01,000 --> 00:00:02,000\nHello\n\n")
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(sub.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(sub.Cues))
	}
	cue := sub.Cues[0]
	if cue.Start != 1 || cue.End != 2 || cue.Text != "Hello" {
		t.Errorf("unexpected cue: %+v", cue)
	}
	if cue.Index != 1 {
		t.Errorf("expected index 1, got %d", cue.Index)
	}
}

func TestParseSRTMultipleBlocks(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`
	sub, err := ParseSRT(content)
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(sub.Cues) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(sub.Cues))
	}

	expectedText := "This is a test.\nWith multiple lines."
	if sub.Cues[1].Text != expectedText {
		t.Errorf("cue 1: expected %q, got %q", expectedText, sub.Cues[1].Text)
	}
	if sub.Cues[1].Start != 5.5 || sub.Cues[1].End != 8.2 {
		t.Errorf("cue 1: unexpected times %v --> %v", sub.Cues[1].Start, sub.Cues[1].End)
	}
	if sub.Cues[2].Text != "Final subtitle." {
		t.Errorf("cue 2: expected 'Final subtitle.', got %q", sub.Cues[2].Text)
	}
	if len(sub.Skipped) != 0 {
		t.Errorf("expected no skipped blocks, got %v", sub.Skipped)
	}
}

func TestParseSRTSkipsInvertedIntervalAndContinues(t *testing.T) {
	content := `1
00:00:05,000 --> 00:00:04,000
Backwards

2
00:00:06,000 --> 00:00:06,000
Zero width

3
00:00:07,000 --> 00:00:08,000
Valid
`
	sub, err := ParseSRT(content)
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(sub.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(sub.Cues))
	}
	if sub.Cues[0].Text != "Valid" {
		t.Errorf("expected 'Valid', got %q", sub.Cues[0].Text)
	}
	if len(sub.Skipped) != 2 {
		t.Fatalf("expected 2 skipped blocks, got %d", len(sub.Skipped))
	}
	if sub.Skipped[0].Line != 2 || sub.Skipped[1].Line != 6 {
		t.Errorf("unexpected skipped lines: %d, %d", sub.Skipped[0].Line, sub.Skipped[1].Line)
	}
}

func TestParseSRTToleratesMissingIndex(t *testing.T) {
	content := "00:00:01,000 --> 00:00:02,000\nNo index\n\n2\n00:00:03,000 --> 00:00:04,000\nIndexed\n"
	sub, err := ParseSRT(content)
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(sub.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(sub.Cues))
	}
	if sub.Cues[0].Text != "No index" || sub.Cues[1].Text != "Indexed" {
		t.Errorf("unexpected texts: %q, %q", sub.Cues[0].Text, sub.Cues[1].Text)
	}
}

func TestParseSRTWhitespaceOnlyLineIsText(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\nfirst\n   \nsecond\n\n"
	sub, err := ParseSRT(content)
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(sub.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(sub.Cues))
	}
	if want := "first\n   \nsecond"; sub.Cues[0].Text != want {
		t.Errorf("expected %q, got %q", want, sub.Cues[0].Text)
	}
}

func TestParseSRTHandlesBOMAndCRLF(t *testing.T) {
	content := "\ufeff1\r\n00:00:01,000 --> 00:00:02,000\r\nHello\r\nWorld\r\n\r\n"
	sub, err := ParseSRT(content)
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(sub.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(sub.Cues))
	}
	if sub.Cues[0].Text != "Hello\nWorld" {
		t.Errorf("expected %q, got %q", "Hello\nWorld", sub.Cues[0].Text)
	}
}

func TestParseSRTSkipsJunkAndBadTimes(t *testing.T) {
	content := `garbage line
more garbage

1
00:00:aa,000 --> 00:00:02,000
Bad start

2
00:00:03 --> 00:00:04
No millis

3
00:00:05,000 -> 00:00:06,000
Wrong arrow
`
	sub, err := ParseSRT(content)
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(sub.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d: %+v", len(sub.Cues), sub.Cues)
	}
	if sub.Cues[0].Start != 3 || sub.Cues[0].End != 4 {
		t.Errorf("unexpected times: %v --> %v", sub.Cues[0].Start, sub.Cues[0].End)
	}
	if len(sub.Skipped) != 3 {
		t.Errorf("expected 3 skipped blocks, got %d", len(sub.Skipped))
	}
}

func TestParseSRTSkipsOutOfRangeTime(t *testing.T) {
	content := "1\n3000000000000000:00:00,000 --> 00:00:01,000\nhuge\n\n" +
		"2\n00:00:02,000 --> 00:00:03,000\nok\n"
	sub, err := ParseSRT(content)
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(sub.Cues) != 1 || sub.Cues[0].Text != "ok" {
		t.Fatalf("expected only the valid cue, got %+v", sub.Cues)
	}
	for _, cue := range sub.Cues {
		if cue.Start < 0 {
			t.Errorf("cue has negative start: %+v", cue)
		}
	}
	if len(sub.Skipped) != 1 || sub.Skipped[0].Line != 2 {
		t.Errorf("expected one skipped block at line 2, got %+v", sub.Skipped)
	}
}

func TestParseSRTRecoversIndexFollowedByBlankLine(t *testing.T) {
	sub, err := ParseSRT("1\n\n00:00:01,000 --> 00:00:02,000\nHi\n")
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(sub.Cues) != 1 || sub.Cues[0].Text != "Hi" {
		t.Fatalf("unexpected cues: %+v", sub.Cues)
	}
}

func TestParseSRTKeepsEmptyTextCue(t *testing.T) {
	sub, err := ParseSRT("1\n00:00:01,000 --> 00:00:02,000\n\n2\n00:00:03,000 --> 00:00:04,000\nB\n")
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(sub.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(sub.Cues))
	}
	if sub.Cues[0].Text != "" {
		t.Errorf("expected empty text, got %q", sub.Cues[0].Text)
	}
}

func TestParseSRTSortsByStart(t *testing.T) {
	content := "1\n00:00:05,000 --> 00:00:06,000\nLater\n\n2\n00:00:01,000 --> 00:00:02,000\nEarlier\n"
	sub, err := ParseSRT(content)
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if sub.Cues[0].Text != "Earlier" || sub.Cues[1].Text != "Later" {
		t.Errorf("cues not sorted: %+v", sub.Cues)
	}
	if sub.Cues[0].Index != 1 || sub.Cues[1].Index != 2 {
		t.Errorf("cues not renumbered: %+v", sub.Cues)
	}
}

func TestParseSRTEmptyInput(t *testing.T) {
	for _, content := range []string{"", "  \n\n"} {
		sub, err := ParseSRT(content)
		if err != nil {
			t.Fatalf("ParseSRT(%q) returned error: %v", content, err)
		}
		if len(sub.Cues) != 0 {
			t.Errorf("expected no cues, got %d", len(sub.Cues))
		}
	}
}

func TestParseSRTFailsWhenNothingValid(t *testing.T) {
	_, err := ParseSRT("1\n00:00:05,000 --> 00:00:01,000\nBackwards\n")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Errorf("expected line 2, got %d", perr.Line)
	}
}

func TestParseReader(t *testing.T) {
	sub, err := NewParser(nil).ParseReader(strings.NewReader("00:00:01,000 --> 00:00:02,000\nHi\n"))
	if err != nil {
		t.Fatalf("ParseReader returned error: %v", err)
	}
	if len(sub.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(sub.Cues))
	}
}
