package subtitle

import (
	"fmt"
	"io"
	"strings"

	"github.com/mgpai22/srtkit/internal/logging"
)

const timeSeparator = " --> "

// Parser reads SRT text into cues. Malformed blocks are skipped and logged;
// the remaining blocks are still returned.
//
// A block may omit its index line when its first line is the time line.
// A whitespace-only line inside a block is text, only a truly empty line ends
// the block.
type Parser struct {
	logger *logging.Logger
}

func NewParser(logger *logging.Logger) *Parser {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Parser{logger: logger}
}

// ParseSRT parses content with a parser that discards warnings.
func ParseSRT(content string) (*Subtitle, error) {
	return NewParser(nil).Parse(content)
}

// ParseReader reads r fully and parses it.
func (p *Parser) ParseReader(r io.Reader) (*Subtitle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading SRT: %w", err)
	}
	return p.Parse(string(data))
}

// Parse returns the cues of content sorted by start time and numbered from 1.
// Empty input yields an empty subtitle; non-empty input without a single
// valid cue is a *ParseError.
func (p *Parser) Parse(content string) (*Subtitle, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	sub := p.scan(strings.Split(content, "\n"))

	if len(sub.Cues) == 0 && strings.TrimSpace(content) != "" {
		perr := &ParseError{Reason: "content is not empty but no valid cues were found"}
		if len(sub.Skipped) > 0 {
			perr.Line = sub.Skipped[0].Line
		}
		return nil, perr
	}

	SortCues(sub.Cues)
	Renumber(sub.Cues)
	return sub, nil
}

func (p *Parser) scan(lines []string) *Subtitle {
	sub := &Subtitle{Cues: []Cue{}}

	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			i++
			continue
		}

		if isIndexLine(trimmed) {
			i++
		} else if !strings.Contains(trimmed, "-->") {
			sub.Skipped = append(sub.Skipped, p.reject(i+1, fmt.Sprintf("expected index or time line, got %q", trimmed)))
			i = skipJunk(lines, i+1)
			continue
		}

		if i >= len(lines) {
			sub.Skipped = append(sub.Skipped, p.reject(i, "missing time line after index"))
			break
		}

		timeLineNum := i + 1
		start, end, err := parseTimeLine(lines[i])
		if err != nil {
			sub.Skipped = append(sub.Skipped, p.reject(timeLineNum, err.Error()))
			i = skipBlock(lines, i)
			continue
		}
		if start >= end {
			sub.Skipped = append(sub.Skipped, p.reject(
				timeLineNum,
				fmt.Sprintf("start %s is not before end %s", FormatSRTTime(start), FormatSRTTime(end)),
			))
			i = skipBlock(lines, i)
			continue
		}
		i++

		var textLines []string
		for i < len(lines) && lines[i] != "" {
			textLines = append(textLines, lines[i])
			i++
		}

		sub.Cues = append(sub.Cues, Cue{
			Start: start,
			End:   end,
			Text:  strings.Join(textLines, "\n"),
		})
	}

	return sub
}

func (p *Parser) reject(line int, reason string) *ParseError {
	perr := &ParseError{Line: line, Reason: reason}
	p.logger.Warnw("Skipping invalid SRT block",
		"line", line,
		"reason", reason,
	)
	return perr
}

func parseTimeLine(line string) (float64, float64, error) {
	parts := strings.Split(strings.TrimSpace(line), timeSeparator)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected time line %q, got %q", "START --> END", strings.TrimSpace(line))
	}
	start, err := ParseSRTTime(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start timestamp: %w", err)
	}
	end, err := ParseSRTTime(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end timestamp: %w", err)
	}
	return start, end, nil
}

func isIndexLine(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// skipBlock advances to the next blank line.
func skipBlock(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		i++
	}
	return i
}

// skipJunk advances to the next blank line or the next index-looking line.
func skipJunk(lines []string, i int) int {
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || isIndexLine(trimmed) {
			break
		}
		i++
	}
	return i
}
