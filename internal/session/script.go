package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mgpai22/srtkit/internal/subtitle"
)

// ScriptOptions controls RunScript.
type ScriptOptions struct {
	// Strict stops at the first rejected command.
	Strict bool
}

// ScriptIssue is a command that could not be applied.
type ScriptIssue struct {
	Line    int
	Command string
	Err     error
}

func (i ScriptIssue) Error() string {
	return fmt.Sprintf("script line %d (%s): %v", i.Line, i.Command, i.Err)
}

func (i ScriptIssue) Unwrap() error {
	return i.Err
}

// ScriptReport summarizes a script run.
type ScriptReport struct {
	Applied int
	Ignored int
	Issues  []ScriptIssue
}

var textUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n")

// RunScript applies an edit script to s. Each line holds one command:
//
//	mark TIME
//	start N TIME
//	end N TIME
//	text N TEXT
//	delete N
//
// N is the 1-based position of a cue at the time the line runs. TIME is SRT
// time, H:MM:SS style time, or decimal seconds. In TEXT a literal \n is a line
// break. Blank lines and lines starting with # are skipped.
//
// A rejected command is recorded in the report and the script continues,
// unless opts.Strict is set, in which case the issue is also returned as the
// error.
func RunScript(s *Session, r io.Reader, opts ScriptOptions) (*ScriptReport, error) {
	report := &ScriptReport{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		verb, _, _ := strings.Cut(line, " ")
		ignored, err := applyCommand(s, line)
		if err != nil {
			issue := ScriptIssue{Line: lineNum, Command: verb, Err: err}
			report.Issues = append(report.Issues, issue)
			s.logger.Warnw("Script command rejected",
				"line", lineNum,
				"command", verb,
				"error", err,
			)
			if opts.Strict {
				return report, issue
			}
			continue
		}
		if ignored {
			report.Ignored++
			continue
		}
		report.Applied++
	}

	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("error reading script: %w", err)
	}
	return report, nil
}

func applyCommand(s *Session, line string) (bool, error) {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "mark":
		t, err := subtitle.ParseFlexibleTime(rest)
		if err != nil {
			return false, err
		}
		result, err := s.Mark(t)
		if err != nil {
			return false, err
		}
		return result.Action == MarkIgnored, nil

	case "start", "end":
		idxStr, timeStr, ok := strings.Cut(rest, " ")
		if !ok {
			return false, errors.New("expected cue number and time")
		}
		i, err := parseCueNumber(idxStr)
		if err != nil {
			return false, err
		}
		t, err := subtitle.ParseFlexibleTime(timeStr)
		if err != nil {
			return false, err
		}
		if strings.EqualFold(verb, "start") {
			return false, s.SetStart(i, t)
		}
		return false, s.SetEnd(i, t)

	case "text":
		idxStr, text, _ := strings.Cut(rest, " ")
		i, err := parseCueNumber(idxStr)
		if err != nil {
			return false, err
		}
		return false, s.SetText(i, textUnescaper.Replace(text))

	case "delete":
		i, err := parseCueNumber(rest)
		if err != nil {
			return false, err
		}
		return false, s.Delete(i)

	default:
		return false, fmt.Errorf("unknown command %q", verb)
	}
}

func parseCueNumber(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid cue number %q", value)
	}
	return n - 1, nil
}
