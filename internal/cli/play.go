package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mgpai22/srtkit/internal/session"
	"github.com/mgpai22/srtkit/internal/subtitle"
)

// playTail keeps polling briefly after the last cue ends so its clearing is
// shown.
const playTail = 0.5

var playCmd = &cobra.Command{
	Use:   "play [srt_file_or_url]",
	Short: "Print cues in real time as they become active",
	Long: `Follow a clock from --from and print each cue when it becomes active,
the way a player overlay would. Caption blocks are padded to the tallest cue
so the output keeps a steady height.

When stdin is a terminal (or with --controls) lines typed while playing
control the clock:

  f / b      seek forward / back by playback.seek_step_seconds
  p          pause or resume
  g N        seek to the start of cue N
  e N        seek to the end of cue N

Stops after the last cue ends, or on Ctrl+C.

Examples:
  srtkit play movie.srt
  srtkit play movie.srt --from 0:12:00`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().String("from", "0", "Start position (seconds, H:MM:SS, or SRT time)")
	playCmd.Flags().Bool("controls", false, "Read playback controls from stdin even when it is not a terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	fromStr, _ := cmd.Flags().GetString("from")
	controls, _ := cmd.Flags().GetBool("controls")
	from, err := subtitle.ParseFlexibleTime(fromStr)
	if err != nil {
		return fmt.Errorf("invalid --from time: %w", err)
	}

	sub, err := loadSubtitle(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	s := session.New(session.Options{Logger: logger})
	s.Load(sub.Cues)

	if len(sub.Cues) == 0 {
		return errors.New("no cues to play")
	}
	last := lastCueEnd(sub.Cues)
	if from >= last {
		return fmt.Errorf("start %s is after the last cue ends at %s",
			subtitle.FormatSRTTime(from), subtitle.FormatSRTTime(last))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	clock := session.NewClock(from)
	if controls || stdinIsTerminal() {
		go readControls(cmd.InOrStdin(), clock, s, cfg.Playback.SeekStepSeconds)
	}

	logger.Infow("Playing",
		"source", args[0],
		"from", subtitle.FormatHMS(from),
		"cues", s.Len(),
	)

	src := &stopAtEnd{src: clock, end: last + playTail, cancel: cancel}
	maxLines := s.MaxLines()
	err = s.Poll(ctx, src, cfg.PollInterval(), func(h session.Highlight) {
		printHighlight(cmd.OutOrStdout(), h, maxLines)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// stopAtEnd cancels playback once the position passes end.
type stopAtEnd struct {
	src    session.PositionSource
	end    float64
	cancel context.CancelFunc
}

func (p *stopAtEnd) CurrentTime() float64 {
	t := p.src.CurrentTime()
	if t >= p.end {
		p.cancel()
	}
	return t
}

func printHighlight(out io.Writer, h session.Highlight, lines int) {
	label := "-"
	text := ""
	if h.Active {
		label = fmt.Sprintf("#%d", h.Entry.Index+1)
		text = h.Entry.Text
	}
	fmt.Fprintf(out, "[%s] %s\n%s\n", subtitle.FormatSRTTime(h.Time), label, subtitle.PadLines(text, lines))
}

// readControls applies control lines from r to clock until r is exhausted.
func readControls(r io.Reader, clock *session.Clock, s *session.Session, step float64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := applyControl(strings.TrimSpace(scanner.Text()), clock, s, step); err != nil {
			logger.Warnw("Ignoring playback control", "error", err)
		}
	}
}

func applyControl(line string, clock *session.Clock, s *session.Session, step float64) error {
	verb, arg, _ := strings.Cut(line, " ")
	switch verb {
	case "":
		return nil
	case "f":
		clock.SeekTo(session.Nudge(clock.CurrentTime(), step))
	case "b":
		clock.SeekTo(session.Nudge(clock.CurrentTime(), -step))
	case "p":
		if clock.Paused() {
			clock.Play()
		} else {
			clock.Pause()
		}
	case "g", "e":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("invalid cue number %q", arg)
		}
		edge := session.EdgeStart
		if verb == "e" {
			edge = session.EdgeEnd
		}
		target, err := s.SeekTarget(n-1, edge)
		if err != nil {
			return err
		}
		clock.SeekTo(target)
	default:
		return fmt.Errorf("unknown control %q", verb)
	}
	return nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// lastCueEnd is the latest end among cues. Cues are sorted by start, so the
// last one is not always the last to end.
func lastCueEnd(cues []subtitle.Cue) float64 {
	var last float64
	for _, c := range cues {
		last = max(last, c.End)
	}
	return last
}
