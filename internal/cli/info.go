package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtkit/internal/media"
	"github.com/mgpai22/srtkit/internal/session"
	"github.com/mgpai22/srtkit/internal/subtitle"
)

const previewWidth = 48

var infoCmd = &cobra.Command{
	Use:   "info [srt_file_or_url]",
	Short: "Show the cues of an SRT file",
	Long: `Print a table of the cues in an SRT file.

With --media the video's duration is probed with ffprobe and cues that run
past the end of the video are reported. With --at the cue active at that
time is shown.

Examples:
  srtkit info movie.srt
  srtkit info movie.srt --media movie.mp4
  srtkit info movie.srt --at 0:12:30`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().String("media", "", "Video file to check cue times against")
	infoCmd.Flags().String("at", "", "Show the cue active at this time (seconds, H:MM:SS, or SRT time)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	mediaPath, _ := cmd.Flags().GetString("media")
	at, _ := cmd.Flags().GetString("at")
	out := cmd.OutOrStdout()

	sub, err := loadSubtitle(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderCueTable(sub.Cues))
	fmt.Fprintf(out, "%d cues", len(sub.Cues))
	if len(sub.Cues) > 0 {
		last := sub.Cues[len(sub.Cues)-1]
		fmt.Fprintf(out, ", last ends at %s", subtitle.FormatSRTTime(last.End))
	}
	if len(sub.Skipped) > 0 {
		fmt.Fprintf(out, ", %d blocks skipped", len(sub.Skipped))
	}
	fmt.Fprintln(out)

	if mediaPath != "" {
		if err := reportMediaBounds(out, mediaPath, sub.Cues); err != nil {
			return err
		}
	}

	if at != "" {
		t, err := subtitle.ParseFlexibleTime(at)
		if err != nil {
			return fmt.Errorf("invalid --at time: %w", err)
		}
		s := session.New(session.Options{Logger: logger})
		s.Load(sub.Cues)
		if entry, ok := s.ActiveCueAt(t); ok {
			fmt.Fprintf(out, "Active at %s: cue %d\n%s\n",
				subtitle.FormatSRTTime(t), entry.Index+1, entry.Text)
		} else {
			fmt.Fprintf(out, "No cue active at %s\n", subtitle.FormatSRTTime(t))
		}
	}
	return nil
}

func renderCueTable(cues []subtitle.Cue) string {
	rows := make([][]string, 0, len(cues))
	for i, c := range cues {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			subtitle.FormatSRTTime(c.Start),
			subtitle.FormatSRTTime(c.End),
			strconv.FormatFloat(c.End-c.Start, 'f', 3, 64),
			strconv.Itoa(c.LineCount()),
			preview(c.Text),
		})
	}
	return renderTable(
		[]string{"#", "Start", "End", "Seconds", "Lines", "Text"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	)
}

// preview flattens text to one line and truncates it for table display.
func preview(text string) string {
	flat := strings.Join(strings.Fields(text), " ")
	runes := []rune(flat)
	if len(runes) <= previewWidth {
		return flat
	}
	return string(runes[:previewWidth-1]) + "…"
}

func reportMediaBounds(out io.Writer, mediaPath string, cues []subtitle.Cue) error {
	info, err := media.Probe(mediaPath, 0)
	if err != nil {
		return fmt.Errorf("failed to probe media: %w", err)
	}
	fmt.Fprintf(out, "Media duration: %s\n", subtitle.FormatSRTTime(info.Duration))

	past := media.CuesPastEnd(cues, info.Duration)
	for _, c := range past {
		logger.Warnw("Cue ends after the media",
			"cue", c.Index,
			"end", subtitle.FormatSRTTime(c.End),
			"media_duration", subtitle.FormatSRTTime(info.Duration),
		)
	}
	if len(past) > 0 {
		fmt.Fprintf(out, "%d cues end after the media\n", len(past))
	}
	return nil
}
