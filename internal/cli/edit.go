package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtkit/internal/session"
	"github.com/mgpai22/srtkit/internal/subtitle"
)

var editCmd = &cobra.Command{
	Use:   "edit [script]",
	Short: "Time and edit cues with a command script",
	Long: `Apply an edit script to a subtitle session and export the result.

The session starts empty, or from --input. The script is read from the
given file, or stdin when omitted or "-". One command per line:

  mark TIME          open a cue, close the open cue, or split the cue at TIME
  start N TIME       set the start of cue N
  end N TIME         set the end of cue N
  text N TEXT        replace the text of cue N (\n for a line break)
  delete N           remove cue N

N counts from 1. TIME is seconds (12.5), H:MM:SS, or SRT time. Lines
starting with # are comments. Rejected commands are reported and skipped
unless --strict is set. A cue left open at the end is not exported.

The result is written to the configured default file name (subtitles.srt)
unless -o is given.

Examples:
  srtkit edit timing.txt
  srtkit edit fixes.txt --input movie.srt -o movie.srt
  echo "mark 1" | srtkit edit --input movie.srt -o -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringP("input", "i", "", "SRT file or URL to start from")
	editCmd.Flags().Bool("strict", false, "Stop at the first rejected command")
	editCmd.Flags().String("media", "", "Video file to check cue times against")
}

func runEdit(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	strict, _ := cmd.Flags().GetBool("strict")
	mediaPath, _ := cmd.Flags().GetString("media")
	outputPath, _ := cmd.Flags().GetString("output")

	s := session.New(session.Options{Logger: logger})
	if input != "" {
		sub, err := loadSubtitle(cmd.Context(), input)
		if err != nil {
			return err
		}
		s.Load(sub.Cues)
	}

	script, name, err := readScript(cmd, args)
	if err != nil {
		return err
	}
	defer script.Close()

	report, err := session.RunScript(s, script, session.ScriptOptions{Strict: strict})
	for _, issue := range report.Issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %s: %v\n", name, issue.Line, issue.Command, issue.Err)
	}
	if err != nil {
		return err
	}
	logger.Infow("Script applied",
		"script", name,
		"applied", report.Applied,
		"ignored", report.Ignored,
		"rejected", len(report.Issues),
	)

	if i := s.ActiveIndex(); i >= 0 {
		entry, _ := s.Entry(i)
		logger.Warnw("Open cue is not exported",
			"cue", i+1,
			"start", subtitle.FormatSRTTime(entry.Start),
		)
	}

	if mediaPath != "" {
		if err := reportMediaBounds(cmd.ErrOrStderr(), mediaPath, s.Closed()); err != nil {
			return err
		}
	}

	data, err := s.Export()
	if errors.Is(err, subtitle.ErrEmptySequence) {
		return errors.New("no closed cues to export")
	}
	if err != nil {
		return err
	}
	if outputPath == "" {
		outputPath = cfg.Export.DefaultFilename
	}
	return writeOutput(cmd, outputPath, data)
}
