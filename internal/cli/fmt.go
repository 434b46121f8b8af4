package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtkit/internal/subtitle"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [srt_file_or_url]",
	Short: "Rewrite an SRT file in canonical form",
	Long: `Parse an SRT file or URL and write it back in canonical form.

Cues are sorted by start time and renumbered from 1, timestamps use the
HH:MM:SS,mmm form, and blocks that cannot be parsed are skipped with a
warning.

Examples:
  srtkit fmt movie.srt
  srtkit fmt movie.srt -o fixed.srt
  srtkit fmt https://example.com/subs.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")

	sub, err := loadSubtitle(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(sub.Cues) == 0 {
		return fmt.Errorf("%s: %w", args[0], subtitle.ErrEmptySequence)
	}
	return writeCues(cmd, outputPath, sub.Cues)
}
