package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtkit/internal/merge"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [srt_file] [text_file]",
	Short: "Merge lines of a text file into SRT cues",
	Long: `Pair each line of a plain text file with the cue at the same position
and add it to that cue's text.

A blank line leaves its cue unchanged, a cue with blank text takes the line
as its text, and otherwise the line is appended on a new line. When the
number of cues and lines differ only the overlapping prefix is merged, and
--force is required to write the result.

The output defaults to the SRT file's name with "_merged" before the
extension, in the current directory.

Examples:
  srtkit merge movie.srt translation.txt
  srtkit merge movie.srt translation.txt --force -o out.srt
  srtkit merge movie.srt translation.txt -o -`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().BoolP("force", "f", false, "Write even when cue and line counts differ")
}

func runMerge(cmd *cobra.Command, args []string) error {
	srtSource, textSource := args[0], args[1]
	force, _ := cmd.Flags().GetBool("force")
	outputPath, _ := cmd.Flags().GetString("output")

	sub, err := loadSubtitle(cmd.Context(), srtSource)
	if err != nil {
		return err
	}
	content, err := newLoader().Load(cmd.Context(), textSource)
	if err != nil {
		return err
	}
	lines := merge.SplitLines(content)

	result := merge.Merge(sub.Cues, lines)
	if result.Mismatch {
		logger.Warnw("Cue and line counts differ",
			"cues", result.CueCount,
			"lines", result.LineCount,
			"merged", result.Paired,
		)
		if !force {
			return fmt.Errorf(
				"%d cues but %d lines: only the first %d would be merged (use --force to write anyway)",
				result.CueCount, result.LineCount, result.Paired,
			)
		}
	}

	if len(result.Cues) == 0 {
		return fmt.Errorf("%s has no cues to merge into", srtSource)
	}

	if outputPath == "" {
		outputPath = merge.FilenameWithSuffix(sourceName(srtSource), cfg.Export.MergedSuffix, merge.DefaultFilename)
	}
	logger.Infow("Merged text into cues",
		"srt", srtSource,
		"text", textSource,
		"merged", result.Paired,
	)
	return writeCues(cmd, outputPath, result.Cues)
}
