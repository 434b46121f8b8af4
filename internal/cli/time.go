package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtkit/internal/subtitle"
)

var timeCmd = &cobra.Command{
	Use:   "time [token...]",
	Short: "Convert between time encodings",
	Long: `Convert each token between decimal seconds, SRT time (HH:MM:SS,mmm),
and share time (H:MM:SS).

Examples:
  srtkit time 3932
  srtkit time 01:05:32,250 1:05:32 90.5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTime,
}

func init() {
	rootCmd.AddCommand(timeCmd)
}

func runTime(cmd *cobra.Command, args []string) error {
	rows := make([][]string, 0, len(args))
	for _, token := range args {
		seconds, err := subtitle.ParseFlexibleTime(token)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			token,
			strconv.FormatFloat(seconds, 'f', -1, 64),
			subtitle.FormatSRTTime(seconds),
			subtitle.FormatHMS(seconds),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Input", "Seconds", "SRT", "H:MM:SS"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
	))
	return nil
}
