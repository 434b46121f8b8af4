package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtkit/internal/config"
	"github.com/mgpai22/srtkit/internal/logging"
)

const skipConfigLoad = "skipConfigLoad"

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "srtkit",
	Short: "Time, edit, and merge SRT subtitles",
	Long: `srtkit is a CLI toolkit for SRT subtitle files.

It parses and normalizes SRT files, times cues with marks, merges a plain
text translation into existing cues, follows playback to show the active
cue, and builds shareable viewer links.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipConfigLoad] == "true" {
			defaults := config.Default()
			cfg = &defaults
			logger = logging.NewLogger(verbose)
			return nil
		}

		c, path, exists, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		l, err := logging.New(logging.Options{
			Verbose: verbose,
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
		})
		if err != nil {
			return err
		}
		logger = l
		logger.Debugw("Configuration loaded", "path", path, "exists", exists)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path (- for stdout)")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default ~/.config/srtkit/config.toml)")
}
