package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtkit/internal/loader"
	"github.com/mgpai22/srtkit/internal/subtitle"
)

func newLoader() *loader.Loader {
	return loader.New(loader.Options{
		Timeout:   cfg.LoaderTimeout(),
		UserAgent: cfg.Loader.UserAgent,
		Logger:    logger,
	})
}

// loadSubtitle fetches and parses an SRT file or URL.
func loadSubtitle(ctx context.Context, source string) (*subtitle.Subtitle, error) {
	content, err := newLoader().Load(ctx, source)
	if err != nil {
		return nil, err
	}
	sub, err := subtitle.NewParser(logger).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if len(sub.Skipped) > 0 {
		logger.Warnw("Some blocks could not be parsed",
			"source", source,
			"skipped", len(sub.Skipped),
			"cues", len(sub.Cues),
		)
	}
	return sub, nil
}

// sourceName returns the file name part of a path or URL.
func sourceName(source string) string {
	if loader.IsRemote(source) {
		if u, err := url.Parse(source); err == nil {
			return path.Base(u.Path)
		}
	}
	return filepath.Base(source)
}

// writeOutput writes data to target, or to the command's stdout when target
// is empty or "-".
func writeOutput(cmd *cobra.Command, target string, data []byte) error {
	if target == "" || target == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	logger.Infow("Wrote subtitles", "output", target, "bytes", len(data))
	return nil
}

// writeCues serializes cues to target, or to the command's stdout when
// target is empty or "-".
func writeCues(cmd *cobra.Command, target string, cues []subtitle.Cue) error {
	if target == "" || target == "-" {
		return subtitle.WriteSRT(cmd.OutOrStdout(), cues)
	}
	writer := &subtitle.SRTWriter{}
	if err := writer.Write(&subtitle.Subtitle{Cues: cues}, target); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	logger.Infow("Wrote subtitles", "output", target, "cues", len(cues))
	return nil
}

// readScript opens the edit script named by args, or stdin.
func readScript(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to open script: %w", err)
	}
	return f, args[0], nil
}
