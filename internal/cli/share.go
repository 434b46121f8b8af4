package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtkit/internal/share"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Build or read a shareable viewer link",
	Long: `Build a link to the viewer page that loads a YouTube video with an
online subtitle file, optionally starting at a given time. The subtitle must
be a URL; a local file cannot be shared.

With --parse, read such a link back.

Examples:
  srtkit share --yt https://youtu.be/dQw4w9WgXcQ --srt https://example.com/a.srt
  srtkit share --yt https://youtu.be/dQw4w9WgXcQ --at 1:05:32
  srtkit share --parse "https://srtkit.example/viewer?yt=...&t=3932"`,
	Args: cobra.NoArgs,
	RunE: runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)

	shareCmd.Flags().String("yt", "", "YouTube video URL")
	shareCmd.Flags().String("srt", "", "Subtitle file URL")
	shareCmd.Flags().String("at", "", "Start time as H:MM:SS, MM:SS, or SS")
	shareCmd.Flags().String("base", "", "Viewer page URL (default from share.base_url)")
	shareCmd.Flags().String("parse", "", "Read an existing link instead of building one")
}

func runShare(cmd *cobra.Command, args []string) error {
	videoURL, _ := cmd.Flags().GetString("yt")
	subURL, _ := cmd.Flags().GetString("srt")
	at, _ := cmd.Flags().GetString("at")
	base, _ := cmd.Flags().GetString("base")
	raw, _ := cmd.Flags().GetString("parse")
	out := cmd.OutOrStdout()

	if raw != "" {
		link, err := share.Parse(raw)
		if err != nil {
			return err
		}
		id, ok := share.VideoID(link.VideoURL)
		if !ok {
			id = "(none)"
		}
		start := link.Start
		if start == "" {
			start = "(none)"
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Field", "Value"},
			[][]string{
				{"Video", link.VideoURL},
				{"Video ID", id},
				{"Subtitles", link.SubtitleURL},
				{"Start", start},
			},
			nil,
		))
		return nil
	}

	if base == "" {
		base = cfg.Share.BaseURL
	}
	if _, ok := share.VideoID(videoURL); !ok && videoURL != "" {
		logger.Warnw("Video URL does not look like a YouTube link", "url", videoURL)
	}
	link := share.Link{VideoURL: videoURL, SubtitleURL: subURL, Start: at}
	built, err := link.Build(base)
	if errors.Is(err, share.ErrNoVideo) {
		return errors.New("--yt is required (or use --parse)")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, built)
	return nil
}
