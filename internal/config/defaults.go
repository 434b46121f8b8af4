package config

const (
	defaultConfigPath        = "~/.config/srtkit/config.toml"
	projectConfigName        = "srtkit.toml"
	defaultExportFilename    = "subtitles.srt"
	defaultMergedSuffix      = "_merged"
	defaultShareBaseURL      = "https://srtkit.example/viewer"
	defaultPollIntervalMS    = 100
	defaultSeekStepSeconds   = 5
	defaultLoaderTimeoutSecs = 30
	defaultLoaderUserAgent   = "srtkit"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Export: Export{
			DefaultFilename: defaultExportFilename,
			MergedSuffix:    defaultMergedSuffix,
		},
		Share: Share{
			BaseURL: defaultShareBaseURL,
		},
		Playback: Playback{
			PollIntervalMS:  defaultPollIntervalMS,
			SeekStepSeconds: defaultSeekStepSeconds,
		},
		Loader: Loader{
			TimeoutSeconds: defaultLoaderTimeoutSecs,
			UserAgent:      defaultLoaderUserAgent,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
