package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateShare(); err != nil {
		return err
	}
	if err := c.validatePlayback(); err != nil {
		return err
	}
	if err := c.validateLoader(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateExport() error {
	if strings.ContainsAny(c.Export.DefaultFilename, `/\`) {
		return fmt.Errorf("export.default_filename must be a bare file name, got %q", c.Export.DefaultFilename)
	}
	if strings.ContainsAny(c.Export.MergedSuffix, `/\`) {
		return fmt.Errorf("export.merged_suffix must not contain path separators, got %q", c.Export.MergedSuffix)
	}
	return nil
}

func (c *Config) validateShare() error {
	u, err := url.Parse(c.Share.BaseURL)
	if err != nil {
		return fmt.Errorf("share.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("share.base_url must be an http(s) URL, got %q", c.Share.BaseURL)
	}
	return nil
}

func (c *Config) validatePlayback() error {
	if c.Playback.PollIntervalMS <= 0 {
		return fmt.Errorf("playback.poll_interval_ms must be positive, got %d", c.Playback.PollIntervalMS)
	}
	if c.Playback.SeekStepSeconds <= 0 {
		return fmt.Errorf("playback.seek_step_seconds must be positive, got %v", c.Playback.SeekStepSeconds)
	}
	return nil
}

func (c *Config) validateLoader() error {
	if c.Loader.TimeoutSeconds <= 0 {
		return fmt.Errorf("loader.timeout_seconds must be positive, got %d", c.Loader.TimeoutSeconds)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
