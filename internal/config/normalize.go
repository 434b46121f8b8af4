package config

import "strings"

func (c *Config) normalize() {
	c.normalizeExport()
	c.normalizeLoader()
	c.normalizeLogging()
	c.Share.BaseURL = strings.TrimSpace(c.Share.BaseURL)
	if c.Share.BaseURL == "" {
		c.Share.BaseURL = defaultShareBaseURL
	}
}

func (c *Config) normalizeExport() {
	c.Export.DefaultFilename = strings.TrimSpace(c.Export.DefaultFilename)
	if c.Export.DefaultFilename == "" {
		c.Export.DefaultFilename = defaultExportFilename
	}
	if !strings.HasSuffix(strings.ToLower(c.Export.DefaultFilename), ".srt") {
		c.Export.DefaultFilename += ".srt"
	}
	c.Export.MergedSuffix = strings.TrimSpace(c.Export.MergedSuffix)
	if c.Export.MergedSuffix == "" {
		c.Export.MergedSuffix = defaultMergedSuffix
	}
}

func (c *Config) normalizeLoader() {
	c.Loader.UserAgent = strings.TrimSpace(c.Loader.UserAgent)
	if c.Loader.UserAgent == "" {
		c.Loader.UserAgent = defaultLoaderUserAgent
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
