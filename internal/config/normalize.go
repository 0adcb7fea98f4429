package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.Paths.ProjectDir, err = expandPath(c.Paths.ProjectDir); err != nil {
		return fmt.Errorf("paths.project_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	if c.Timeline.PixelsPerSecond <= 0 {
		c.Timeline.PixelsPerSecond = defaultPixelsPerSecond
	}
	if c.Timeline.MinZoom <= 0 {
		c.Timeline.MinZoom = defaultMinZoom
	}
	if c.Timeline.MaxZoom <= 0 {
		c.Timeline.MaxZoom = defaultMaxZoom
	}
	if c.Timeline.MinItemWidth <= 0 {
		c.Timeline.MinItemWidth = defaultMinItemWidth
	}
	if c.Timeline.OverscanItems <= 0 {
		c.Timeline.OverscanItems = defaultOverscanItems
	}
	if c.History.MaxEntries <= 0 {
		c.History.MaxEntries = defaultHistoryEntries
	}
	if len(c.Tracks.Lanes) == 0 {
		c.Tracks.Lanes = defaultLanes()
	}
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultRequestTimeout
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
