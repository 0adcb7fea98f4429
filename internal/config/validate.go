package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTimeline(); err != nil {
		return err
	}
	if err := c.validateTracks(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateTimeline() error {
	if c.Timeline.MinZoom > c.Timeline.MaxZoom {
		return errors.New("timeline.min_zoom must not exceed timeline.max_zoom")
	}
	return nil
}

func (c *Config) validateTracks() error {
	seen := make(map[int]string, len(c.Tracks.Lanes))
	for _, lane := range c.Tracks.Lanes {
		if lane.Index < 0 {
			return fmt.Errorf("tracks.lanes: negative index %d", lane.Index)
		}
		if previous, ok := seen[lane.Index]; ok {
			return fmt.Errorf("tracks.lanes: index %d used by both %q and %q", lane.Index, previous, lane.Name)
		}
		seen[lane.Index] = lane.Name
	}
	return nil
}
