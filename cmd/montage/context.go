package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"montage/internal/assets"
	"montage/internal/config"
	"montage/internal/logging"
	"montage/internal/session"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withSession opens the named project with the asset catalog wired in as the
// preview resolver, runs fn, and tears both down.
func (c *commandContext) withSession(cmd *cobra.Command, name string, fn func(*session.Session, *assets.Catalog, *config.Config) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	catalog, err := assets.Open(cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	sess, err := session.Open(cmd.Context(), cfg, name, session.Options{
		Logger:   logging.NewNop(),
		Resolver: catalog,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	return fn(sess, catalog, cfg)
}
