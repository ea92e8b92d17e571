// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/config"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
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

// ensureConfig loads and validates configuration once, then initializes the
// global logger from it.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		if c.configFlag != nil {
			if path := strings.TrimSpace(*c.configFlag); path != "" {
				if _, err := os.Stat(path); err != nil {
					c.configErr = fmt.Errorf("config file: %w", err)
					return
				}
				if err := os.Setenv(config.ConfigPathEnvVar, path); err != nil {
					c.configErr = fmt.Errorf("set %s: %w", config.ConfigPathEnvVar, err)
					return
				}
			}
		}

		cfg, err := config.Load()
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		logging.Init(cfg.LoggingSettings())
		c.config = cfg
	})
	return c.config, c.configErr
}
