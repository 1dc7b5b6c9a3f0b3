// Copyright (c) 2026 Marc Love.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/marclove/tram/internal/config"
	"github.com/marclove/tram/internal/log"
	"github.com/marclove/tram/internal/meta"
)

func watchCommandAction(m *meta.Meta) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var paths []string
		if p := cmd.String("config"); p != "" {
			paths = []string{p}
		}

		watcher, err := config.NewWatcher(m.Config, paths, config.HandlerFuncs{
			Change: func(cfg config.Config) {
				m.Config = cfg
				log.SetLevel(cfg.LogLevel.String())
				log.Infof("configuration reloaded: log_level=%s format=%s color=%t",
					cfg.LogLevel, cfg.OutputFormat, cfg.Color)
			},
			Error: func(err error) {
				log.WithError(err).Error("configuration reload failed, keeping previous values")
			},
		})
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}

		fmt.Println("Watching configuration for changes. Press Ctrl+C to stop.")

		var check <-chan time.Time
		if cmd.Bool("check") {
			interval := cmd.Duration("interval")
			if interval <= 0 {
				interval = 30 * time.Second
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			check = ticker.C
		}

		for {
			select {
			case <-ctx.Done():
				log.Debug("shutting down watcher")
				watcher.Stop()
				<-watcher.Done()
				fmt.Println("Stopped watching.")
				return nil
			case <-check:
				cfg := watcher.Current()
				log.Debugf("active configuration: log_level=%s format=%s", cfg.LogLevel, cfg.OutputFormat)
			}
		}
	}
}

func watchCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "watch configuration files and reload on change",
		UsageText: "tram watch [--config PATH] [--check] [--interval DURATION]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "periodically log the active configuration",
				HideDefault: true,
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "interval between checks",
				Value: 30 * time.Second,
			},
		},
		Action: watchCommandAction(m),
	}
}
