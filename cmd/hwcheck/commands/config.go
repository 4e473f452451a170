// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hwcheck/cmd/hwcheck/cli"
	"github.com/bureau-foundation/hwcheck/lib/config"
)

// defaultConfigPath is where "config init" writes when no path is given.
const defaultConfigPath = "hwcheck.yaml"

func configCommand(environment Environment) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Summary: "Create or inspect threshold files",
		Description: `Manage the warning and critical thresholds hwcheck classifies
metrics against.

A threshold file is YAML with one <category>_thresholds mapping per
category (cpu, ram, swap, storage, temperature). Categories left out
keep their built-in limits. Files ending in .json or .jsonc are read as
JSON with comments.`,
		Subcommands: []*cli.Command{
			configInitCommand(environment),
			configShowCommand(environment),
		},
	}
}

type configInitParams struct {
	Force bool `flag:"force" desc:"overwrite an existing file"`
}

func configInitCommand(environment Environment) *cli.Command {
	var params configInitParams

	return &cli.Command{
		Name:    "init",
		Summary: "Write the built-in thresholds to a file",
		Usage:   "hwcheck config init [path] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("init", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Start a threshold file to edit",
				Command:     "hwcheck config init /etc/hwcheck.yaml",
			},
		},
		Run: func(_ context.Context, args []string) error {
			if len(args) > 1 {
				return cli.Validation("config init takes at most one path, got %d arguments", len(args))
			}
			path := defaultConfigPath
			if len(args) == 1 {
				path = args[0]
			}

			if !params.Force {
				if _, err := os.Stat(path); err == nil {
					return cli.Validation("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return cli.Internal("checking %s: %w", path, err)
				}
			}

			if err := config.Default().Save(path); err != nil {
				return cli.Internal("%w", err)
			}
			environment.NewLogger(false).Info("wrote default thresholds", "path", path)
			return nil
		},
	}
}

type configShowParams struct {
	Config string `flag:"config,c" desc:"threshold file (default $HWCHECK_CONFIG, else built-in limits)"`
}

func configShowCommand(environment Environment) *cli.Command {
	var params configShowParams

	return &cli.Command{
		Name:    "show",
		Summary: "Print the effective thresholds as YAML",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(_ context.Context, args []string) error {
			if len(args) > 0 {
				return cli.Validation("config show takes no arguments (use --config to name a file)")
			}

			thresholds := loadThresholds(params.Config, environment.NewLogger(false))
			data, err := thresholds.Marshal()
			if err != nil {
				return cli.Internal("%w", err)
			}
			if _, err := environment.Stdout.Write(data); err != nil {
				return cli.Internal("writing thresholds: %w", err)
			}
			return nil
		},
	}
}
