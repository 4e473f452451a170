// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/bureau-foundation/hwcheck/cmd/hwcheck/cli"
	"github.com/bureau-foundation/hwcheck/lib/hwinfo"
	"github.com/bureau-foundation/hwcheck/lib/report"
	"github.com/bureau-foundation/hwcheck/lib/version"
)

// Environment is the outside world the command tree runs against.
// Zero fields take the production defaults.
type Environment struct {
	// Stdout receives reports and command output. Nil means os.Stdout.
	Stdout io.Writer

	// Stderr receives help text. Nil means os.Stderr.
	Stderr io.Writer

	// NewSource returns the hardware source for one invocation, given
	// the CPU sampling window. Nil means [hwinfo.New].
	NewSource func(sampleInterval time.Duration) report.Source

	// NewLogger returns the diagnostics logger. Nil means
	// [cli.NewCommandLogger].
	NewLogger func(verbose bool) *slog.Logger

	// Interactive reports whether Stdout is a terminal the dashboard
	// can take over. Nil means a check of os.Stdout.
	Interactive func() bool
}

func (e Environment) withDefaults() Environment {
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	if e.NewSource == nil {
		e.NewSource = func(sampleInterval time.Duration) report.Source {
			return hwinfo.New(hwinfo.WithSampleInterval(sampleInterval))
		}
	}
	if e.NewLogger == nil {
		e.NewLogger = cli.NewCommandLogger
	}
	if e.Interactive == nil {
		e.Interactive = stdoutIsTerminal
	}
	return e
}

// Root builds and returns the complete hwcheck command tree.
func Root(environment Environment) *cli.Command {
	environment = environment.withDefaults()

	root := reportCommand(environment)
	root.HelpOutput = environment.Stderr
	root.Subcommands = []*cli.Command{
		configCommand(environment),
		{
			Name:    "version",
			Summary: "Print version information",
			Run: func(_ context.Context, args []string) error {
				if len(args) > 0 {
					return cli.Validation("version takes no arguments")
				}
				_, err := fmt.Fprintf(environment.Stdout, "hwcheck %s\n", version.Full())
				return err
			},
		},
	}
	return root
}
