// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/hwcheck/cmd/hwcheck/cli"
	"github.com/bureau-foundation/hwcheck/lib/config"
	"github.com/bureau-foundation/hwcheck/lib/dashboard"
	"github.com/bureau-foundation/hwcheck/lib/render"
	"github.com/bureau-foundation/hwcheck/lib/report"
	"github.com/bureau-foundation/hwcheck/lib/sink"
	"github.com/bureau-foundation/hwcheck/lib/tui"
)

type reportParams struct {
	Summary bool `flag:"summary" desc:"include the system summary"`
	CPU     bool `flag:"cpu" desc:"include CPU details"`
	RAM     bool `flag:"ram" desc:"include memory details"`
	Storage bool `flag:"storage" desc:"include mounted filesystems"`
	Network bool `flag:"network" desc:"include network interfaces"`
	USB     bool `flag:"usb" desc:"include USB devices"`
	PCI     bool `flag:"pci" desc:"include PCI devices"`
	Health  bool `flag:"health" desc:"include motherboard, BIOS and battery"`
	Full    bool `flag:"full" desc:"include every domain (the default when no domain flag is given)"`
	All     bool `flag:"all" desc:"alias for --full"`

	Format     string        `flag:"format,f" desc:"output format: table, json, yaml, cbor, markdown, html" default:"table"`
	Config     string        `flag:"config,c" desc:"threshold file (default $HWCHECK_CONFIG, else built-in limits)"`
	Color      string        `flag:"color" desc:"color output: auto, always, never" default:"auto"`
	Output     string        `flag:"output,o" desc:"write the report to a file (.zst and .lz4 suffixes compress)"`
	Recipients []string      `flag:"recipient,r" desc:"encrypt the report to an age or SSH public key (repeatable)"`
	Sample     time.Duration `flag:"sample" desc:"CPU usage sampling window" default:"200ms"`
	TUI        bool          `flag:"tui" desc:"open the live dashboard"`
	Refresh    time.Duration `flag:"refresh" desc:"dashboard refresh interval" default:"2s"`
	Verbose    bool          `flag:"verbose,v" desc:"log collector timings at debug level"`
}

// selection returns the domains the flags ask for. No domain flag
// means every domain.
func (p *reportParams) selection() report.Selection {
	if p.Full || p.All {
		return report.SelectAll()
	}

	selection := report.Selection{}
	flags := []struct {
		set     bool
		domains []report.Domain
	}{
		{p.Summary, []report.Domain{report.DomainSummary}},
		{p.CPU, []report.Domain{report.DomainCPU}},
		{p.RAM, []report.Domain{report.DomainRAM}},
		{p.Storage, []report.Domain{report.DomainStorage}},
		{p.Network, []report.Domain{report.DomainNetwork}},
		{p.USB, []report.Domain{report.DomainUSB}},
		{p.PCI, []report.Domain{report.DomainPCI}},
		{p.Health, []report.Domain{report.DomainMotherboard, report.DomainBattery}},
	}
	for _, flag := range flags {
		if flag.set {
			for _, domain := range flag.domains {
				selection[domain] = true
			}
		}
	}

	if len(selection) == 0 {
		return report.SelectAll()
	}
	return selection
}

// reportSettings is the validated form of reportParams.
type reportSettings struct {
	selection report.Selection
	render    render.Options
	sink      sink.Options
}

func (p *reportParams) validate(args []string, interactive func() bool) (reportSettings, error) {
	if len(args) > 0 {
		return reportSettings{}, cli.Validation("unexpected argument %q (domains are selected with flags, e.g. --cpu)", args[0])
	}

	format, err := render.ParseFormat(p.Format)
	if err != nil {
		return reportSettings{}, cli.Validation("--format: %w", err)
	}
	color, err := render.ParseColorMode(p.Color)
	if err != nil {
		return reportSettings{}, cli.Validation("--color: %w", err)
	}
	if p.Sample <= 0 {
		return reportSettings{}, cli.Validation("--sample must be positive, got %s", p.Sample)
	}
	if p.Refresh <= 0 {
		return reportSettings{}, cli.Validation("--refresh must be positive, got %s", p.Refresh)
	}

	sinkOptions := sink.Options{Path: p.Output, Recipients: p.Recipients}

	if p.TUI {
		switch {
		case format != render.FormatTable:
			return reportSettings{}, cli.Validation("--tui cannot be combined with --format %s", format)
		case p.Output != "":
			return reportSettings{}, cli.Validation("--tui cannot be combined with --output")
		case len(p.Recipients) > 0:
			return reportSettings{}, cli.Validation("--tui cannot be combined with --recipient")
		case !interactive():
			return reportSettings{}, cli.Validation("--tui requires stdout to be a terminal")
		}
	}

	if err := sinkOptions.Validate(); err != nil {
		return reportSettings{}, cli.Validation("%w", err)
	}

	// Files and ciphertext are never terminals; only plain stdout
	// gets automatic color.
	if color == render.ColorAuto && (p.Output != "" || len(p.Recipients) > 0) {
		color = render.ColorNever
	}

	return reportSettings{
		selection: p.selection(),
		render:    render.Options{Format: format, Color: color, Theme: tui.DefaultTheme},
		sink:      sinkOptions,
	}, nil
}

func reportCommand(environment Environment) *cli.Command {
	var params reportParams

	return &cli.Command{
		Name:    "hwcheck",
		Summary: "Report hardware and system health",
		Description: `hwcheck reports hardware inventory and live health metrics:
CPU, memory, storage, network, USB, PCI, motherboard/BIOS and battery.

Utilization and temperature values are compared against warning and
critical thresholds. Domains that cannot be read on this machine are
reported with a status instead of failing the run.`,
		Usage: "hwcheck [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("hwcheck", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Full report as colored tables",
				Command:     "hwcheck",
			},
			{
				Description: "CPU and memory only, as JSON",
				Command:     "hwcheck --cpu --ram --format json",
			},
			{
				Description: "Motherboard and battery health with custom thresholds",
				Command:     "hwcheck --health --config thresholds.yaml",
			},
			{
				Description: "Archive an encrypted, compressed YAML report",
				Command:     "hwcheck -f yaml -o report.yaml.zst.age -r age1...",
			},
			{
				Description: "Live dashboard refreshing every second",
				Command:     "hwcheck --tui --refresh 1s",
			},
		},
		Run: func(ctx context.Context, args []string) error {
			settings, err := params.validate(args, environment.Interactive)
			if err != nil {
				return err
			}

			logger := environment.NewLogger(params.Verbose)
			aggregator := &report.Aggregator{
				Source:     environment.NewSource(params.Sample),
				Thresholds: loadThresholds(params.Config, logger),
				Logger:     logger,
			}

			result := aggregator.Collect(ctx, settings.selection)
			if ctx.Err() != nil {
				return &cli.ExitError{Code: cli.ExitInterrupted}
			}

			if params.TUI {
				return runDashboard(ctx, environment, aggregator, result, settings, params.Refresh)
			}
			return writeReport(environment, result, settings)
		},
	}
}

// loadThresholds resolves the threshold file from --config or
// HWCHECK_CONFIG. Problems with the file are logged and the usable
// thresholds returned alongside them are kept.
func loadThresholds(path string, logger *slog.Logger) config.Thresholds {
	var (
		thresholds config.Thresholds
		err        error
	)
	if path != "" {
		thresholds, err = config.LoadFile(path)
	} else {
		thresholds, err = config.Load()
	}

	var configError *config.Error
	if errors.As(err, &configError) {
		logger.Warn("threshold config not fully applied",
			"path", configError.Path,
			"error", configError.Err,
		)
	} else if err != nil {
		logger.Warn("threshold config not applied", "error", err)
	}
	return thresholds
}

func writeReport(environment Environment, result *report.Report, settings reportSettings) error {
	output, err := sink.Open(environment.Stdout, settings.sink)
	if err != nil {
		return cli.Internal("%w", err)
	}

	options := settings.render
	options.Terminal = environment.Stdout
	if err := render.Render(output, result, options); err != nil {
		output.Close()
		discardPartialOutput(settings.sink.Path)
		return cli.Internal("writing report: %w", err)
	}
	if err := output.Close(); err != nil {
		discardPartialOutput(settings.sink.Path)
		return cli.Internal("finishing report: %w", err)
	}
	return nil
}

// discardPartialOutput removes an output file left incomplete by a
// failed write. Stdout (an empty path) is left alone.
func discardPartialOutput(path string) {
	if path != "" {
		os.Remove(path)
	}
}

func runDashboard(ctx context.Context, environment Environment, aggregator *report.Aggregator, initial *report.Report, settings reportSettings, refresh time.Duration) error {
	styles := render.NewStyles(environment.Stdout, settings.render.Color, settings.render.Theme)
	model := dashboard.New(ctx, initial, refreshCollector(aggregator), styles, refresh)

	if err := dashboard.Run(ctx, model); err != nil {
		if ctx.Err() != nil {
			return &cli.ExitError{Code: cli.ExitInterrupted}
		}
		return cli.Internal("dashboard: %w", err)
	}
	return nil
}

// refreshCollector returns the dashboard's periodic collector: the
// aggregator with logging discarded, since stderr shares the terminal
// the dashboard is drawing on.
func refreshCollector(aggregator *report.Aggregator) dashboard.Collector {
	quiet := *aggregator
	quiet.Logger = slog.New(slog.DiscardHandler)
	return quiet.Collect
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
