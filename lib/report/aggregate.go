// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/bureau-foundation/hwcheck/lib/config"
)

// Source collects one domain per method. Implementations may return
// partial data together with an error; the error should be a
// [*CollectError], and any other error is classified with [StatusOf].
type Source interface {
	Summary(ctx context.Context) (SystemSummary, error)
	CPU(ctx context.Context) (CPUInfo, error)
	RAM(ctx context.Context) (RAMInfo, error)
	Storage(ctx context.Context) ([]StorageInfo, error)
	Network(ctx context.Context) ([]NetworkInfo, error)
	USB(ctx context.Context) ([]USBDevice, error)
	PCI(ctx context.Context) ([]PCIDevice, error)
	Motherboard(ctx context.Context) (MotherboardInfo, error)
	Battery(ctx context.Context) ([]BatteryInfo, error)
}

// Aggregator builds reports from a Source.
type Aggregator struct {
	Source     Source
	Thresholds config.Thresholds

	// Logger receives one debug record per collector and a warning
	// for each degraded section. Nil discards logs.
	Logger *slog.Logger

	// Now stamps GeneratedAt. Nil means time.Now.
	Now func() time.Time
}

// Collect invokes the collector for every selected domain exactly
// once, in report order, then classifies the report's metrics. It
// never fails: a collector error becomes an annotated section.
func (a *Aggregator) Collect(ctx context.Context, selection Selection) *Report {
	now := a.Now
	if now == nil {
		now = time.Now
	}
	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	report := &Report{GeneratedAt: now().UTC()}

	for _, domain := range selection.Domains() {
		start := time.Now()
		var err error

		switch domain {
		case DomainSummary:
			report.Summary, err = collect(ctx, a.Source.Summary)
		case DomainCPU:
			report.CPU, err = collect(ctx, a.Source.CPU)
			if report.CPU.Data.Cores == nil {
				report.CPU.Data.Cores = []CoreUsage{}
			}
			if report.CPU.Data.Caches == nil {
				report.CPU.Data.Caches = []CPUCache{}
			}
		case DomainRAM:
			report.RAM, err = collect(ctx, a.Source.RAM)
			if report.RAM.Data.Modules == nil {
				report.RAM.Data.Modules = []MemoryModule{}
			}
		case DomainStorage:
			report.Storage, err = collectList(ctx, a.Source.Storage)
		case DomainNetwork:
			report.Network, err = collectList(ctx, a.Source.Network)
			for i := range report.Network.Data {
				normalizeInterface(&report.Network.Data[i])
			}
		case DomainUSB:
			report.USB, err = collectList(ctx, a.Source.USB)
		case DomainPCI:
			report.PCI, err = collectList(ctx, a.Source.PCI)
		case DomainMotherboard:
			report.Motherboard, err = collect(ctx, a.Source.Motherboard)
		case DomainBattery:
			report.Battery, err = collectList(ctx, a.Source.Battery)
		}

		if err != nil {
			logger.Warn("collector degraded",
				"domain", domain,
				"status", StatusOf(err),
				"error", err,
			)
		}
		logger.Debug("collected",
			"domain", domain,
			"duration", time.Since(start),
		)
	}

	report.Classify(a.Thresholds)
	return report
}

// collect runs one collector and wraps its result in a section.
func collect[T any](ctx context.Context, collector func(context.Context) (T, error)) (*Section[T], error) {
	data, err := collector(ctx)
	section := &Section[T]{Status: StatusOf(err), Data: data}
	if err != nil {
		section.Notice = err.Error()
	}
	return section, err
}

// collectList is collect for list-valued domains. A nil list becomes
// an empty one so serialized reports never contain null.
func collectList[T any](ctx context.Context, collector func(context.Context) ([]T, error)) (*Section[[]T], error) {
	section, err := collect(ctx, collector)
	if section.Data == nil {
		section.Data = []T{}
	}
	return section, err
}

func normalizeInterface(info *NetworkInfo) {
	if info.Addresses == nil {
		info.Addresses = []string{}
	}
	if info.Flags == nil {
		info.Flags = []string{}
	}
}
