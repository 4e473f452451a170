// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package hwinfo

import (
	"context"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// Battery is only implemented on Linux.
func (h *Host) Battery(ctx context.Context) ([]report.BatteryInfo, error) {
	return []report.BatteryInfo{}, report.Unsupported(report.DomainBattery, "battery status")
}
