// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package hwinfo

import (
	"context"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// USB is only implemented on Linux.
func (h *Host) USB(ctx context.Context) ([]report.USBDevice, error) {
	return []report.USBDevice{}, report.Unsupported(report.DomainUSB, "USB enumeration")
}
