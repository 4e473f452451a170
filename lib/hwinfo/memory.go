// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// RAM reports memory and swap totals plus installed modules. Module
// details need the SMBIOS table; when it is unreadable the totals are
// still returned alongside the error.
func (h *Host) RAM(ctx context.Context) (report.RAMInfo, error) {
	virtual, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return report.RAMInfo{}, report.Failure(report.DomainRAM, "reading memory statistics", err)
	}
	info := report.RAMInfo{
		TotalBytes:     virtual.Total,
		UsedBytes:      virtual.Used,
		FreeBytes:      virtual.Free,
		AvailableBytes: virtual.Available,
		Usage:          report.NewMetric(percent(virtual.Used, virtual.Total)),
	}

	if swap, err := mem.SwapMemoryWithContext(ctx); err == nil {
		info.SwapTotalBytes = swap.Total
		info.SwapUsedBytes = swap.Used
		info.SwapUsage = report.NewMetric(percent(swap.Used, swap.Total))
	}

	modules, err := h.memoryModules()
	info.Modules = modules
	return info, err
}

// percent returns part/whole as a percentage, 0 when whole is 0.
func percent(part, whole uint64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
