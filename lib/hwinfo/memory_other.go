// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package hwinfo

import "github.com/bureau-foundation/hwcheck/lib/report"

// memoryModules lists nothing; SMBIOS is only read on Linux, and the
// RAM totals stand on their own.
func (h *Host) memoryModules() ([]report.MemoryModule, error) {
	return []report.MemoryModule{}, nil
}
