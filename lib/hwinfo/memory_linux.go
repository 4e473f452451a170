// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/digitalocean/go-smbios/smbios"
	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// dmiTable is the raw SMBIOS table relative to sysfs. The kernel
// creates it mode 0400 root.
const dmiTable = "firmware/dmi/tables/DMI"

// memoryModules reads DIMM details from SMBIOS. The access check runs
// first so a non-root run reports a privilege problem instead of the
// generic open failure go-smbios would produce. Machines without a
// table, such as most containers and some VMs, have no modules to
// list and that is not an error.
func (h *Host) memoryModules() ([]report.MemoryModule, error) {
	const what = "memory module details"
	path := filepath.Join(h.sysRoot, dmiTable)
	if err := unix.Access(path, unix.R_OK); err != nil {
		switch {
		case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
			return []report.MemoryModule{}, report.PrivilegeRequired(report.DomainRAM, what, fmt.Errorf("%s: %w", path, err))
		case errors.Is(err, unix.ENOENT):
			return []report.MemoryModule{}, nil
		default:
			return []report.MemoryModule{}, report.Failure(report.DomainRAM, what, err)
		}
	}

	stream, _, err := smbios.Stream()
	if err != nil {
		return []report.MemoryModule{}, report.Failure(report.DomainRAM, what, err)
	}
	defer stream.Close()

	structures, err := smbios.NewDecoder(stream).Decode()
	if err != nil {
		return []report.MemoryModule{}, report.Failure(report.DomainRAM, "decoding SMBIOS table", err)
	}
	return MemoryModules(structures), nil
}
