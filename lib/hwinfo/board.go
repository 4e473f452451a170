// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"errors"

	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/baseboard"
	"github.com/jaypipes/ghw/pkg/bios"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// Motherboard reports baseboard and BIOS identity from DMI. Serial
// numbers are root-only on Linux and come back empty otherwise.
func (h *Host) Motherboard(ctx context.Context) (report.MotherboardInfo, error) {
	board, boardErr := ghw.Baseboard(ghw.WithDisableWarnings())
	firmware, biosErr := ghw.BIOS(ghw.WithDisableWarnings())
	return motherboardFrom(board, firmware, boardErr, biosErr)
}

// motherboardFrom merges baseboard and BIOS identity. Placeholder
// values are dropped; a board with nothing left to report is
// unsupported.
func motherboardFrom(board *baseboard.Info, firmware *bios.Info, boardErr, biosErr error) (report.MotherboardInfo, error) {
	var info report.MotherboardInfo
	if boardErr == nil && board != nil {
		info.Vendor = known(board.Vendor)
		info.Product = known(board.Product)
		info.Version = known(board.Version)
		info.SerialNumber = known(board.SerialNumber)
	}
	if biosErr == nil && firmware != nil {
		info.BIOSVendor = known(firmware.Vendor)
		info.BIOSVersion = known(firmware.Version)
		info.BIOSDate = known(firmware.Date)
	}

	switch {
	case boardErr != nil && biosErr != nil:
		return info, report.Failure(report.DomainMotherboard, "reading DMI", errors.Join(boardErr, biosErr))
	case boardErr != nil:
		return info, report.Failure(report.DomainMotherboard, "reading baseboard", boardErr)
	case biosErr != nil:
		return info, report.Failure(report.DomainMotherboard, "reading BIOS", biosErr)
	}
	if info == (report.MotherboardInfo{}) {
		return info, report.Unsupported(report.DomainMotherboard, "DMI board information")
	}
	return info, nil
}
