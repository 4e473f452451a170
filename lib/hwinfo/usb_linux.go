// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// USB enumerates devices on every USB bus, root hubs included, sorted
// by bus and address.
func (h *Host) USB(ctx context.Context) ([]report.USBDevice, error) {
	devicesDir := filepath.Join(h.sysRoot, "bus", "usb", "devices")
	entries, err := os.ReadDir(devicesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []report.USBDevice{}, report.Unsupported(report.DomainUSB, "USB enumeration (no USB subsystem in sysfs)")
		}
		return []report.USBDevice{}, report.Failure(report.DomainUSB, "listing USB devices", err)
	}

	devices := []report.USBDevice{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return devices, report.Failure(report.DomainUSB, "listing USB devices", err)
		}
		device, ok := readUSBDevice(filepath.Join(devicesDir, entry.Name()))
		if ok {
			devices = append(devices, device)
		}
	}

	sort.Slice(devices, func(i, j int) bool {
		if devices[i].Bus != devices[j].Bus {
			return devices[i].Bus < devices[j].Bus
		}
		return devices[i].Address < devices[j].Address
	})
	return devices, nil
}

// readUSBDevice reads one sysfs USB entry. Interface entries ("1-1:1.0")
// carry no idVendor and are skipped.
func readUSBDevice(dir string) (report.USBDevice, bool) {
	vendor := ReadSysfsString(filepath.Join(dir, "idVendor"))
	if vendor == "" {
		return report.USBDevice{}, false
	}
	device := report.USBDevice{
		Bus:          ReadSysfsInt(filepath.Join(dir, "busnum")),
		Address:      ReadSysfsInt(filepath.Join(dir, "devnum")),
		VendorID:     parseHex16(vendor),
		ProductID:    ReadSysfsHex16(filepath.Join(dir, "idProduct")),
		Manufacturer: ReadSysfsString(filepath.Join(dir, "manufacturer")),
		Product:      ReadSysfsString(filepath.Join(dir, "product")),
	}
	// speed is in Mbit/s: "1.5", "12", "480", "5000", ...
	if speed, err := strconv.ParseFloat(ReadSysfsString(filepath.Join(dir, "speed")), 64); err == nil && speed > 0 {
		device.SpeedMbps = &speed
	}
	return device, true
}
