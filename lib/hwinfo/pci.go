// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/pci"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// PCI enumerates PCI devices with names resolved from pci.ids, sorted
// by slot address. When ghw cannot load the name database, Linux
// devices are still listed by ID from sysfs and the section is marked
// failed with a notice that names are unavailable.
func (h *Host) PCI(ctx context.Context) ([]report.PCIDevice, error) {
	if runtime.GOOS != "linux" && runtime.GOOS != "windows" {
		return []report.PCIDevice{}, report.Unsupported(report.DomainPCI, "PCI enumeration")
	}
	info, err := ghw.PCI(ghw.WithDisableWarnings())
	if err != nil {
		if runtime.GOOS == "linux" {
			return h.pciFromSysfs(err)
		}
		return []report.PCIDevice{}, report.Failure(report.DomainPCI, "enumerating PCI devices", err)
	}
	return PCIDevices(info.Devices), nil
}

// pciFromSysfs lists devices without names after ghw failed with
// cause.
func (h *Host) pciFromSysfs(cause error) ([]report.PCIDevice, error) {
	devices, err := ReadPCIDevices(filepath.Join(h.sysRoot, "bus", "pci", "devices"))
	if err != nil || len(devices) == 0 {
		return []report.PCIDevice{}, report.Failure(report.DomainPCI, "enumerating PCI devices", cause)
	}
	return devices, report.Failure(report.DomainPCI, "PCI names unavailable", cause)
}

// ReadPCIDevices lists the functions under a sysfs PCI devices
// directory by ID, sorted by slot. Names are left empty.
func ReadPCIDevices(devicesDir string) ([]report.PCIDevice, error) {
	entries, err := os.ReadDir(devicesDir)
	if err != nil {
		return nil, err
	}

	devices := make([]report.PCIDevice, 0, len(entries))
	for _, entry := range entries {
		devicePath := filepath.Join(devicesDir, entry.Name())
		uevent, err := parsePCIUevent(devicePath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			continue
		}

		device := report.PCIDevice{
			Slot:     uevent.slot,
			VendorID: uevent.vendorID,
			DeviceID: uevent.deviceID,
			Driver:   uevent.driver,
		}
		if device.Slot == "" {
			device.Slot = entry.Name()
		}
		if device.VendorID == 0 {
			device.VendorID = ReadSysfsHex16(filepath.Join(devicePath, "vendor"))
		}
		if device.DeviceID == 0 {
			device.DeviceID = ReadSysfsHex16(filepath.Join(devicePath, "device"))
		}
		if device.Driver == "" {
			device.Driver = ReadDriverName(devicePath)
		}
		if device.VendorID == 0 && device.DeviceID == 0 {
			continue
		}
		devices = append(devices, device)
	}

	sort.Slice(devices, func(i, j int) bool {
		return devices[i].Slot < devices[j].Slot
	})
	return devices, nil
}

// pciUevent holds the fields hwcheck uses from a PCI device's uevent
// file, which contains lines like:
//
//	DRIVER=xhci_hcd
//	PCI_ID=8086:A0ED
//	PCI_SLOT_NAME=0000:00:14.0
type pciUevent struct {
	driver   string
	slot     string
	vendorID uint16
	deviceID uint16
}

func parsePCIUevent(devicePath string) (pciUevent, error) {
	var uevent pciUevent
	data, err := os.ReadFile(filepath.Join(devicePath, "uevent"))
	if err != nil {
		return uevent, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "DRIVER":
			uevent.driver = value
		case "PCI_SLOT_NAME":
			uevent.slot = value
		case "PCI_ID":
			// vendor:device, uppercase hex.
			if vendor, device, ok := strings.Cut(value, ":"); ok {
				uevent.vendorID = parseHex16(vendor)
				uevent.deviceID = parseHex16(device)
			}
		}
	}
	return uevent, nil
}

// PCIDevices maps ghw devices to report records sorted by slot.
func PCIDevices(devices []*pci.Device) []report.PCIDevice {
	result := make([]report.PCIDevice, 0, len(devices))
	for _, device := range devices {
		if device == nil {
			continue
		}
		record := report.PCIDevice{
			Slot:   device.Address,
			Driver: device.Driver,
		}
		if device.Vendor != nil {
			record.VendorID = parseHex16(device.Vendor.ID)
			record.VendorName = known(device.Vendor.Name)
		}
		if device.Product != nil {
			record.DeviceID = parseHex16(device.Product.ID)
			record.DeviceName = known(device.Product.Name)
		}
		if device.Class != nil {
			record.ClassName = known(device.Class.Name)
		}
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Slot < result[j].Slot
	})
	return result
}
