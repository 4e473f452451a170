// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

func TestUSBSyntheticFS(t *testing.T) {
	root := t.TempDir()

	// Root hub on bus 2, a device on bus 1, and an interface entry
	// that must be skipped.
	writeSyntheticFile(t, root, "bus/usb/devices/usb2/idVendor", "1d6b\n")
	writeSyntheticFile(t, root, "bus/usb/devices/usb2/idProduct", "0003\n")
	writeSyntheticFile(t, root, "bus/usb/devices/usb2/busnum", "2\n")
	writeSyntheticFile(t, root, "bus/usb/devices/usb2/devnum", "1\n")
	writeSyntheticFile(t, root, "bus/usb/devices/usb2/manufacturer", "Linux 6.8.0 xhci-hcd\n")
	writeSyntheticFile(t, root, "bus/usb/devices/usb2/product", "xHCI Host Controller\n")
	writeSyntheticFile(t, root, "bus/usb/devices/usb2/speed", "5000\n")

	writeSyntheticFile(t, root, "bus/usb/devices/1-4/idVendor", "046d\n")
	writeSyntheticFile(t, root, "bus/usb/devices/1-4/idProduct", "c52b\n")
	writeSyntheticFile(t, root, "bus/usb/devices/1-4/busnum", "1\n")
	writeSyntheticFile(t, root, "bus/usb/devices/1-4/devnum", "3\n")
	writeSyntheticFile(t, root, "bus/usb/devices/1-4/product", "USB Receiver\n")
	writeSyntheticFile(t, root, "bus/usb/devices/1-4/speed", "12\n")

	writeSyntheticFile(t, root, "bus/usb/devices/1-4:1.0/bInterfaceClass", "03\n")

	host := &Host{sysRoot: root}
	devices, err := host.USB(context.Background())
	if err != nil {
		t.Fatalf("USB: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("got %d devices, want 2: %+v", len(devices), devices)
	}

	receiver := devices[0]
	if receiver.Bus != 1 || receiver.Address != 3 {
		t.Errorf("first device = bus %d address %d, want bus 1 address 3", receiver.Bus, receiver.Address)
	}
	if receiver.VendorID != 0x046d || receiver.ProductID != 0xc52b {
		t.Errorf("IDs = %04x:%04x, want 046d:c52b", receiver.VendorID, receiver.ProductID)
	}
	if receiver.Manufacturer != "" {
		t.Errorf("Manufacturer = %q, want empty (file absent)", receiver.Manufacturer)
	}
	if receiver.Product != "USB Receiver" {
		t.Errorf("Product = %q, want USB Receiver", receiver.Product)
	}
	if receiver.SpeedMbps == nil || *receiver.SpeedMbps != 12 {
		t.Errorf("SpeedMbps = %v, want 12", receiver.SpeedMbps)
	}

	hub := devices[1]
	if hub.Bus != 2 || hub.Manufacturer != "Linux 6.8.0 xhci-hcd" {
		t.Errorf("hub = %+v", hub)
	}
}

func TestUSBMissingSubsystem(t *testing.T) {
	host := &Host{sysRoot: t.TempDir()}
	devices, err := host.USB(context.Background())
	if devices == nil || len(devices) != 0 {
		t.Errorf("devices = %v, want empty non-nil list", devices)
	}
	if report.StatusOf(err) != report.StatusUnsupported {
		t.Errorf("StatusOf(%v) = %s, want unsupported", err, report.StatusOf(err))
	}
}

func TestUSBUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}
	root := t.TempDir()
	devicesDir := filepath.Join(root, "bus", "usb", "devices")
	if err := os.MkdirAll(devicesDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(devicesDir, 0000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(devicesDir, 0755) })

	host := &Host{sysRoot: root}
	_, err := host.USB(context.Background())
	var collectErr *report.CollectError
	if !errors.As(err, &collectErr) {
		t.Fatalf("error = %v, want *report.CollectError", err)
	}
	if collectErr.Status != report.StatusPrivilegeRequired {
		t.Errorf("Status = %s, want privilege_required", collectErr.Status)
	}
}
