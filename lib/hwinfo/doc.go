// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hwinfo collects hardware inventory and runtime metrics for
// hwcheck reports.
//
// [Host] implements [report.Source] with one collector per domain.
// Each collector delegates to a discovery library and maps its output
// into the normalized records of package report:
//
//   - Summary: gopsutil host information, plus a BLAKE3 fingerprint
//     of stable identity attributes ([Fingerprint])
//   - CPU: gopsutil utilization sampling and counts, klauspost/cpuid
//     for vendor, brand and cache sizes, gopsutil temperature sensors
//   - RAM: gopsutil memory and swap statistics; memory modules from
//     SMBIOS type 17 structures (go-smbios), which usually requires
//     root because the kernel exposes the DMI table mode 0400
//   - Storage: gopsutil partitions and usage, joined with ghw block
//     device metadata (vendor, model, serial, controller)
//   - Network: gopsutil per-interface counters and interface list
//   - USB: sysfs /sys/bus/usb/devices (Linux only)
//   - PCI: ghw with pci.ids names
//   - Motherboard: ghw baseboard and BIOS (DMI)
//   - Battery: sysfs /sys/class/power_supply (Linux only)
//
// Collectors never panic on missing hardware. They return whatever
// they could read together with a [*report.CollectError] describing
// what was missing and why.
//
// sysfs-based collectors read below a configurable root so tests can
// point them at synthetic trees.
package hwinfo
