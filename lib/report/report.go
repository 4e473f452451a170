// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package report

import "time"

// Report is the aggregated snapshot for one invocation. Absent
// sections were not selected. Field order is the serialization order.
type Report struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	Summary     *Section[SystemSummary]   `json:"summary,omitempty" yaml:"summary,omitempty"`
	CPU         *Section[CPUInfo]         `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	RAM         *Section[RAMInfo]         `json:"ram,omitempty" yaml:"ram,omitempty"`
	Storage     *Section[[]StorageInfo]   `json:"storage,omitempty" yaml:"storage,omitempty"`
	Network     *Section[[]NetworkInfo]   `json:"network,omitempty" yaml:"network,omitempty"`
	USB         *Section[[]USBDevice]     `json:"usb,omitempty" yaml:"usb,omitempty"`
	PCI         *Section[[]PCIDevice]     `json:"pci,omitempty" yaml:"pci,omitempty"`
	Motherboard *Section[MotherboardInfo] `json:"motherboard,omitempty" yaml:"motherboard,omitempty"`
	Battery     *Section[[]BatteryInfo]   `json:"battery,omitempty" yaml:"battery,omitempty"`
}

// Section is one domain's entry in a report. Notice explains any
// status other than StatusOK. Data may be partial when Status is
// StatusPrivilegeRequired or StatusFailed.
type Section[T any] struct {
	Status Status `json:"status" yaml:"status"`
	Notice string `json:"notice,omitempty" yaml:"notice,omitempty"`
	Data   T      `json:"data" yaml:"data"`
}

// OK reports whether the section's collector succeeded fully.
func (s *Section[T]) OK() bool {
	return s != nil && s.Status == StatusOK
}

// Has reports whether the report contains a section for domain.
func (r *Report) Has(domain Domain) bool {
	switch domain {
	case DomainSummary:
		return r.Summary != nil
	case DomainCPU:
		return r.CPU != nil
	case DomainRAM:
		return r.RAM != nil
	case DomainStorage:
		return r.Storage != nil
	case DomainNetwork:
		return r.Network != nil
	case DomainUSB:
		return r.USB != nil
	case DomainPCI:
		return r.PCI != nil
	case DomainMotherboard:
		return r.Motherboard != nil
	case DomainBattery:
		return r.Battery != nil
	default:
		return false
	}
}

// Domains returns the domains present in the report, in report order.
func (r *Report) Domains() []Domain {
	var domains []Domain
	for _, domain := range AllDomains() {
		if r.Has(domain) {
			domains = append(domains, domain)
		}
	}
	return domains
}

// Merge copies every section present in other over the receiver's,
// leaving sections other lacks untouched. The dashboard uses this to
// fold periodic partial refreshes into a full report.
func (r *Report) Merge(other *Report) {
	r.GeneratedAt = other.GeneratedAt
	if other.Summary != nil {
		r.Summary = other.Summary
	}
	if other.CPU != nil {
		r.CPU = other.CPU
	}
	if other.RAM != nil {
		r.RAM = other.RAM
	}
	if other.Storage != nil {
		r.Storage = other.Storage
	}
	if other.Network != nil {
		r.Network = other.Network
	}
	if other.USB != nil {
		r.USB = other.USB
	}
	if other.PCI != nil {
		r.PCI = other.PCI
	}
	if other.Motherboard != nil {
		r.Motherboard = other.Motherboard
	}
	if other.Battery != nil {
		r.Battery = other.Battery
	}
}

// SystemSummary identifies the host and operating system.
type SystemSummary struct {
	Hostname        string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	OS              string `json:"os,omitempty" yaml:"os,omitempty"`
	Platform        string `json:"platform,omitempty" yaml:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty" yaml:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty"`
	Architecture    string `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	Virtualization  string `json:"virtualization,omitempty" yaml:"virtualization,omitempty"`
	UptimeSeconds   uint64 `json:"uptime_seconds" yaml:"uptime_seconds"`
	Processes       uint64 `json:"processes" yaml:"processes"`

	// Fingerprint is a stable hex digest of identifying hardware
	// attributes. It changes when the board, CPU, or machine identity
	// changes, but not across reboots.
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

// CPUInfo describes the processor package and its current load.
type CPUInfo struct {
	Model         string      `json:"model,omitempty" yaml:"model,omitempty"`
	Vendor        string      `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	PhysicalCores int         `json:"physical_cores" yaml:"physical_cores"`
	LogicalCores  int         `json:"logical_cores" yaml:"logical_cores"`
	FrequencyMHz  float64     `json:"frequency_mhz" yaml:"frequency_mhz"`
	Usage         Metric      `json:"usage" yaml:"usage"`
	Cores         []CoreUsage `json:"cores" yaml:"cores"`
	Caches        []CPUCache  `json:"caches" yaml:"caches"`

	// Temperature is the package temperature in Celsius, absent when
	// no sensor is exposed.
	Temperature *Metric `json:"temperature_celsius,omitempty" yaml:"temperature_celsius,omitempty"`
}

// CoreUsage is the utilization of one logical CPU.
type CoreUsage struct {
	Index int    `json:"index" yaml:"index"`
	Usage Metric `json:"usage" yaml:"usage"`
}

// CPUCache is one level of the cache hierarchy as seen by a single core.
type CPUCache struct {
	Level  int    `json:"level" yaml:"level"`
	Type   string `json:"type" yaml:"type"`
	SizeKB int    `json:"size_kb" yaml:"size_kb"`
}

// RAMInfo describes main memory, swap, and installed memory modules.
type RAMInfo struct {
	TotalBytes     uint64 `json:"total_bytes" yaml:"total_bytes"`
	UsedBytes      uint64 `json:"used_bytes" yaml:"used_bytes"`
	FreeBytes      uint64 `json:"free_bytes" yaml:"free_bytes"`
	AvailableBytes uint64 `json:"available_bytes" yaml:"available_bytes"`
	Usage          Metric `json:"usage" yaml:"usage"`

	SwapTotalBytes uint64 `json:"swap_total_bytes" yaml:"swap_total_bytes"`
	SwapUsedBytes  uint64 `json:"swap_used_bytes" yaml:"swap_used_bytes"`
	SwapUsage      Metric `json:"swap_usage" yaml:"swap_usage"`

	Modules []MemoryModule `json:"modules" yaml:"modules"`
}

// MemoryModule is one populated DIMM slot.
type MemoryModule struct {
	Locator      string `json:"locator,omitempty" yaml:"locator,omitempty"`
	BankLocator  string `json:"bank_locator,omitempty" yaml:"bank_locator,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	PartNumber   string `json:"part_number,omitempty" yaml:"part_number,omitempty"`
	SerialNumber string `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	Type         string `json:"type,omitempty" yaml:"type,omitempty"`
	SizeBytes    uint64 `json:"size_bytes" yaml:"size_bytes"`

	// SpeedMTs is the configured speed in megatransfers per second,
	// absent when firmware does not report it.
	SpeedMTs *int `json:"speed_mts,omitempty" yaml:"speed_mts,omitempty"`
}

// StorageInfo describes one mounted filesystem and the disk behind it.
type StorageInfo struct {
	Name         string `json:"name" yaml:"name"`
	MountPoint   string `json:"mount_point" yaml:"mount_point"`
	Filesystem   string `json:"filesystem,omitempty" yaml:"filesystem,omitempty"`
	TotalBytes   uint64 `json:"total_bytes" yaml:"total_bytes"`
	UsedBytes    uint64 `json:"used_bytes" yaml:"used_bytes"`
	FreeBytes    uint64 `json:"free_bytes" yaml:"free_bytes"`
	Usage        Metric `json:"usage" yaml:"usage"`
	Vendor       string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Model        string `json:"model,omitempty" yaml:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	DriveType    string `json:"drive_type,omitempty" yaml:"drive_type,omitempty"`
	Interface    string `json:"interface,omitempty" yaml:"interface,omitempty"`
	Removable    bool   `json:"removable" yaml:"removable"`
}

// NetworkInfo describes one network interface and its cumulative
// traffic counters.
type NetworkInfo struct {
	Name               string   `json:"name" yaml:"name"`
	MACAddress         string   `json:"mac_address,omitempty" yaml:"mac_address,omitempty"`
	MTU                int      `json:"mtu" yaml:"mtu"`
	Addresses          []string `json:"addresses" yaml:"addresses"`
	Flags              []string `json:"flags" yaml:"flags"`
	ReceivedBytes      uint64   `json:"received_bytes" yaml:"received_bytes"`
	TransmittedBytes   uint64   `json:"transmitted_bytes" yaml:"transmitted_bytes"`
	PacketsReceived    uint64   `json:"packets_received" yaml:"packets_received"`
	PacketsTransmitted uint64   `json:"packets_transmitted" yaml:"packets_transmitted"`
	ErrorsIn           uint64   `json:"errors_in" yaml:"errors_in"`
	ErrorsOut          uint64   `json:"errors_out" yaml:"errors_out"`
}

// USBDevice is one device on a USB bus, root hubs included.
type USBDevice struct {
	Bus          int    `json:"bus" yaml:"bus"`
	Address      int    `json:"address" yaml:"address"`
	VendorID     uint16 `json:"vendor_id" yaml:"vendor_id"`
	ProductID    uint16 `json:"product_id" yaml:"product_id"`
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Product      string `json:"product,omitempty" yaml:"product,omitempty"`

	// SpeedMbps is the negotiated link speed, absent when unknown.
	SpeedMbps *float64 `json:"speed_mbps,omitempty" yaml:"speed_mbps,omitempty"`
}

// PCIDevice is one PCI function.
type PCIDevice struct {
	Slot       string `json:"slot" yaml:"slot"`
	VendorID   uint16 `json:"vendor_id" yaml:"vendor_id"`
	DeviceID   uint16 `json:"device_id" yaml:"device_id"`
	VendorName string `json:"vendor_name,omitempty" yaml:"vendor_name,omitempty"`
	DeviceName string `json:"device_name,omitempty" yaml:"device_name,omitempty"`
	ClassName  string `json:"class_name,omitempty" yaml:"class_name,omitempty"`
	Driver     string `json:"driver,omitempty" yaml:"driver,omitempty"`
}

// MotherboardInfo identifies the baseboard and its firmware.
type MotherboardInfo struct {
	Vendor       string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Product      string `json:"product,omitempty" yaml:"product,omitempty"`
	Version      string `json:"version,omitempty" yaml:"version,omitempty"`
	SerialNumber string `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	BIOSVendor   string `json:"bios_vendor,omitempty" yaml:"bios_vendor,omitempty"`
	BIOSVersion  string `json:"bios_version,omitempty" yaml:"bios_version,omitempty"`
	BIOSDate     string `json:"bios_date,omitempty" yaml:"bios_date,omitempty"`
}

// BatteryInfo describes one battery.
type BatteryInfo struct {
	Name            string `json:"name" yaml:"name"`
	Status          string `json:"status,omitempty" yaml:"status,omitempty"`
	CapacityPercent int    `json:"capacity_percent" yaml:"capacity_percent"`

	// HealthPercent is full-charge capacity relative to design
	// capacity, absent when the battery does not report both.
	HealthPercent *float64 `json:"health_percent,omitempty" yaml:"health_percent,omitempty"`
	CycleCount    *int     `json:"cycle_count,omitempty" yaml:"cycle_count,omitempty"`

	Technology   string `json:"technology,omitempty" yaml:"technology,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty" yaml:"model,omitempty"`
}
