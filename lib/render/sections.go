// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// Cell is one table cell. Severity is set for cells showing a
// classified metric.
type Cell struct {
	Text     string
	Severity report.Severity
}

// Grid is one table within a section. Empty is shown in place of the
// table when there are no rows; a grid with no rows and no Empty text
// is omitted.
type Grid struct {
	Headers []string
	Rows    [][]Cell
	Empty   string
}

// Section is the display form of one report section.
type Section struct {
	Domain report.Domain
	Title  string
	Status report.Status
	Notice string
	Grids  []Grid
}

// titles are the section headings, by domain.
var titles = map[report.Domain]string{
	report.DomainSummary:     "System Summary",
	report.DomainCPU:         "CPU Information",
	report.DomainRAM:         "Memory Information",
	report.DomainStorage:     "Storage Information",
	report.DomainNetwork:     "Network Information",
	report.DomainUSB:         "USB Devices",
	report.DomainPCI:         "PCI Devices",
	report.DomainMotherboard: "Motherboard & BIOS",
	report.DomainBattery:     "Battery",
}

// Title returns the display heading for a domain.
func Title(domain report.Domain) string {
	return titles[domain]
}

// Sections returns the display sections of every populated domain, in
// domain order.
func Sections(r *report.Report) []Section {
	sections := make([]Section, 0, len(r.Domains()))
	for _, domain := range r.Domains() {
		if section, ok := SectionFor(r, domain); ok {
			sections = append(sections, section)
		}
	}
	return sections
}

// SectionFor returns the display section for one domain, or false if
// the report does not contain it.
func SectionFor(r *report.Report, domain report.Domain) (Section, bool) {
	switch domain {
	case report.DomainSummary:
		return build(domain, r.Summary, summaryGrids)
	case report.DomainCPU:
		return build(domain, r.CPU, cpuGrids)
	case report.DomainRAM:
		return build(domain, r.RAM, ramGrids)
	case report.DomainStorage:
		return build(domain, r.Storage, storageGrids)
	case report.DomainNetwork:
		return build(domain, r.Network, networkGrids)
	case report.DomainUSB:
		return build(domain, r.USB, usbGrids)
	case report.DomainPCI:
		return build(domain, r.PCI, pciGrids)
	case report.DomainMotherboard:
		return build(domain, r.Motherboard, motherboardGrids)
	case report.DomainBattery:
		return build(domain, r.Battery, batteryGrids)
	default:
		return Section{}, false
	}
}

func build[T any](domain report.Domain, section *report.Section[T], grids func(T) []Grid) (Section, bool) {
	if section == nil {
		return Section{}, false
	}
	result := Section{
		Domain: domain,
		Title:  Title(domain),
		Status: section.Status,
		Notice: section.Notice,
	}
	// A degraded section with nothing collected shows only its notice
	// rather than a table of blanks.
	if section.Status == report.StatusOK || !isEmpty(section.Data) {
		result.Grids = grids(section.Data)
	}
	return result, true
}

// isEmpty reports whether a record holds no collected data: every
// scalar field zero and every slice empty.
func isEmpty(data any) bool {
	value := reflect.ValueOf(data)
	switch value.Kind() {
	case reflect.Slice:
		return value.Len() == 0
	case reflect.Struct:
		for index := range value.NumField() {
			field := value.Field(index)
			if field.Kind() == reflect.Slice {
				if field.Len() > 0 {
					return false
				}
			} else if !field.IsZero() {
				return false
			}
		}
		return true
	default:
		return value.IsZero()
	}
}

func summaryGrids(summary report.SystemSummary) []Grid {
	osName := strings.TrimSpace(summary.Platform + " " + summary.PlatformVersion)
	if osName == "" {
		osName = summary.OS
	}
	rows := [][]Cell{
		row("Hostname", summary.Hostname),
		row("Operating System", osName),
		row("Kernel", summary.KernelVersion),
		row("Architecture", summary.Architecture),
	}
	if summary.Virtualization != "" {
		rows = append(rows, row("Virtualization", summary.Virtualization))
	}
	rows = append(rows,
		row("Uptime", FormatUptime(summary.UptimeSeconds)),
		row("Processes", strconv.FormatUint(summary.Processes, 10)),
		row("Fingerprint", summary.Fingerprint),
	)
	return []Grid{propertyGrid(rows)}
}

func cpuGrids(cpu report.CPUInfo) []Grid {
	rows := [][]Cell{
		row("Model", cpu.Model),
		row("Vendor", cpu.Vendor),
		row("Cores", fmt.Sprintf("%d physical, %d logical", cpu.PhysicalCores, cpu.LogicalCores)),
		row("Frequency", fmt.Sprintf("%.0f MHz", cpu.FrequencyMHz)),
		{{Text: "Usage"}, {Text: formatFloat(cpu.Usage.Value) + "%", Severity: cpu.Usage.Severity}},
	}
	if cpu.Temperature != nil {
		rows = append(rows, []Cell{
			{Text: "Temperature"},
			{Text: formatFloat(cpu.Temperature.Value) + " °C", Severity: cpu.Temperature.Severity},
		})
	}
	if len(cpu.Caches) > 0 {
		rows = append(rows, row("Caches", formatCaches(cpu.Caches)))
	}

	cores := Grid{Headers: []string{"Core", "Model", "Frequency (MHz)", "Usage (%)"}}
	for _, core := range cpu.Cores {
		cores.Rows = append(cores.Rows, []Cell{
			{Text: strconv.Itoa(core.Index)},
			{Text: dash(cpu.Model)},
			{Text: fmt.Sprintf("%.0f", cpu.FrequencyMHz)},
			metricCell(core.Usage),
		})
	}
	return []Grid{propertyGrid(rows), cores}
}

func ramGrids(ram report.RAMInfo) []Grid {
	usage := Grid{
		Headers: []string{"Type", "Total", "Used", "Free", "Usage (%)"},
		Rows: [][]Cell{
			{
				{Text: "Main Memory"},
				{Text: formatBytes(ram.TotalBytes)},
				{Text: formatBytes(ram.UsedBytes)},
				{Text: formatBytes(ram.FreeBytes)},
				metricCell(ram.Usage),
			},
			{
				{Text: "Swap"},
				{Text: formatBytes(ram.SwapTotalBytes)},
				{Text: formatBytes(ram.SwapUsedBytes)},
				{Text: formatBytes(ram.SwapTotalBytes - min(ram.SwapUsedBytes, ram.SwapTotalBytes))},
				metricCell(ram.SwapUsage),
			},
		},
	}

	modules := Grid{Headers: []string{"Slot", "Bank", "Manufacturer", "Type", "Size", "Speed (MT/s)", "Part Number"}}
	for _, module := range ram.Modules {
		speed := ""
		if module.SpeedMTs != nil {
			speed = strconv.Itoa(*module.SpeedMTs)
		}
		modules.Rows = append(modules.Rows, cells(
			module.Locator,
			module.BankLocator,
			module.Manufacturer,
			module.Type,
			formatBytes(module.SizeBytes),
			speed,
			module.PartNumber,
		))
	}
	return []Grid{usage, modules}
}

func storageGrids(volumes []report.StorageInfo) []Grid {
	grid := Grid{
		Headers: []string{"Name", "Mount", "FS", "Total", "Used", "Usage (%)", "Model", "Interface"},
		Empty:   "No mounted filesystems",
	}
	for _, volume := range volumes {
		cellsRow := cells(volume.Name, volume.MountPoint, volume.Filesystem,
			formatBytes(volume.TotalBytes), formatBytes(volume.UsedBytes))
		cellsRow = append(cellsRow, metricCell(volume.Usage))
		cellsRow = append(cellsRow, cells(volume.Model, volume.Interface)...)
		grid.Rows = append(grid.Rows, cellsRow)
	}
	return []Grid{grid}
}

func networkGrids(interfaces []report.NetworkInfo) []Grid {
	grid := Grid{
		Headers: []string{"Interface", "MAC", "Addresses", "Received", "Transmitted", "Errors (in/out)"},
		Empty:   "No network interfaces",
	}
	for _, iface := range interfaces {
		grid.Rows = append(grid.Rows, cells(
			iface.Name,
			iface.MACAddress,
			strings.Join(iface.Addresses, ", "),
			formatBytes(iface.ReceivedBytes),
			formatBytes(iface.TransmittedBytes),
			fmt.Sprintf("%d/%d", iface.ErrorsIn, iface.ErrorsOut),
		))
	}
	return []Grid{grid}
}

func usbGrids(devices []report.USBDevice) []Grid {
	grid := Grid{
		Headers: []string{"Bus", "Device", "ID", "Manufacturer", "Product", "Speed"},
		Empty:   "No USB devices",
	}
	for _, device := range devices {
		speed := ""
		if device.SpeedMbps != nil {
			speed = FormatLinkSpeed(*device.SpeedMbps)
		}
		grid.Rows = append(grid.Rows, cells(
			fmt.Sprintf("%03d", device.Bus),
			fmt.Sprintf("%03d", device.Address),
			fmt.Sprintf("%04x:%04x", device.VendorID, device.ProductID),
			device.Manufacturer,
			device.Product,
			speed,
		))
	}
	return []Grid{grid}
}

func pciGrids(devices []report.PCIDevice) []Grid {
	grid := Grid{
		Headers: []string{"Slot", "ID", "Vendor", "Device", "Class", "Driver"},
		Empty:   "No PCI devices",
	}
	for _, device := range devices {
		grid.Rows = append(grid.Rows, cells(
			device.Slot,
			fmt.Sprintf("%04x:%04x", device.VendorID, device.DeviceID),
			device.VendorName,
			device.DeviceName,
			device.ClassName,
			device.Driver,
		))
	}
	return []Grid{grid}
}

func motherboardGrids(board report.MotherboardInfo) []Grid {
	return []Grid{propertyGrid([][]Cell{
		row("Vendor", board.Vendor),
		row("Product", board.Product),
		row("Version", board.Version),
		row("Serial Number", board.SerialNumber),
		row("BIOS Vendor", board.BIOSVendor),
		row("BIOS Version", board.BIOSVersion),
		row("BIOS Date", board.BIOSDate),
	})}
}

func batteryGrids(batteries []report.BatteryInfo) []Grid {
	grid := Grid{
		Headers: []string{"Name", "Status", "Charge (%)", "Health (%)", "Cycles", "Technology", "Model"},
		Empty:   "No battery detected",
	}
	for _, battery := range batteries {
		health, cycles := "", ""
		if battery.HealthPercent != nil {
			health = formatFloat(*battery.HealthPercent)
		}
		if battery.CycleCount != nil {
			cycles = strconv.Itoa(*battery.CycleCount)
		}
		grid.Rows = append(grid.Rows, cells(
			battery.Name,
			battery.Status,
			strconv.Itoa(battery.CapacityPercent),
			health,
			cycles,
			battery.Technology,
			battery.Model,
		))
	}
	return []Grid{grid}
}

func propertyGrid(rows [][]Cell) Grid {
	return Grid{Headers: []string{"Property", "Value"}, Rows: rows}
}

func row(name, value string) []Cell {
	return []Cell{{Text: name}, {Text: dash(value)}}
}

func cells(values ...string) []Cell {
	result := make([]Cell, len(values))
	for i, value := range values {
		result[i] = Cell{Text: dash(value)}
	}
	return result
}

func metricCell(metric report.Metric) Cell {
	return Cell{Text: formatFloat(metric.Value), Severity: metric.Severity}
}

// dash stands in for absent values so columns stay visibly aligned.
func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
