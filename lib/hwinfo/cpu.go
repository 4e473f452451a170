// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// CPU reports processor identity, cache hierarchy, and utilization
// sampled over the Host's sample interval.
func (h *Host) CPU(ctx context.Context) (report.CPUInfo, error) {
	info := report.CPUInfo{
		Model:         strings.TrimSpace(cpuid.CPU.BrandName),
		Vendor:        cpuid.CPU.VendorString,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		Caches: cacheHierarchy(
			cpuid.CPU.Cache.L1D, cpuid.CPU.Cache.L1I,
			cpuid.CPU.Cache.L2, cpuid.CPU.Cache.L3),
	}

	// cpuid has nothing to say on architectures without a CPUID
	// instruction; /proc/cpuinfo via gopsutil fills the gaps.
	if stats, err := cpu.InfoWithContext(ctx); err == nil && len(stats) > 0 {
		if info.Model == "" {
			info.Model = strings.TrimSpace(stats[0].ModelName)
		}
		if info.Vendor == "" {
			info.Vendor = stats[0].VendorID
		}
		info.FrequencyMHz = stats[0].Mhz
	}
	if count, err := cpu.CountsWithContext(ctx, true); err == nil && count > 0 {
		info.LogicalCores = count
	}
	if count, err := cpu.CountsWithContext(ctx, false); err == nil && count > 0 {
		info.PhysicalCores = count
	}

	if sensors, _ := host.SensorsTemperaturesWithContext(ctx); len(sensors) > 0 {
		// gopsutil returns readable sensors alongside a warning for
		// the unreadable ones, so the error is not fatal.
		if celsius, ok := packageTemperature(sensors); ok {
			metric := report.NewMetric(celsius)
			info.Temperature = &metric
		}
	}

	percents, err := cpu.PercentWithContext(ctx, h.sampleInterval, true)
	if err != nil {
		return info, report.Failure(report.DomainCPU, "sampling CPU utilization", err)
	}
	info.Cores, info.Usage = coreUsage(percents)
	return info, nil
}

// coreUsage converts per-core percentages into records and their mean.
func coreUsage(percents []float64) ([]report.CoreUsage, report.Metric) {
	cores := make([]report.CoreUsage, 0, len(percents))
	var total float64
	for index, percent := range percents {
		cores = append(cores, report.CoreUsage{Index: index, Usage: report.NewMetric(percent)})
		total += percent
	}
	if len(percents) == 0 {
		return cores, report.NewMetric(0)
	}
	return cores, report.NewMetric(total / float64(len(percents)))
}

// cacheHierarchy maps cpuid cache sizes (bytes, -1 when undetected)
// to records. Undetected levels are omitted.
func cacheHierarchy(l1d, l1i, l2, l3 int) []report.CPUCache {
	levels := []struct {
		level     int
		cacheType string
		bytes     int
	}{
		{1, "data", l1d},
		{1, "instruction", l1i},
		{2, "unified", l2},
		{3, "unified", l3},
	}
	caches := make([]report.CPUCache, 0, len(levels))
	for _, level := range levels {
		if level.bytes <= 0 {
			continue
		}
		caches = append(caches, report.CPUCache{
			Level:  level.level,
			Type:   level.cacheType,
			SizeKB: level.bytes / 1024,
		})
	}
	return caches
}

// packageSensorKeys identify whole-package CPU temperature sensors in
// gopsutil's hwmon-derived sensor keys, in order of preference.
var packageSensorKeys = []string{
	"package_id",  // Intel coretemp
	"tctl",        // AMD k10temp
	"tdie",        // AMD k10temp, zenpower
	"cpu_thermal", // ARM SoCs
	"coretemp",
	"k10temp",
}

// packageTemperature picks the CPU package temperature from a sensor
// list. Sensors reporting zero are treated as absent.
func packageTemperature(sensors []host.TemperatureStat) (float64, bool) {
	for _, key := range packageSensorKeys {
		for _, sensor := range sensors {
			if sensor.Temperature > 0 && strings.Contains(strings.ToLower(sensor.SensorKey), key) {
				return sensor.Temperature, true
			}
		}
	}
	return 0, false
}
