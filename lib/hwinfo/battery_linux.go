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

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// Battery reports system batteries from the power_supply class. A
// machine without batteries yields an empty list, not an error.
// Peripheral batteries (scope "Device": mice, headsets) are excluded.
func (h *Host) Battery(ctx context.Context) ([]report.BatteryInfo, error) {
	supplyDir := filepath.Join(h.sysRoot, "class", "power_supply")
	entries, err := os.ReadDir(supplyDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []report.BatteryInfo{}, nil
		}
		return []report.BatteryInfo{}, report.Failure(report.DomainBattery, "listing power supplies", err)
	}

	batteries := []report.BatteryInfo{}
	for _, entry := range entries {
		dir := filepath.Join(supplyDir, entry.Name())
		if ReadSysfsString(filepath.Join(dir, "type")) != "Battery" {
			continue
		}
		if ReadSysfsString(filepath.Join(dir, "scope")) == "Device" {
			continue
		}
		batteries = append(batteries, readBattery(entry.Name(), dir))
	}
	sort.Slice(batteries, func(i, j int) bool {
		return batteries[i].Name < batteries[j].Name
	})
	return batteries, nil
}

func readBattery(name, dir string) report.BatteryInfo {
	battery := report.BatteryInfo{
		Name:            name,
		Status:          ReadSysfsString(filepath.Join(dir, "status")),
		CapacityPercent: ReadSysfsInt(filepath.Join(dir, "capacity")),
		Technology:      known(ReadSysfsString(filepath.Join(dir, "technology"))),
		Manufacturer:    known(ReadSysfsString(filepath.Join(dir, "manufacturer"))),
		Model:           known(ReadSysfsString(filepath.Join(dir, "model_name"))),
	}

	// Drivers report either energy (µWh) or charge (µAh); health is
	// the same ratio in either unit.
	for _, prefix := range []string{"energy", "charge"} {
		full := ReadSysfsInt64(filepath.Join(dir, prefix+"_full"))
		design := ReadSysfsInt64(filepath.Join(dir, prefix+"_full_design"))
		if full > 0 && design > 0 {
			health := float64(full) / float64(design) * 100
			battery.HealthPercent = &health
			break
		}
	}

	// Many drivers report 0 when they do not track cycles.
	if cycles := ReadSysfsInt(filepath.Join(dir, "cycle_count")); cycles > 0 {
		battery.CycleCount = &cycles
	}
	return battery
}
