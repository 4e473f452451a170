// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/block"
	"github.com/shirou/gopsutil/v3/disk"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// pseudoFilesystems are mounted filesystems that do not represent
// storage capacity.
var pseudoFilesystems = map[string]bool{
	"autofs":   true,
	"devtmpfs": true,
	"efivarfs": true,
	"nsfs":     true,
	"overlay":  true,
	"ramfs":    true,
	"squashfs": true,
	"tmpfs":    true,
}

// diskMetadata is the block-device description attached to every
// filesystem that lives on the device.
type diskMetadata struct {
	vendor     string
	model      string
	serial     string
	driveType  string
	controller string
	removable  bool
}

// Storage reports usage of every mounted physical filesystem, sorted
// by mount point. A filesystem whose usage cannot be read is omitted
// and reported in the returned error.
func (h *Host) Storage(ctx context.Context) ([]report.StorageInfo, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return []report.StorageInfo{}, report.Failure(report.DomainStorage, "listing mounted filesystems", err)
	}

	var metadata map[string]diskMetadata
	if info, err := ghw.Block(ghw.WithDisableWarnings()); err == nil {
		metadata = blockMetadata(info)
	}

	usage := func(mountPoint string) (*disk.UsageStat, error) {
		return disk.UsageWithContext(ctx, mountPoint)
	}
	result, err := volumes(partitions, usage, metadata)
	if err != nil {
		return result, report.Failure(report.DomainStorage, "reading filesystem usage", err)
	}
	return result, nil
}

// volumes builds storage records from mounted partitions. Pseudo
// filesystems, repeated mount points, and zero-size filesystems are
// skipped. Mount points whose usage cannot be read are left out and
// joined into the returned error.
func volumes(partitions []disk.PartitionStat, usage func(mountPoint string) (*disk.UsageStat, error), metadata map[string]diskMetadata) ([]report.StorageInfo, error) {
	result := []report.StorageInfo{}
	seen := make(map[string]bool)
	var failures []error
	for _, partition := range partitions {
		if pseudoFilesystems[partition.Fstype] || seen[partition.Mountpoint] {
			continue
		}
		seen[partition.Mountpoint] = true

		stat, err := usage(partition.Mountpoint)
		if err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", partition.Mountpoint, err))
			continue
		}
		if stat == nil || stat.Total == 0 {
			continue
		}

		volume := report.StorageInfo{
			Name:       partition.Device,
			MountPoint: partition.Mountpoint,
			Filesystem: partition.Fstype,
			TotalBytes: stat.Total,
			UsedBytes:  stat.Used,
			FreeBytes:  stat.Free,
			Usage:      report.NewMetric(stat.UsedPercent),
		}
		if device, ok := metadata[filepath.Base(partition.Device)]; ok {
			volume.Vendor = device.vendor
			volume.Model = device.model
			volume.SerialNumber = device.serial
			volume.DriveType = device.driveType
			volume.Interface = device.controller
			volume.Removable = device.removable
		}
		result = append(result, volume)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].MountPoint < result[j].MountPoint
	})
	return result, errors.Join(failures...)
}

// blockMetadata indexes disk descriptions by the kernel name of the
// disk and each of its partitions.
func blockMetadata(info *block.Info) map[string]diskMetadata {
	metadata := make(map[string]diskMetadata)
	if info == nil {
		return metadata
	}
	for _, device := range info.Disks {
		if device == nil {
			continue
		}
		description := diskMetadata{
			vendor:     known(device.Vendor),
			model:      known(strings.ReplaceAll(device.Model, "_", " ")),
			serial:     known(device.SerialNumber),
			driveType:  known(device.DriveType.String()),
			controller: known(device.StorageController.String()),
			removable:  device.IsRemovable,
		}
		metadata[device.Name] = description
		for _, partition := range device.Partitions {
			if partition != nil {
				metadata[partition.Name] = description
			}
		}
	}
	return metadata
}
