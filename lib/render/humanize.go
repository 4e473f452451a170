// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// FormatUptime renders seconds as "3d 4h 5m", "4h 5m", or "5m".
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	switch {
	case days > 0:
		return strconv.FormatUint(days, 10) + "d " + strconv.FormatUint(hours, 10) + "h " + strconv.FormatUint(minutes, 10) + "m"
	case hours > 0:
		return strconv.FormatUint(hours, 10) + "h " + strconv.FormatUint(minutes, 10) + "m"
	default:
		return strconv.FormatUint(minutes, 10) + "m"
	}
}

// FormatLinkSpeed renders a link rate in Mbit/s, switching to Gbit/s
// at 1000: "1.5 Mbit/s", "480 Mbit/s", "10 Gbit/s".
func FormatLinkSpeed(mbps float64) string {
	if mbps >= 1000 {
		return strconv.FormatFloat(mbps/1000, 'f', -1, 64) + " Gbit/s"
	}
	return strconv.FormatFloat(mbps, 'f', -1, 64) + " Mbit/s"
}

func formatBytes(bytes uint64) string {
	return humanize.IBytes(bytes)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}

// formatCaches renders a cache hierarchy as "L1d 48 KiB, L1i 32 KiB, L2 2.0 MiB".
func formatCaches(caches []report.CPUCache) string {
	parts := make([]string, 0, len(caches))
	for _, cache := range caches {
		label := "L" + strconv.Itoa(cache.Level)
		switch cache.Type {
		case "data":
			label += "d"
		case "instruction":
			label += "i"
		}
		parts = append(parts, label+" "+humanize.IBytes(uint64(cache.SizeKB)*1024))
	}
	return strings.Join(parts, ", ")
}
