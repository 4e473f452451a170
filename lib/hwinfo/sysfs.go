// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadSysfsString reads a single-line sysfs file and returns its
// trimmed content. Returns "" on any error.
func ReadSysfsString(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// ReadDriverName returns the name of the kernel driver bound to a
// sysfs device (the basename of its driver symlink), or "" if none.
func ReadDriverName(devicePath string) string {
	link, err := os.Readlink(filepath.Join(devicePath, "driver"))
	if err != nil {
		return ""
	}
	return filepath.Base(link)
}

// ReadSysfsInt reads an integer from a sysfs file. Returns 0 on error.
func ReadSysfsInt(path string) int {
	value := ReadSysfsString(path)
	if value == "" {
		return 0
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

// ReadSysfsInt64 reads a 64-bit integer from a sysfs file. Returns 0 on error.
func ReadSysfsInt64(path string) int64 {
	value := ReadSysfsString(path)
	if value == "" {
		return 0
	}
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

// ReadSysfsHex16 reads a 16-bit hexadecimal ID such as a USB idVendor
// file ("8087"). Returns 0 on error.
func ReadSysfsHex16(path string) uint16 {
	return parseHex16(ReadSysfsString(path))
}

// parseHex16 parses "8086" or "0x8086". Returns 0 on error.
func parseHex16(value string) uint16 {
	value = strings.TrimPrefix(strings.ToLower(value), "0x")
	if value == "" {
		return 0
	}
	result, err := strconv.ParseUint(value, 16, 16)
	if err != nil {
		return 0
	}
	return uint16(result)
}

// placeholderValues are strings firmware vendors put in DMI and SMBIOS
// fields they did not fill in. Compared lowercase.
var placeholderValues = map[string]bool{
	"":                         true,
	"0":                        true,
	"unknown":                  true,
	"none":                     true,
	"n/a":                      true,
	"not specified":            true,
	"not available":            true,
	"default string":           true,
	"to be filled by o.e.m.":   true,
	"system product name":      true,
	"system manufacturer":      true,
	"system serial number":     true,
	"base board serial number": true,
}

// known returns value trimmed, or "" if it is a firmware placeholder.
func known(value string) string {
	value = strings.TrimSpace(value)
	lower := strings.ToLower(value)
	if placeholderValues[lower] || strings.Contains(lower, "empty") {
		return ""
	}
	return value
}
