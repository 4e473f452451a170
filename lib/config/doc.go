// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the warning/critical thresholds that hwcheck
// uses to classify numeric metrics.
//
// Thresholds come from a single file named by either the --config flag
// (via [LoadFile]) or the HWCHECK_CONFIG environment variable (via
// [Load]). There is no automatic file search. When no file is named,
// the built-in [Default] thresholds apply.
//
// The file is YAML with one section per metric category:
//
//	cpu_thresholds:
//	  warning: 75
//	  critical: 90
//	storage_thresholds:
//	  warning: 85
//	  critical: 95
//
// Files ending in .json or .jsonc are also accepted; comments and
// trailing commas are stripped before decoding.
//
// Threshold problems never abort a run. An unreadable or malformed
// file yields the defaults plus an [*Error] the caller logs as a
// warning.
//
// This package depends on no other hwcheck packages.
package config
