// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the hwcheck command tree: the root report
// command with its domain, format, and output flags, plus the config
// and version subcommands.
//
// Everything the tree touches outside the process (stdout, the
// hardware source, the logger) is supplied through [Environment], so
// tests can run the full command line against a fake
// [report.Source] and a buffer.
package commands
