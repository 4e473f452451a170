// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dashboard is the interactive hwcheck view: a bubbletea
// program with one tab per group of domains.
//
// The model starts from a complete report collected before the
// program launches. Every refresh interval it re-collects only the
// domains that change at runtime (summary, CPU, RAM, network) and
// merges them into the report, so slow inventory collectors such as
// PCI and SMBIOS run once. Collection happens in a tea.Cmd; the model
// never blocks in Update.
//
// Section tables are the same [render.Section]s the static table
// output uses, drawn inside a scrolling viewport. The CPU & RAM tab
// adds usage gauges colored by severity.
package dashboard
