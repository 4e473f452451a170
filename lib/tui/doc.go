// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the color palette and small drawing helpers
// shared by hwcheck's terminal outputs: the static table renderer and
// the interactive dashboard use the same [Theme] so severity and
// status colors mean the same thing in both.
package tui
