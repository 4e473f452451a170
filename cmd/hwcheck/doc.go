// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Hwcheck reports hardware inventory and system health: CPU, memory,
// storage, network interfaces, USB and PCI devices, motherboard and
// BIOS, and batteries. Utilization and temperature readings are
// classified against warning and critical thresholds, and the report
// is rendered as colored tables, JSON, YAML, CBOR, Markdown or HTML,
// or shown in a live full-screen dashboard (--tui).
package main
