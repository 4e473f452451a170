// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

func TestMemoryModulesNoTable(t *testing.T) {
	host := &Host{sysRoot: t.TempDir()}
	modules, err := host.memoryModules()
	if modules == nil || len(modules) != 0 {
		t.Errorf("modules = %v, want empty non-nil list", modules)
	}
	if err != nil {
		t.Errorf("memoryModules() error = %v, want nil without a table", err)
	}
}

func TestRAMWithoutTableKeepsTotals(t *testing.T) {
	host := &Host{sysRoot: t.TempDir()}
	info, err := host.RAM(context.Background())
	if status := report.StatusOf(err); status != report.StatusOK {
		t.Fatalf("StatusOf(%v) = %s, want ok", err, status)
	}
	if info.TotalBytes == 0 {
		t.Error("TotalBytes = 0, want the kernel's memory total")
	}
	if info.Modules == nil || len(info.Modules) != 0 {
		t.Errorf("Modules = %v, want empty non-nil list", info.Modules)
	}
}

func TestMemoryModulesUnreadableTable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read a mode 0000 file")
	}
	root := t.TempDir()
	writeSyntheticFile(t, root, dmiTable, "")
	if err := os.Chmod(filepath.Join(root, dmiTable), 0000); err != nil {
		t.Fatal(err)
	}

	host := &Host{sysRoot: root}
	_, err := host.memoryModules()
	if !errors.Is(err, report.ErrPrivilegeRequired) {
		t.Fatalf("error = %v, want ErrPrivilegeRequired", err)
	}
	if !strings.Contains(err.Error(), "memory module details: requires elevated privilege") {
		t.Errorf("error message = %q", err.Error())
	}
}
