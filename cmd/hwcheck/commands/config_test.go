// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/hwcheck/lib/config"
)

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")

	h := newHarness()
	if err := h.run(t, "config", "init", path); err != nil {
		t.Fatalf("config init: %v", err)
	}
	thresholds, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if thresholds != config.Default() {
		t.Errorf("written thresholds = %+v, want defaults", thresholds)
	}

	err = newHarness().run(t, "config", "init", path)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("second init error = %v, want already exists", err)
	}

	if err := os.WriteFile(path, []byte("# edited\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := newHarness().run(t, "config", "init", "--force", path); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "# edited") {
		t.Error("--force did not overwrite the file")
	}
}

func TestConfigInit_DefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := newHarness().run(t, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(defaultConfigPath); err != nil {
		t.Errorf("default path not written: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	t.Setenv("HWCHECK_CONFIG", "")
	path := filepath.Join(t.TempDir(), "thresholds.jsonc")
	writeFile(t, path, `{
  // tighter limits for the build farm
  "storage_thresholds": {"warning": 60, "critical": 70}
}`)

	h := newHarness()
	if err := h.run(t, "config", "show", "--config", path); err != nil {
		t.Fatalf("config show: %v", err)
	}
	output := h.stdout.String()
	for _, want := range []string{"storage_thresholds:\n  warning: 60\n  critical: 70", "cpu_thresholds:\n  warning: 80\n  critical: 95"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	h = newHarness()
	if err := h.run(t, "config", "show"); err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "swap_thresholds:\n  warning: 50\n  critical: 80") {
		t.Errorf("defaults not shown:\n%s", h.stdout.String())
	}
}

func TestConfig_SubcommandRequired(t *testing.T) {
	h := newHarness()
	err := h.run(t, "config")
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Fatalf("error = %v, want subcommand required", err)
	}
	if !strings.Contains(h.stderr.String(), "init") || !strings.Contains(h.stderr.String(), "show") {
		t.Errorf("help missing subcommands:\n%s", h.stderr.String())
	}
}
