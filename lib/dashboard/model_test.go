// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/hwcheck/lib/config"
	"github.com/bureau-foundation/hwcheck/lib/render"
	"github.com/bureau-foundation/hwcheck/lib/report"
	"github.com/bureau-foundation/hwcheck/lib/tui"
)

func testReport(cpuUsage float64) *report.Report {
	r := &report.Report{
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Summary: &report.Section[report.SystemSummary]{Status: report.StatusOK, Data: report.SystemSummary{
			Hostname: "workstation",
		}},
		CPU: &report.Section[report.CPUInfo]{Status: report.StatusOK, Data: report.CPUInfo{
			Model: "Test CPU",
			Usage: report.NewMetric(cpuUsage),
		}},
		RAM: &report.Section[report.RAMInfo]{Status: report.StatusOK, Data: report.RAMInfo{
			TotalBytes: 16 << 30,
			UsedBytes:  8 << 30,
			Usage:      report.NewMetric(50),
		}},
		PCI: &report.Section[[]report.PCIDevice]{Status: report.StatusOK, Data: []report.PCIDevice{{
			Slot: "0000:00:02.0", VendorName: "Intel Corporation",
		}}},
		Battery: &report.Section[[]report.BatteryInfo]{Status: report.StatusOK, Data: []report.BatteryInfo{}},
	}
	r.Classify(config.Default())
	return r
}

// testModel returns a sized model whose collector records selections.
func testModel(t *testing.T, selections *[]report.Selection) Model {
	t.Helper()
	collect := func(ctx context.Context, selection report.Selection) *report.Report {
		*selections = append(*selections, selection)
		refreshed := testReport(97)
		refreshed.GeneratedAt = time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC)
		refreshed.PCI = nil
		refreshed.Battery = nil
		return refreshed
	}
	styles := render.NewStyles(io.Discard, render.ColorNever, tui.DefaultTheme)
	model := New(context.Background(), testReport(20), collect, styles, time.Second)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func press(model Model, keys ...string) Model {
	for _, name := range keys {
		var message tea.KeyMsg
		switch name {
		case "tab":
			message = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			message = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "right":
			message = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			message = tea.KeyMsg{Type: tea.KeyLeft}
		default:
			message = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
		}
		updated, _ := model.Update(message)
		model = updated.(Model)
	}
	return model
}

func TestTabNavigation(t *testing.T) {
	var selections []report.Selection
	model := testModel(t, &selections)

	tests := []struct {
		keys []string
		want int
	}{
		{nil, 0},
		{[]string{"tab"}, 1},
		{[]string{"right", "right"}, 2},
		{[]string{"shift+tab"}, 4},
		{[]string{"left", "left"}, 3},
		{[]string{"5"}, 4},
		{[]string{"5", "tab"}, 0},
		{[]string{"3", "1"}, 0},
	}
	for _, test := range tests {
		got := press(model, test.keys...).activeTab
		if got != test.want {
			t.Errorf("after %v active tab = %d, want %d", test.keys, got, test.want)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	var selections []report.Selection
	model := testModel(t, &selections)

	for _, message := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, command := model.Update(message)
		if command == nil {
			t.Fatalf("%s should return a command", message)
		}
		if _, isQuit := command().(tea.QuitMsg); !isQuit {
			t.Errorf("%s: expected QuitMsg", message)
		}
	}
}

func TestViewShowsActiveTab(t *testing.T) {
	var selections []report.Selection
	model := testModel(t, &selections)

	view := ansi.Strip(model.View())
	for _, want := range []string{"1 Overview", "5 Health", "System Summary", "workstation", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("overview missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "CPU Information") {
		t.Error("overview should not show the CPU section")
	}

	view = ansi.Strip(press(model, "2").View())
	for _, want := range []string{"CPU Information", "Memory Information", "CPU ", "20.0%", "Test CPU"} {
		if !strings.Contains(view, want) {
			t.Errorf("CPU & RAM tab missing %q:\n%s", want, view)
		}
	}

	view = ansi.Strip(press(model, "5").View())
	if !strings.Contains(view, "No battery detected") {
		t.Errorf("health tab missing empty-battery message:\n%s", view)
	}
}

func TestRefreshCollectsLiveDomainsAndMerges(t *testing.T) {
	var selections []report.Selection
	model := testModel(t, &selections)

	updated, command := model.Update(refreshTickMsg(time.Now()))
	model = updated.(Model)
	if command == nil {
		t.Fatal("refresh tick should start a collection")
	}
	if !model.collecting {
		t.Error("collecting = false after refresh tick")
	}

	// A second tick while collecting only reschedules.
	_, _ = model.Update(refreshTickMsg(time.Now()))

	message := command()
	if len(selections) != 1 {
		t.Fatalf("collector called %d times, want 1", len(selections))
	}
	for _, domain := range report.AllDomains() {
		wantLive := domain == report.DomainSummary || domain == report.DomainCPU ||
			domain == report.DomainRAM || domain == report.DomainNetwork
		if selections[0].Has(domain) != wantLive {
			t.Errorf("refresh selection has %s = %v, want %v", domain, selections[0].Has(domain), wantLive)
		}
	}

	updated, command = model.Update(message)
	model = updated.(Model)
	if command == nil {
		t.Error("a finished collection should schedule the next refresh")
	}
	if model.collecting {
		t.Error("collecting = true after results arrived")
	}
	if model.report.CPU.Data.Usage.Value != 97 {
		t.Errorf("CPU usage = %v, want refreshed 97", model.report.CPU.Data.Usage.Value)
	}
	if model.report.PCI == nil || model.report.Battery == nil {
		t.Error("inventory sections were dropped by the merge")
	}

	view := ansi.Strip(press(model, "2").View())
	if !strings.Contains(view, "97.0%") {
		t.Errorf("refreshed usage not shown:\n%s", view)
	}
}

func TestViewBeforeResize(t *testing.T) {
	styles := render.NewStyles(io.Discard, render.ColorNever, tui.DefaultTheme)
	model := New(context.Background(), testReport(10), nil, styles, time.Second)
	if view := model.View(); !strings.Contains(view, "Collecting") {
		t.Errorf("view before first resize = %q", view)
	}
}
