// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/hwcheck/lib/render"
	"github.com/bureau-foundation/hwcheck/lib/report"
	"github.com/bureau-foundation/hwcheck/lib/tui"
)

// Collector produces a report for a selection. [report.Aggregator]'s
// Collect method satisfies it.
type Collector func(ctx context.Context, selection report.Selection) *report.Report

// Tab is one dashboard page.
type Tab struct {
	Name    string
	Domains []report.Domain

	// Gauges shows CPU and RAM usage bars above the sections.
	Gauges bool
}

// Tabs are the dashboard pages in display order.
var Tabs = []Tab{
	{Name: "Overview", Domains: []report.Domain{report.DomainSummary}},
	{Name: "CPU & RAM", Domains: []report.Domain{report.DomainCPU, report.DomainRAM}, Gauges: true},
	{Name: "Storage & Network", Domains: []report.Domain{report.DomainStorage, report.DomainNetwork}},
	{Name: "PCI & USB", Domains: []report.Domain{report.DomainPCI, report.DomainUSB}},
	{Name: "Health", Domains: []report.Domain{report.DomainMotherboard, report.DomainBattery}},
}

// LiveDomains are re-collected on every refresh.
var LiveDomains = report.Select(
	report.DomainSummary,
	report.DomainCPU,
	report.DomainRAM,
	report.DomainNetwork,
)

// Rows taken by the tab bar, the blank line under it, and the footer.
const chromeHeight = 3

// gaugeWidth is the width of the CPU and RAM usage bars.
const gaugeWidth = 40

type refreshTickMsg time.Time

type collectedMsg struct {
	report *report.Report
}

// Model is the dashboard's bubbletea model.
type Model struct {
	ctx     context.Context
	collect Collector
	refresh time.Duration

	keys   KeyMap
	styles *render.Styles
	theme  tui.Theme

	report     *report.Report
	activeTab  int
	collecting bool
	lastUpdate time.Time

	width    int
	height   int
	ready    bool
	viewport viewport.Model
}

// New returns a dashboard showing initial and refreshing it through
// collect every refresh interval. ctx bounds every collection.
func New(ctx context.Context, initial *report.Report, collect Collector, styles *render.Styles, refresh time.Duration) Model {
	return Model{
		ctx:        ctx,
		collect:    collect,
		refresh:    refresh,
		keys:       DefaultKeyMap,
		styles:     styles,
		theme:      styles.Theme(),
		report:     initial,
		lastUpdate: initial.GeneratedAt,
	}
}

// Run runs the dashboard full-screen until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, model Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// Init schedules the first refresh.
func (model Model) Init() tea.Cmd {
	return model.scheduleRefresh()
}

// Update handles key presses, resizes, refresh ticks and collection
// results.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.NextTab):
			model.switchTab((model.activeTab + 1) % len(Tabs))
		case key.Matches(message, model.keys.PreviousTab):
			model.switchTab((model.activeTab + len(Tabs) - 1) % len(Tabs))
		case key.Matches(message, model.keys.JumpTab):
			model.switchTab(int(message.String()[0] - '1'))
		case key.Matches(message, model.keys.Up):
			model.viewport.LineUp(1)
		case key.Matches(message, model.keys.Down):
			model.viewport.LineDown(1)
		case key.Matches(message, model.keys.PageUp):
			model.viewport.ViewUp()
		case key.Matches(message, model.keys.PageDown):
			model.viewport.ViewDown()
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		bodyHeight := max(1, message.Height-chromeHeight)
		if !model.ready {
			model.viewport = viewport.New(message.Width-1, bodyHeight)
			model.ready = true
		} else {
			model.viewport.Width = message.Width - 1
			model.viewport.Height = bodyHeight
		}
		model.syncContent()

	case refreshTickMsg:
		if model.collecting {
			return model, model.scheduleRefresh()
		}
		model.collecting = true
		return model, model.collectLive()

	case collectedMsg:
		model.collecting = false
		if message.report != nil {
			model.report.Merge(message.report)
			model.lastUpdate = message.report.GeneratedAt
		}
		model.syncContent()
		return model, model.scheduleRefresh()
	}
	return model, nil
}

func (model Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(model.refresh, func(now time.Time) tea.Msg {
		return refreshTickMsg(now)
	})
}

func (model Model) collectLive() tea.Cmd {
	ctx, collect := model.ctx, model.collect
	return func() tea.Msg {
		return collectedMsg{report: collect(ctx, LiveDomains)}
	}
}

func (model *Model) switchTab(tab int) {
	if tab < 0 || tab >= len(Tabs) || tab == model.activeTab {
		return
	}
	model.activeTab = tab
	model.syncContent()
	model.viewport.GotoTop()
}

// syncContent re-renders the active tab into the viewport, keeping the
// scroll position when the content is only refreshed.
func (model *Model) syncContent() {
	if !model.ready {
		return
	}
	offset := model.viewport.YOffset
	model.viewport.SetContent(model.tabContent(model.activeTab))
	model.viewport.SetYOffset(offset)
}

// tabContent renders the sections of one tab.
func (model Model) tabContent(tab int) string {
	var parts []string
	if Tabs[tab].Gauges {
		if gauges := model.gauges(); gauges != "" {
			parts = append(parts, gauges)
		}
	}
	for _, domain := range Tabs[tab].Domains {
		if section, ok := render.SectionFor(model.report, domain); ok {
			parts = append(parts, model.styles.Section(section))
		}
	}
	if len(parts) == 0 {
		return lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Nothing collected for this tab.")
	}
	return strings.Join(parts, "\n")
}

// gauges renders CPU and RAM usage bars in their severity colors.
func (model Model) gauges() string {
	var lines []string
	if model.report.CPU != nil {
		lines = append(lines, model.gauge("CPU", model.report.CPU.Data.Usage))
	}
	if model.report.RAM != nil {
		lines = append(lines, model.gauge("RAM", model.report.RAM.Data.Usage))
		if model.report.RAM.Data.SwapTotalBytes > 0 {
			lines = append(lines, model.gauge("Swap", model.report.RAM.Data.SwapUsage))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (model Model) gauge(label string, metric report.Metric) string {
	bar := progress.New(
		progress.WithSolidFill(string(model.theme.SeverityColor(metric.Severity))),
		progress.WithoutPercentage(),
		progress.WithWidth(gaugeWidth),
	)
	fraction := min(max(metric.Value/100, 0), 1)
	return fmt.Sprintf("%-5s %s %5.1f%%", label, bar.ViewAs(fraction), metric.Value)
}

// View renders the tab bar, the scrolling body and the footer.
func (model Model) View() string {
	if !model.ready {
		return "Collecting hardware information..."
	}

	body := model.viewport.View()
	if scrollbar := tui.RenderScrollbar(model.theme, model.viewport.Height,
		model.viewport.TotalLineCount(), model.viewport.VisibleLineCount(), model.viewport.YOffset); scrollbar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, scrollbar)
	}

	return lipgloss.JoinVertical(lipgloss.Left, model.tabBar(), "", body, model.footer())
}

func (model Model) tabBar() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.ActiveTabForeground).
		Background(model.theme.ActiveTabBackground).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(model.theme.FaintText).Padding(0, 1)

	labels := make([]string, len(Tabs))
	for index, tab := range Tabs {
		label := fmt.Sprintf("%d %s", index+1, tab.Name)
		if index == model.activeTab {
			labels[index] = active.Render(label)
		} else {
			labels[index] = inactive.Render(label)
		}
	}
	return ansi.Truncate(strings.Join(labels, " "), model.width, "…")
}

func (model Model) footer() string {
	var parts []string
	for _, binding := range model.keys.helpBindings() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	status := "updated " + model.lastUpdate.Format("15:04:05")
	if model.collecting {
		status = "refreshing..."
	}
	footer := strings.Join(parts, " • ") + "  " + status
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(ansi.Truncate(footer, model.width, "…"))
}
