// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/hwcheck/lib/report"
	"github.com/bureau-foundation/hwcheck/lib/tui"
)

// Styles renders sections as lipgloss tables for one destination.
type Styles struct {
	renderer *lipgloss.Renderer
	theme    tui.Theme
}

// NewStyles returns Styles whose color profile is decided by mode and,
// in auto mode, by whether w is a terminal.
func NewStyles(w io.Writer, mode ColorMode, theme tui.Theme) *Styles {
	profile := colorProfile(w, mode)
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	// The renderer re-detects the profile from the writer unless it is
	// set explicitly.
	renderer.SetColorProfile(profile)
	return &Styles{renderer: renderer, theme: theme}
}

func colorProfile(w io.Writer, mode ColorMode) termenv.Profile {
	switch mode {
	case ColorAlways:
		return termenv.ANSI256
	case ColorNever:
		return termenv.Ascii
	default:
		profile := termenv.NewOutput(w).EnvColorProfile()
		// The theme is a 256-color palette; TrueColor adds nothing.
		if profile == termenv.TrueColor {
			profile = termenv.ANSI256
		}
		return profile
	}
}

// Colored reports whether output will contain ANSI sequences.
func (s *Styles) Colored() bool {
	return s.renderer.ColorProfile() != termenv.Ascii
}

// Profile returns the color profile in effect.
func (s *Styles) Profile() termenv.Profile {
	return s.renderer.ColorProfile()
}

// Theme returns the palette in use.
func (s *Styles) Theme() tui.Theme {
	return s.theme
}

// Report renders every section of r separated by blank lines.
func (s *Styles) Report(r *report.Report) string {
	sections := Sections(r)
	rendered := make([]string, len(sections))
	for i, section := range sections {
		rendered[i] = s.Section(section)
	}
	return strings.Join(rendered, "\n")
}

// Section renders a title, the notice of a degraded section, and each
// grid.
func (s *Styles) Section(section Section) string {
	var builder strings.Builder
	builder.WriteString(s.renderer.NewStyle().Bold(true).Foreground(s.theme.TitleForeground).Render(section.Title))
	builder.WriteByte('\n')
	if notice := s.Notice(section); notice != "" {
		builder.WriteString(notice)
		builder.WriteByte('\n')
	}
	builder.WriteString(s.Grids(section.Grids))
	return builder.String()
}

// Notice renders the status line of a degraded section, or "" for a
// healthy one.
func (s *Styles) Notice(section Section) string {
	if section.Status == report.StatusOK && section.Notice == "" {
		return ""
	}
	text := string(section.Status)
	if section.Notice != "" {
		text += ": " + section.Notice
	}
	return s.renderer.NewStyle().Foreground(s.theme.StatusColor(section.Status)).Render("! " + text)
}

// Grids renders each grid followed by a newline.
func (s *Styles) Grids(grids []Grid) string {
	var builder strings.Builder
	for _, grid := range grids {
		if len(grid.Rows) == 0 {
			if grid.Empty != "" {
				builder.WriteString(s.renderer.NewStyle().Faint(true).Render(grid.Empty))
				builder.WriteByte('\n')
			}
			continue
		}
		builder.WriteString(s.Table(grid))
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Table renders one grid with a rounded border. Cells with a severity
// take the theme's severity color.
func (s *Styles) Table(grid Grid) string {
	base := s.renderer.NewStyle().Padding(0, 1)
	header := base.Bold(true).Foreground(s.theme.HeaderForeground)

	rendered := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.renderer.NewStyle().Foreground(s.theme.BorderColor)).
		Headers(grid.Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if row >= 0 && row < len(grid.Rows) && col < len(grid.Rows[row]) {
				if severity := grid.Rows[row][col].Severity; severity != "" {
					return base.Foreground(s.theme.SeverityColor(severity))
				}
			}
			return base
		})
	for _, cells := range grid.Rows {
		texts := make([]string, len(cells))
		for i, cell := range cells {
			texts[i] = cell.Text
		}
		rendered.Row(texts...)
	}
	return rendered.String()
}
