// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// Theme defines the color palette for hwcheck's terminal output. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Section titles and table chrome.
	TitleForeground  lipgloss.Color
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Severity colors for classified metrics.
	SeverityNormal   lipgloss.Color
	SeverityWarning  lipgloss.Color
	SeverityCritical lipgloss.Color

	// Section status colors. Unsupported sections are expected on
	// some platforms and use FaintText.
	StatusPrivilege lipgloss.Color
	StatusFailed    lipgloss.Color

	// Dashboard tab bar.
	ActiveTabForeground lipgloss.Color
	ActiveTabBackground lipgloss.Color
}

// SeverityColor returns the color for a severity. Unclassified values
// use NormalText.
func (theme Theme) SeverityColor(severity report.Severity) lipgloss.Color {
	switch severity {
	case report.SeverityNormal:
		return theme.SeverityNormal
	case report.SeverityWarning:
		return theme.SeverityWarning
	case report.SeverityCritical:
		return theme.SeverityCritical
	default:
		return theme.NormalText
	}
}

// StatusColor returns the color for a section status notice.
func (theme Theme) StatusColor(status report.Status) lipgloss.Color {
	switch status {
	case report.StatusOK:
		return theme.NormalText
	case report.StatusPrivilegeRequired:
		return theme.StatusPrivilege
	case report.StatusFailed:
		return theme.StatusFailed
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	TitleForeground:  lipgloss.Color("51"), // cyan
	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	SeverityNormal:   lipgloss.Color("114"), // green
	SeverityWarning:  lipgloss.Color("220"), // yellow/amber
	SeverityCritical: lipgloss.Color("196"), // bright red

	StatusPrivilege: lipgloss.Color("220"),
	StatusFailed:    lipgloss.Color("196"),

	ActiveTabForeground: lipgloss.Color("16"),
	ActiveTabBackground: lipgloss.Color("51"),
}
