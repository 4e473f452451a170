// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar draws a one-column scrollbar of the given height for
// a viewport showing visibleLines of totalLines starting at
// scrollOffset. Returns "" when the content fits, so callers can skip
// the gutter entirely.
func RenderScrollbar(theme Theme, height, totalLines, visibleLines, scrollOffset int) string {
	if height <= 0 || totalLines <= visibleLines || totalLines <= 0 {
		return ""
	}

	thumbSize := max(1, height*visibleLines/totalLines)
	thumbOffset := 0
	if scrollable, track := totalLines-visibleLines, height-thumbSize; track > 0 {
		thumbOffset = min(scrollOffset*track/scrollable, track)
	}

	track := lipgloss.NewStyle().Foreground(theme.BorderColor).Render("│")
	thumb := lipgloss.NewStyle().Foreground(theme.TitleForeground).Render("┃")

	lines := make([]string, height)
	for index := range lines {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			lines[index] = thumb
		} else {
			lines[index] = track
		}
	}
	return strings.Join(lines, "\n")
}
