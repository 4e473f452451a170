// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/bureau-foundation/hwcheck/lib/report"
	"github.com/bureau-foundation/hwcheck/lib/tui"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCBOR     Format = "cbor"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats returns every supported format in help-text order.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML, FormatCBOR, FormatMarkdown, FormatHTML}
}

// formatAliases are accepted spellings beyond the canonical names.
var formatAliases = map[string]Format{
	"yml": FormatYAML,
	"md":  FormatMarkdown,
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, format := range Formats() {
		if string(format) == lower {
			return format, nil
		}
	}
	if format, ok := formatAliases[lower]; ok {
		return format, nil
	}
	return "", fmt.Errorf("unknown format %q (valid: %s)", name, joinNames(Formats()))
}

// ColorMode controls ANSI color in human formats.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a color mode name, case-insensitively.
func ParseColorMode(name string) (ColorMode, error) {
	modes := []ColorMode{ColorAuto, ColorAlways, ColorNever}
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, mode := range modes {
		if string(mode) == lower {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown color mode %q (valid: %s)", name, joinNames(modes))
}

// Options configures Render. The zero value renders a table in auto
// color mode with the default theme.
type Options struct {
	Format Format
	Color  ColorMode
	Theme  tui.Theme

	// Terminal decides auto color mode when the destination is a
	// wrapper around the terminal rather than the terminal itself.
	// Nil means the destination writer.
	Terminal io.Writer
}

// Render writes r to w in the requested format.
func Render(w io.Writer, r *report.Report, options Options) error {
	if options.Theme == (tui.Theme{}) {
		options.Theme = tui.DefaultTheme
	}
	terminal := options.Terminal
	if terminal == nil {
		terminal = w
	}
	styles := NewStyles(terminal, options.Color, options.Theme)

	switch options.Format {
	case FormatTable, "":
		return writeString(w, styles.Report(r))
	case FormatJSON:
		return renderJSON(w, r, styles)
	case FormatYAML:
		return renderYAML(w, r, styles)
	case FormatCBOR:
		return renderCBOR(w, r)
	case FormatMarkdown:
		return writeString(w, Markdown(r))
	case FormatHTML:
		return renderHTML(w, r)
	default:
		return fmt.Errorf("unknown format %q", options.Format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func joinNames[T ~string](names []T) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = string(name)
	}
	return strings.Join(parts, ", ")
}
