// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// Markdown renders r as a GitHub-flavored Markdown document. Cells
// with a warning or critical severity are bolded and labeled.
func Markdown(r *report.Report) string {
	var builder strings.Builder
	builder.WriteString("# Hardware Report\n\n")
	if !r.GeneratedAt.IsZero() {
		fmt.Fprintf(&builder, "Generated %s\n\n", r.GeneratedAt.UTC().Format(time.RFC3339))
	}
	for _, section := range Sections(r) {
		fmt.Fprintf(&builder, "## %s\n\n", section.Title)
		if section.Status != report.StatusOK || section.Notice != "" {
			fmt.Fprintf(&builder, "> **%s**", section.Status)
			if section.Notice != "" {
				fmt.Fprintf(&builder, ": %s", escapeMarkdown(section.Notice))
			}
			builder.WriteString("\n\n")
		}
		for _, grid := range section.Grids {
			writeMarkdownGrid(&builder, grid)
		}
	}
	return builder.String()
}

func writeMarkdownGrid(builder *strings.Builder, grid Grid) {
	if len(grid.Rows) == 0 {
		if grid.Empty != "" {
			fmt.Fprintf(builder, "_%s_\n\n", grid.Empty)
		}
		return
	}

	headers := make([]string, len(grid.Headers))
	separators := make([]string, len(grid.Headers))
	for i, header := range grid.Headers {
		headers[i] = escapeMarkdown(header)
		separators[i] = "---"
	}
	fmt.Fprintf(builder, "| %s |\n", strings.Join(headers, " | "))
	fmt.Fprintf(builder, "| %s |\n", strings.Join(separators, " | "))

	for _, cells := range grid.Rows {
		texts := make([]string, len(cells))
		for i, cell := range cells {
			text := escapeMarkdown(cell.Text)
			if cell.Severity == report.SeverityWarning || cell.Severity == report.SeverityCritical {
				text = fmt.Sprintf("**%s (%s)**", text, cell.Severity)
			}
			texts[i] = text
		}
		fmt.Fprintf(builder, "| %s |\n", strings.Join(texts, " | "))
	}
	builder.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(`|`, `\|`, `*`, `\*`, `_`, `\_`, "`", "\\`")

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

// renderHTML converts the Markdown rendering to a standalone HTML page.
func renderHTML(w io.Writer, r *report.Report) error {
	var body bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert([]byte(Markdown(r)), &body); err != nil {
		return fmt.Errorf("converting report to HTML: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Hardware Report</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	_, err := w.Write(page.Bytes())
	return err
}
