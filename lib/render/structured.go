// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/hwcheck/lib/codec"
	"github.com/bureau-foundation/hwcheck/lib/report"
)

func renderJSON(w io.Writer, r *report.Report, styles *Styles) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	data = append(data, '\n')
	return highlight(w, data, "json", styles)
}

func renderYAML(w io.Writer, r *report.Report, styles *Styles) error {
	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return highlight(w, buffer.Bytes(), "yaml", styles)
}

func renderCBOR(w io.Writer, r *report.Report) error {
	data, err := codec.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding CBOR: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// highlight writes source to w, syntax-highlighted when styles has
// color enabled.
func highlight(w io.Writer, source []byte, language string, styles *Styles) error {
	if !styles.Colored() {
		_, err := w.Write(source)
		return err
	}
	formatter := "terminal256"
	if styles.Profile() == termenv.ANSI {
		formatter = "terminal16"
	}
	return quick.Highlight(w, string(source), language, formatter, "monokai")
}
