// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Format     string        `flag:"format,f" desc:"output format"`
		Verbose    bool          `flag:"verbose,v" desc:"enable debug logging"`
		Count      int           `flag:"count" desc:"number of samples"`
		Ratio      float64       `flag:"ratio" desc:"warning ratio"`
		Sample     time.Duration `flag:"sample" desc:"sampling window"`
		Recipients []string      `flag:"recipient,r" desc:"age recipient"`
		Untagged   string        // no flag tag, skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"-f", "json",
		"-v",
		"--count", "3",
		"--ratio", "0.8",
		"--sample", "500ms",
		"-r", "age1first",
		"--recipient", "age1second",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Format != "json" {
		t.Errorf("Format = %q, want json", p.Format)
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Count != 3 {
		t.Errorf("Count = %d, want 3", p.Count)
	}
	if p.Ratio != 0.8 {
		t.Errorf("Ratio = %g, want 0.8", p.Ratio)
	}
	if p.Sample != 500*time.Millisecond {
		t.Errorf("Sample = %v, want 500ms", p.Sample)
	}
	if len(p.Recipients) != 2 || p.Recipients[0] != "age1first" || p.Recipients[1] != "age1second" {
		t.Errorf("Recipients = %v, want [age1first age1second]", p.Recipients)
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field was bound")
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Format  string        `flag:"format" default:"table"`
		Refresh time.Duration `flag:"refresh" default:"2s"`
		Count   int           `flag:"count" default:"5"`
		Ratio   float64       `flag:"ratio" default:"0.5"`
		Color   bool          `flag:"color" default:"true"`
		Tags    []string      `flag:"tags" default:"x,y"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Format != "table" || p.Refresh != 2*time.Second || p.Count != 5 || p.Ratio != 0.5 || !p.Color {
		t.Errorf("defaults not applied: %+v", p)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "x" || p.Tags[1] != "y" {
		t.Errorf("Tags = %v, want [x y]", p.Tags)
	}
}

func TestBindFlags_EmbeddedStruct(t *testing.T) {
	type Common struct {
		Verbose bool `flag:"verbose,v"`
	}
	type params struct {
		Common
		Output string `flag:"output,o"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"-v", "-o", "report.json"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.Verbose || p.Output != "report.json" {
		t.Errorf("params = %+v, want verbose and output set", p)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	tests := []struct {
		name   string
		params any
		want   string
	}{
		{"not a pointer", struct{}{}, "pointer to a struct"},
		{"pointer to non-struct", new(string), "pointer to a struct"},
		{"unsupported type", &struct {
			Value complex128 `flag:"value"`
		}{}, "unsupported type"},
		{"bad default", &struct {
			Count int `flag:"count" default:"many"`
		}{}, "default for --count"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := BindFlags(test.params, pflag.NewFlagSet("test", pflag.ContinueOnError))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error = %q, want substring %q", err, test.want)
			}
		})
	}
}

func TestFlagsFromParams_PreservesDeclarationOrder(t *testing.T) {
	var p struct {
		Storage bool `flag:"storage"`
		CPU     bool `flag:"cpu"`
	}
	usages := FlagsFromParams("test", &p).FlagUsages()
	if strings.Index(usages, "--storage") > strings.Index(usages, "--cpu") {
		t.Errorf("flags reordered:\n%s", usages)
	}
}

func TestFlagsFromParams_PanicsOnInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	FlagsFromParams("test", "not a struct")
}
