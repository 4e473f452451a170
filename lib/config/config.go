// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the environment variable [Load] reads the
// config path from.
const EnvironmentVariable = "HWCHECK_CONFIG"

// Limits is a warning/critical pair for one metric category. A value
// strictly greater than Critical is critical; strictly greater than
// Warning is a warning.
type Limits struct {
	Warning  float64 `yaml:"warning" json:"warning"`
	Critical float64 `yaml:"critical" json:"critical"`
}

// Thresholds holds the limits for every metric category hwcheck
// classifies. It is loaded once at startup and never modified.
type Thresholds struct {
	// CPU applies to aggregate and per-core utilization (percent).
	CPU Limits `yaml:"cpu_thresholds" json:"cpu_thresholds"`

	// RAM applies to main memory utilization (percent).
	RAM Limits `yaml:"ram_thresholds" json:"ram_thresholds"`

	// Swap applies to swap utilization (percent).
	Swap Limits `yaml:"swap_thresholds" json:"swap_thresholds"`

	// Storage applies to per-filesystem utilization (percent).
	Storage Limits `yaml:"storage_thresholds" json:"storage_thresholds"`

	// Temperature applies to the CPU package temperature (Celsius).
	Temperature Limits `yaml:"temperature_thresholds" json:"temperature_thresholds"`
}

// Default returns the built-in thresholds used when no config file is
// given or the file cannot be used.
func Default() Thresholds {
	return Thresholds{
		CPU:         Limits{Warning: 80, Critical: 95},
		RAM:         Limits{Warning: 80, Critical: 95},
		Swap:        Limits{Warning: 50, Critical: 80},
		Storage:     Limits{Warning: 80, Critical: 95},
		Temperature: Limits{Warning: 80, Critical: 95},
	}
}

// Error reports a threshold file that could not be used as written.
// It is never fatal: the function that returns it also returns usable
// thresholds.
type Error struct {
	// Path is the config file involved.
	Path string

	// Err describes what was wrong.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Load loads thresholds from the file named by HWCHECK_CONFIG. When
// the variable is unset, Load returns [Default] and a nil error.
func Load() (Thresholds, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads thresholds from path. Categories absent from the file
// keep their defaults.
//
// The returned Thresholds are always usable. If the file cannot be
// read or decoded, the result is [Default] and the error is an
// [*Error]. If the file decodes but some categories hold invalid
// limits, those categories fall back to their defaults, the rest of
// the file is honored, and the error lists the rejected categories.
func LoadFile(path string) (Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), &Error{Path: path, Err: err}
	}

	thresholds, err := decode(path, data)
	if err != nil {
		return Default(), &Error{Path: path, Err: err}
	}

	if err := thresholds.Validate(); err != nil {
		return thresholds, &Error{Path: path, Err: err}
	}
	return thresholds, nil
}

// decode parses file contents on top of the defaults. JSON is a subset
// of YAML, so JSONC files only need their comments stripped.
func decode(path string, data []byte) (Thresholds, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	thresholds := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return thresholds, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&thresholds); err != nil {
		return Default(), fmt.Errorf("decoding thresholds: %w", err)
	}
	return thresholds, nil
}

// Validate resets every category whose limits are negative or whose
// warning exceeds its critical limit to the default for that category.
// It returns an error naming the reset categories, or nil if all
// categories were valid.
func (t *Thresholds) Validate() error {
	defaults := Default()
	var errs []error

	check := func(name string, limits *Limits, fallback Limits) {
		switch {
		case !finite(limits.Warning) || !finite(limits.Critical):
			errs = append(errs, fmt.Errorf("%s_thresholds: non-finite limit (warning=%g, critical=%g)",
				name, limits.Warning, limits.Critical))
		case limits.Warning < 0 || limits.Critical < 0:
			errs = append(errs, fmt.Errorf("%s_thresholds: negative limit (warning=%g, critical=%g)",
				name, limits.Warning, limits.Critical))
		case limits.Warning > limits.Critical:
			errs = append(errs, fmt.Errorf("%s_thresholds: warning %g exceeds critical %g",
				name, limits.Warning, limits.Critical))
		default:
			return
		}
		*limits = fallback
	}

	check("cpu", &t.CPU, defaults.CPU)
	check("ram", &t.RAM, defaults.RAM)
	check("swap", &t.Swap, defaults.Swap)
	check("storage", &t.Storage, defaults.Storage)
	check("temperature", &t.Temperature, defaults.Temperature)

	return errors.Join(errs...)
}

func finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// Marshal returns the thresholds as a YAML document.
func (t Thresholds) Marshal() ([]byte, error) {
	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(t); err != nil {
		return nil, fmt.Errorf("encoding thresholds: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encoding thresholds: %w", err)
	}
	return buffer.Bytes(), nil
}

// Save writes the thresholds to path as YAML, creating or truncating
// the file.
func (t Thresholds) Save(path string) error {
	data, err := t.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
