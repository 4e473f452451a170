// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package report

import "github.com/bureau-foundation/hwcheck/lib/config"

// Severity classifies a metric against its warning/critical limits.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Classify returns the severity of value under limits. Comparisons are
// strict: a value equal to the critical limit is only a warning.
func Classify(value float64, limits config.Limits) Severity {
	switch {
	case value > limits.Critical:
		return SeverityCritical
	case value > limits.Warning:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// Metric is a numeric reading tagged with its severity. Severity is
// empty until the aggregator classifies the report.
type Metric struct {
	Value    float64  `json:"value" yaml:"value"`
	Severity Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
}

// NewMetric returns an unclassified metric.
func NewMetric(value float64) Metric {
	return Metric{Value: value}
}

func (m *Metric) classify(limits config.Limits) {
	m.Severity = Classify(m.Value, limits)
}

// Classify tags every metric in the report with its severity under
// thresholds. Sections that are absent are skipped.
func (r *Report) Classify(thresholds config.Thresholds) {
	if r.CPU != nil {
		cpu := &r.CPU.Data
		cpu.Usage.classify(thresholds.CPU)
		for i := range cpu.Cores {
			cpu.Cores[i].Usage.classify(thresholds.CPU)
		}
		if cpu.Temperature != nil {
			cpu.Temperature.classify(thresholds.Temperature)
		}
	}

	if r.RAM != nil {
		r.RAM.Data.Usage.classify(thresholds.RAM)
		r.RAM.Data.SwapUsage.classify(thresholds.Swap)
	}

	if r.Storage != nil {
		for i := range r.Storage.Data {
			r.Storage.Data[i].Usage.classify(thresholds.Storage)
		}
	}
}
