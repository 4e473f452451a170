// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"testing"

	"github.com/bureau-foundation/hwcheck/lib/config"
)

func TestClassify(t *testing.T) {
	limits := config.Limits{Warning: 80, Critical: 95}

	tests := []struct {
		value float64
		want  Severity
	}{
		{0, SeverityNormal},
		{80, SeverityNormal},
		{80.01, SeverityWarning},
		{95, SeverityWarning},
		{95.5, SeverityCritical},
		{250, SeverityCritical},
	}

	for _, test := range tests {
		if got := Classify(test.value, limits); got != test.want {
			t.Errorf("Classify(%v) = %q, want %q", test.value, got, test.want)
		}
	}
}

func TestReportClassify_Temperature(t *testing.T) {
	temperature := NewMetric(91)
	report := &Report{
		CPU: &Section[CPUInfo]{Status: StatusOK, Data: CPUInfo{Temperature: &temperature}},
	}

	thresholds := config.Default()
	thresholds.Temperature = config.Limits{Warning: 70, Critical: 90}
	report.Classify(thresholds)

	if report.CPU.Data.Temperature.Severity != SeverityCritical {
		t.Errorf("temperature severity = %q, want critical", report.CPU.Data.Temperature.Severity)
	}
}
