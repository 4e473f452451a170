// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_Handlers(t *testing.T) {
	var buffer bytes.Buffer
	newLogger(&buffer, false, false).Info("collected", "domain", "cpu")

	var record map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("non-terminal output is not JSON: %v\n%s", err, buffer.String())
	}
	if record["msg"] != "collected" || record["domain"] != "cpu" {
		t.Errorf("record = %v", record)
	}

	buffer.Reset()
	newLogger(&buffer, true, false).Info("collected", "domain", "cpu")
	if output := buffer.String(); !strings.Contains(output, "msg=collected") || !strings.Contains(output, "domain=cpu") {
		t.Errorf("terminal output = %q, want text handler format", output)
	}
}

func TestNewLogger_Verbose(t *testing.T) {
	tests := []struct {
		verbose bool
		want    bool
	}{
		{false, false},
		{true, true},
	}

	for _, test := range tests {
		var buffer bytes.Buffer
		newLogger(&buffer, true, test.verbose).Debug("sampling")
		if got := buffer.Len() > 0; got != test.want {
			t.Errorf("verbose=%v: debug record written = %v, want %v", test.verbose, got, test.want)
		}
	}
}
