// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type sampleReading struct {
	Name     string            `json:"name"`
	Value    float64           `json:"value"`
	Severity string            `json:"severity,omitempty"`
	Labels   map[string]string `json:"labels,omitempty"`
	Taken    time.Time         `json:"taken"`
}

func TestMarshalUnmarshal(t *testing.T) {
	original := sampleReading{
		Name:  "cpu",
		Value: 97.5,
		Taken: time.Date(2026, 3, 1, 12, 30, 0, 123456789, time.UTC),
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleReading
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != original.Name || decoded.Value != original.Value {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
	if !decoded.Taken.Equal(original.Taken) {
		t.Errorf("Taken = %v, want %v (nanoseconds must survive)", decoded.Taken, original.Taken)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	reading := sampleReading{
		Name:   "storage",
		Value:  85,
		Labels: map[string]string{"mount": "/", "fs": "ext4", "device": "/dev/nvme0n1p2"},
	}

	first, err := Marshal(reading)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	for range 20 {
		again, err := Marshal(reading)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding violated: %x != %x", first, again)
		}
	}
}

func TestJSONTagFallback(t *testing.T) {
	data, err := Marshal(sampleReading{Name: "ram", Value: 50})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(diagnostic, `"name": "ram"`) {
		t.Errorf("diagnostic %s does not use json tag names", diagnostic)
	}
	if strings.Contains(diagnostic, "severity") || strings.Contains(diagnostic, "labels") {
		t.Errorf("diagnostic %s includes omitempty fields", diagnostic)
	}
}

func TestEncoderStream(t *testing.T) {
	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	if err := encoder.Encode(sampleReading{Name: "a"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	single, err := Marshal(sampleReading{Name: "a"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(buffer.Bytes(), single) {
		t.Errorf("encoder output %x differs from Marshal %x", buffer.Bytes(), single)
	}
}
