// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"
)

func TestStatusOf(t *testing.T) {
	pathErr := &os.PathError{Op: "open", Path: "/sys/firmware/dmi/tables/DMI", Err: fs.ErrPermission}

	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"nil", nil, StatusOK},
		{"plain", errors.New("boom"), StatusFailed},
		{"permission", pathErr, StatusPrivilegeRequired},
		{"wrapped permission", fmt.Errorf("reading: %w", pathErr), StatusPrivilegeRequired},
		{"stdlib unsupported", fmt.Errorf("probe: %w", errors.ErrUnsupported), StatusUnsupported},
		{"collect error", Unsupported(DomainUSB, "usb"), StatusUnsupported},
		{"wrapped collect error", fmt.Errorf("outer: %w", PrivilegeRequired(DomainRAM, "dimms", nil)), StatusPrivilegeRequired},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := StatusOf(test.err); got != test.want {
				t.Errorf("StatusOf(%v) = %q, want %q", test.err, got, test.want)
			}
		})
	}
}

func TestFailure_RecognizesPermissionCause(t *testing.T) {
	err := Failure(DomainPCI, "reading config space", fs.ErrPermission)
	if err.Status != StatusPrivilegeRequired {
		t.Errorf("Status = %q, want privilege_required", err.Status)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("cause lost from error chain")
	}
	if err.Error() != "reading config space: permission denied" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestPrivilegeRequired_Message(t *testing.T) {
	err := PrivilegeRequired(DomainRAM, "memory module details", nil)
	if err.Error() != "memory module details: requires elevated privilege" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrPrivilegeRequired) {
		t.Error("errors.Is(err, ErrPrivilegeRequired) = false")
	}
}
