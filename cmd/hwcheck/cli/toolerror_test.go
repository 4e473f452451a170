// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestToolError(t *testing.T) {
	err := Validation("unknown format %q", "xml")
	if err.Category != CategoryValidation {
		t.Errorf("Category = %q, want validation", err.Category)
	}
	if err.Error() != `unknown format "xml"` {
		t.Errorf("Error() = %q", err.Error())
	}

	wrapped := Internal("writing report: %w", fs.ErrPermission)
	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Error("Internal error does not unwrap to its cause")
	}

	var toolError *ToolError
	if !errors.As(fmt.Errorf("run: %w", wrapped), &toolError) || toolError.Category != CategoryInternal {
		t.Error("errors.As did not find the internal ToolError")
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: ExitInterrupted}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok {
		t.Fatal("ExitError does not implement ExitCode")
	}
	if coder.ExitCode() != 130 {
		t.Errorf("ExitCode() = %d, want 130", coder.ExitCode())
	}
	if err.Error() != "exit code 130" {
		t.Errorf("Error() = %q", err.Error())
	}
}
