// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"fmt"
	"io/fs"
)

// Status describes how a section's collector fared.
type Status string

const (
	// StatusOK means the collector returned complete data.
	StatusOK Status = "ok"

	// StatusUnsupported means the domain is not available on this
	// platform. The section is empty.
	StatusUnsupported Status = "unsupported"

	// StatusPrivilegeRequired means some or all of the domain needs
	// elevated rights. The section holds whatever could be read
	// without them.
	StatusPrivilegeRequired Status = "privilege_required"

	// StatusFailed means the underlying discovery library returned an
	// error. The section holds whatever could be read before it.
	StatusFailed Status = "failed"
)

var (
	// ErrUnsupported marks errors for domains the platform cannot
	// provide.
	ErrUnsupported = errors.New("not supported on this platform")

	// ErrPrivilegeRequired marks errors caused by missing privilege.
	ErrPrivilegeRequired = errors.New("requires elevated privilege")
)

// CollectError is returned by [Source] methods. Status is never
// StatusOK.
type CollectError struct {
	Domain Domain
	Status Status
	Err    error
}

func (e *CollectError) Error() string {
	return e.Err.Error()
}

func (e *CollectError) Unwrap() error { return e.Err }

// Unsupported returns a CollectError for a domain this platform cannot
// provide. The message is prefixed to [ErrUnsupported].
func Unsupported(domain Domain, what string) *CollectError {
	return &CollectError{
		Domain: domain,
		Status: StatusUnsupported,
		Err:    fmt.Errorf("%s: %w", what, ErrUnsupported),
	}
}

// PrivilegeRequired returns a CollectError for data that needs
// elevated rights. If cause is non-nil it is kept in the chain.
func PrivilegeRequired(domain Domain, what string, cause error) *CollectError {
	err := fmt.Errorf("%s: %w", what, ErrPrivilegeRequired)
	if cause != nil {
		err = fmt.Errorf("%s: %w (%w)", what, ErrPrivilegeRequired, cause)
	}
	return &CollectError{Domain: domain, Status: StatusPrivilegeRequired, Err: err}
}

// Failure wraps an error from a discovery library. Permission and
// unsupported errors in cause's chain are recognized and given the
// matching status instead.
func Failure(domain Domain, what string, cause error) *CollectError {
	status := StatusOf(cause)
	if status == StatusOK {
		status = StatusFailed
	}
	return &CollectError{
		Domain: domain,
		Status: status,
		Err:    fmt.Errorf("%s: %w", what, cause),
	}
}

// StatusOf classifies err. A nil error is StatusOK. A [*CollectError]
// keeps its own status; otherwise permission errors map to
// StatusPrivilegeRequired, unsupported-operation errors to
// StatusUnsupported, and everything else to StatusFailed.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}

	var collectErr *CollectError
	if errors.As(err, &collectErr) {
		return collectErr.Status
	}

	switch {
	case errors.Is(err, ErrPrivilegeRequired), errors.Is(err, fs.ErrPermission):
		return StatusPrivilegeRequired
	case errors.Is(err, ErrUnsupported), errors.Is(err, errors.ErrUnsupported):
		return StatusUnsupported
	default:
		return StatusFailed
	}
}
