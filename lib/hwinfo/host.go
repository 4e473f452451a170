// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"time"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// DefaultSampleInterval is how long CPU utilization is sampled when no
// interval is configured. Utilization is a rate, so a single reading
// is meaningless.
const DefaultSampleInterval = 200 * time.Millisecond

// Host collects from the local machine.
type Host struct {
	// sysRoot is the sysfs mount point, "/sys" outside tests.
	sysRoot string

	sampleInterval time.Duration
}

var _ report.Source = (*Host)(nil)

// Option configures a Host.
type Option func(*Host)

// WithSampleInterval sets the CPU utilization sampling window.
func WithSampleInterval(interval time.Duration) Option {
	return func(host *Host) {
		host.sampleInterval = interval
	}
}

// New returns a Host reading from the live system.
func New(options ...Option) *Host {
	host := &Host{
		sysRoot:        "/sys",
		sampleInterval: DefaultSampleInterval,
	}
	for _, option := range options {
		option(host)
	}
	return host
}
