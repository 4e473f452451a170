// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package report defines the hardware report produced by one hwcheck
// invocation and the aggregator that builds it.
//
// A [Report] holds one [Section] per selected [Domain]. Each section
// carries a [Status], an optional notice, and the normalized record
// for its domain. Sections are laid out in a fixed domain order so
// every serialization of a report has the same key order.
//
// Collection is delegated to a [Source], which has one method per
// domain. [Aggregator.Collect] calls exactly the methods named by a
// [Selection], one at a time, and turns each failure into an annotated
// section rather than aborting the report. Failures are classified by
// [CollectError] as unsupported, privilege-required, or plain
// collector failures.
//
// After collection the aggregator classifies every percentage and
// temperature [Metric] against the configured thresholds, tagging it
// with a [Severity] that renderers map to colors.
package report
