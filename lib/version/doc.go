// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports which hwcheck build is running.
//
// [Version], [GitCommit] and [BuildTime] are injected with -ldflags -X
// by release builds. Binaries built with plain "go build" or "go
// install" fall back to the VCS stamp the go command embeds, and to
// "unknown" when there is none (go test, for instance).
package version
