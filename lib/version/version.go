// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags at build time:
//
//	go build -ldflags "-X github.com/bureau-foundation/hwcheck/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/hwcheck
var (
	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"

	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"
)

// Info returns "<version> (<commit>, <build time>)". Values not
// injected with -ldflags are taken from the VCS stamp the go command
// embeds, when there is one.
func Info() string {
	commit, built := GitCommit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fromBuildSettings(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (%s, %s)", Version, commit, built)
}

// Full returns Info plus the Go toolchain and platform.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// fromBuildSettings fills commit and built from vcs.* build settings
// where they are still "unknown".
func fromBuildSettings(settings []debug.BuildSetting, commit, built string) (string, string) {
	dirty := false
	revision, timestamp := "", ""
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			timestamp = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if commit == "unknown" && revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		commit = revision
		if dirty {
			commit += "-dirty"
		}
	}
	if built == "unknown" && timestamp != "" {
		built = timestamp
	}
	return commit, built
}
