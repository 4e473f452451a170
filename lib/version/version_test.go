// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildSettings(t *testing.T) {
	stamped := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	tests := []struct {
		name       string
		settings   []debug.BuildSetting
		commit     string
		built      string
		wantCommit string
		wantBuilt  string
	}{
		{"stamp fills unknowns", stamped, "unknown", "unknown", "0123456789ab-dirty", "2026-10-01T12:00:00Z"},
		{"ldflags win", stamped, "abc1234", "2026-09-30", "abc1234", "2026-09-30"},
		{"no stamp", nil, "unknown", "unknown", "unknown", "unknown"},
		{"clean short revision", []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}, "unknown", "unknown", "abc", "unknown"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			commit, built := fromBuildSettings(test.settings, test.commit, test.built)
			if commit != test.wantCommit || built != test.wantBuilt {
				t.Errorf("fromBuildSettings() = (%q, %q), want (%q, %q)",
					commit, built, test.wantCommit, test.wantBuilt)
			}
		})
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.HasPrefix(full, Version+" (") {
		t.Errorf("Full() = %q, want version prefix", full)
	}
	if !strings.Contains(full, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("Full() = %q, want platform", full)
	}
}
