package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFull(t *testing.T) {
	if Version == "" || Commit == "" {
		t.Fatal("init should always populate Version and Commit")
	}

	full := Full()
	if !strings.HasPrefix(full, Version) {
		t.Errorf("Full() = %q, should start with %q", full, Version)
	}
	if !strings.Contains(full, "(commit: "+Commit+")") {
		t.Errorf("Full() = %q, should carry the commit", full)
	}
}

func TestFromBuildSettings(t *testing.T) {
	tests := []struct {
		name        string
		settings    []debug.BuildSetting
		wantCommit  string
		wantVersion string
	}{
		{name: "no vcs stamp"},
		{
			name: "clean checkout",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "false"},
				{Key: "vcs.time", Value: "2025-01-04T10:00:00Z"},
			},
			wantCommit:  "0123456",
			wantVersion: "dev-20250104",
		},
		{
			name: "dirty short revision",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			wantCommit: "abc-dirty",
		},
		{
			name:     "bad time",
			settings: []debug.BuildSetting{{Key: "vcs.time", Value: "yesterday"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commit, version := fromBuildSettings(tt.settings)
			if commit != tt.wantCommit || version != tt.wantVersion {
				t.Errorf("fromBuildSettings() = (%q, %q), want (%q, %q)", commit, version, tt.wantCommit, tt.wantVersion)
			}
		})
	}
}

func TestUserAgent(t *testing.T) {
	if got := UserAgent(); got != "ecotrip/"+Version {
		t.Errorf("UserAgent() = %q", got)
	}
}
