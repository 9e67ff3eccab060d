// Package version exposes build metadata for the CLI and outbound requests.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/ecotrip/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/ecotrip/internal/version.Commit=abc123"
//
// Anything left unset is taken from the VCS stamp in the build info, then
// from a dev fallback.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the short git commit hash
	Commit = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, version := fromBuildSettings(info.Settings)
		if Commit == "" {
			Commit = commit
		}
		if Version == "" {
			Version = version
		}
	}

	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildSettings derives a commit and a dev version from the VCS stamp.
// Either may be empty.
func fromBuildSettings(settings []debug.BuildSetting) (commit, version string) {
	var revision, modified, vcsTime string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if revision != "" {
		commit = revision
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if modified == "true" {
			commit += "-dirty"
		}
	}

	// Build info carries no tags
	if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
		version = "dev-" + t.Format("20060102")
	}
	return commit, version
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// UserAgent identifies the planner to the geocoding API
func UserAgent() string {
	return "ecotrip/" + Version
}
