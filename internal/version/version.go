// Package version reports the build version of the vibrant CLI.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via ldflags, e.g.
//
//	go build -ldflags "-X .../internal/version.Version=v1.0.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	GitDirty  = "" // "dirty" when the tree had uncommitted changes
)

// GetVersion returns the best available version string: the ldflags
// value, then module build info, then git metadata, then "dev".
func GetVersion() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	if GitTag != "unknown" && GitCommit != "unknown" {
		version := GitTag
		if GitCommit != "" {
			commit := GitCommit
			if len(commit) > 7 {
				commit = commit[:7]
			}
			if !strings.HasSuffix(GitTag, commit) {
				version = fmt.Sprintf("%s-%s", GitTag, commit)
			}
		}
		if GitDirty == "dirty" {
			version += "-dirty"
		}
		return version
	}

	return "dev"
}

// GetFullVersion includes the commit hash when one is known.
func GetFullVersion() string {
	version := GetVersion()
	if GitCommit != "unknown" {
		return fmt.Sprintf("%s (commit: %s)", version, GitCommit)
	}
	return version
}
