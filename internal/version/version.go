// Package version provides build-time version information for wifilens.
// Variables are injected at build time via ldflags; when they are not, the
// VCS stamp recorded by the Go toolchain is used instead.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const unknown = "unknown"

// stamp is the commit and date a binary reports.
type stamp struct {
	commit string
	date   string
}

// resolve fills the fields ldflags left unset from the build info settings.
// A commit taken from a modified work tree is suffixed with "-dirty".
func resolve(commit, date string, bi *debug.BuildInfo) stamp {
	s := stamp{commit: commit, date: date}
	if bi == nil {
		return s
	}

	var revision, vcsTime string
	var modified bool
	for _, kv := range bi.Settings {
		switch kv.Key {
		case "vcs.revision":
			revision = kv.Value
		case "vcs.time":
			vcsTime = kv.Value
		case "vcs.modified":
			modified = kv.Value == "true"
		}
	}

	if s.commit == unknown && revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		s.commit = revision
		if modified {
			s.commit += "-dirty"
		}
	}
	if s.date == unknown && vcsTime != "" {
		s.date = vcsTime
	}
	return s
}

func current() stamp {
	bi, _ := debug.ReadBuildInfo()
	return resolve(GitCommit, BuildDate, bi)
}

// Info returns a formatted version string suitable for -version output.
func Info() string {
	s := current()
	return fmt.Sprintf("wifilens %s (commit: %s, built: %s, go: %s, %s/%s)",
		Version, s.commit, s.date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version string (e.g., "0.1.0" or "dev").
func Short() string {
	return Version
}

// Map returns version info as a map for JSON serialization.
func Map() map[string]string {
	s := current()
	return map[string]string{
		"version":    Version,
		"git_commit": s.commit,
		"build_date": s.date,
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
	}
}
