package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.Contains(info, "wifilens") {
		t.Errorf("Info() should contain 'wifilens', got: %s", info)
	}
	if !strings.Contains(info, runtime.Version()) {
		t.Errorf("Info() should contain Go version, got: %s", info)
	}
}

func TestShort(t *testing.T) {
	if got := Short(); got != "dev" {
		t.Errorf("Short() = %q, want %q (default)", got, "dev")
	}
}

func TestMap(t *testing.T) {
	m := Map()

	requiredKeys := []string{"version", "git_commit", "build_date", "go_version", "os", "arch"}
	for _, key := range requiredKeys {
		if _, ok := m[key]; !ok {
			t.Errorf("Map() missing key %q", key)
		}
	}

	if m["version"] != "dev" {
		t.Errorf("Map()[\"version\"] = %q, want %q", m["version"], "dev")
	}
	if m["go_version"] != runtime.Version() {
		t.Errorf("Map()[\"go_version\"] = %q, want %q", m["go_version"], runtime.Version())
	}
}

func TestInfoIncludesPlatform(t *testing.T) {
	want := runtime.GOOS + "/" + runtime.GOARCH
	if info := Info(); !strings.Contains(info, want) {
		t.Errorf("Info() should contain %q, got: %s", want, info)
	}
}

func TestResolve(t *testing.T) {
	vcs := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		{Key: "vcs.modified", Value: "false"},
	}}
	dirty := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	}}

	tests := []struct {
		name       string
		commit     string
		date       string
		bi         *debug.BuildInfo
		wantCommit string
		wantDate   string
	}{
		{"no build info", "unknown", "unknown", nil, "unknown", "unknown"},
		{"from vcs stamp", "unknown", "unknown", vcs, "0123456789ab", "2026-10-01T12:00:00Z"},
		{"ldflags win", "deadbeef", "2026-01-02", vcs, "deadbeef", "2026-01-02"},
		{"dirty tree", "unknown", "unknown", dirty, "abc123-dirty", "unknown"},
		{"no vcs settings", "unknown", "unknown", &debug.BuildInfo{}, "unknown", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.commit, tt.date, tt.bi)
			if got.commit != tt.wantCommit {
				t.Errorf("commit = %q, want %q", got.commit, tt.wantCommit)
			}
			if got.date != tt.wantDate {
				t.Errorf("date = %q, want %q", got.date, tt.wantDate)
			}
		})
	}
}
