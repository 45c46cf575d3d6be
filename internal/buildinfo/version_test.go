package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFill(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.24.0",
		Main:      debug.Module{Path: "honnef.co/go/nines", Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	var info Info
	fill(&info, bi)
	want := Info{Version: "v0.3.0", Commit: "abc123", Date: "2026-01-02T03:04:05Z", GoVersion: "go1.24.0"}
	if info != want {
		t.Errorf("got %+v, want %+v", info, want)
	}

	// ldflags take precedence.
	info = Info{Version: "v1.0.0", Commit: "fff"}
	fill(&info, bi)
	if info.Version != "v1.0.0" || info.Commit != "fff" || info.Date != "2026-01-02T03:04:05Z" {
		t.Errorf("got %+v", info)
	}

	info = Info{}
	fill(&info, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if info.Version != "" {
		t.Errorf("got version %q for a devel build", info.Version)
	}
}

func TestString(t *testing.T) {
	s := String()
	for _, want := range []string{"version: ", "commit: ", "built: "} {
		if !strings.Contains(s, want) {
			t.Errorf("%q doesn't contain %q", s, want)
		}
	}
}
