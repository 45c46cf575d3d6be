// Package buildinfo reports which build of nines is running.
//
// Release builds set the variables with -ldflags, for example
//
//	-X honnef.co/go/nines/internal/buildinfo.Version=v1.2.0
//
// Builds made with go install leave them unset; the module version and VCS
// revision embedded by the toolchain are used instead.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags -X.
var (
	Version string
	Commit  string
	Date    string
)

// Info is the resolved build information.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// Read combines the ldflags variables with what the toolchain embedded.
func Read() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fill(&info, bi)
	}
	if info.Version == "" {
		info.Version = "(devel)"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return info
}

func fill(info *Info, bi *debug.BuildInfo) {
	info.GoVersion = bi.GoVersion
	if info.Version == "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		}
	}
}

// String formats the build information over several lines.
func String() string {
	info := Read()
	s := fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", info.Version, info.Commit, info.Date)
	if info.GoVersion != "" {
		s += "\ngo: " + info.GoVersion
	}
	return s
}
