// Package version exposes build metadata for the --version flag.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision.
	Revision = revision(debug.ReadBuildInfo)
)

// String formats the version, revision, build date and Go toolchain on one
// line.
func String() string {
	v := Version
	if v == "" {
		v = "dev"
	}

	parts := []string{v, "(" + Revision + ")"}
	if BuildDate != "" {
		parts = append(parts, "built "+BuildDate)
	}

	parts = append(parts, fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH))

	return strings.Join(parts, " ")
}

func revision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	info, ok := read()
	if !ok {
		return rev
	}

	modified := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
