// Package version reports build metadata for --version output.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string
	Revision  string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the metadata of the running binary. An unset [Version]
// reports as "dev".
func Get() Info {
	v := Version
	if v == "" {
		v = "dev"
	}

	return Info{
		Version:   v,
		Revision:  revision(debug.ReadBuildInfo),
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats i on one line, e.g.
// "1.2.0 (revision abc123, built 2026-01-02, go1.25.0 linux/amd64)".
func (i Info) String() string {
	built := ""
	if i.BuildDate != "" {
		built = ", built " + i.BuildDate
	}

	return fmt.Sprintf("%s (revision %s%s, %s %s)",
		i.Version, i.Revision, built, i.GoVersion, i.Platform)
}

// revision reads the VCS revision from the build info, marking modified
// trees with a "-dirty" suffix.
func revision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	buildInfo, ok := read()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
