// Package version provides build information for the hellosrv binary.
// Values are injected at build time via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/yeisme/hellosrv/pkg/utils/version.Version=0.2.0"
//
// This is the version of the server binary itself, not the manifest version
// served in the greeting.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

var (
	// Version is the current version of the application
	Version = "dev"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
	// BuildDate is when the binary was built
	BuildDate = "unknown"
	// GoVersion is the Go version used to build the binary
	GoVersion = runtime.Version()
	// Platform is the target platform
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Modified  bool   `json:"modified"`
}

// GetVersion returns the version information. When the binary was built
// without ldflags, VCS details recorded by the Go toolchain are used instead.
func GetVersion() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  Platform,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// GetVersionString returns a one-line detailed version string similar to golangci-lint
func GetVersionString() string {
	info := GetVersion()
	return fmt.Sprintf("hellosrv has version %s built with %s from %s (%s, modified: %t) on %s",
		info.Version,
		info.GoVersion,
		info.GitCommit,
		info.Platform,
		info.Modified,
		info.BuildDate,
	)
}

// GetShortVersionString returns a short version string similar to gh
func GetShortVersionString() string {
	info := GetVersion()

	dateStr := info.BuildDate
	if buildTime, err := time.Parse(time.RFC3339, info.BuildDate); err == nil {
		dateStr = buildTime.Format("2006-01-02")
	}

	return fmt.Sprintf("hellosrv version %s (%s)", info.Version, dateStr)
}

// Rows returns the version information as field/value pairs for table output
func (i Info) Rows() [][]string {
	return [][]string{
		{"version", i.Version},
		{"git commit", i.GitCommit},
		{"build date", i.BuildDate},
		{"go version", i.GoVersion},
		{"platform", i.Platform},
		{"modified", fmt.Sprintf("%t", i.Modified)},
	}
}
