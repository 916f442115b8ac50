// Package version reports what build of scriptdrill is running
package version

import "runtime/debug"

// BuildInfo is served by /meta/version
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// Set with -ldflags:
//
//	-X 'scriptdrill/internal/core/version.version=v0.1.0'
//	-X 'scriptdrill/internal/core/version.commit=abcd'
//	-X 'scriptdrill/internal/core/version.date=2026-01-02'
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// readBuildInfo is a seam for tests
var readBuildInfo = debug.ReadBuildInfo

// Info returns the build information for service.
// When commit was not injected, the VCS revision stamped by the go tool is used
func Info(service string) BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
	info, ok := readBuildInfo()
	if !ok {
		return bi
	}
	bi.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "none" {
				bi.Commit = s.Value
			}
		case "vcs.time":
			if bi.Date == "unknown" {
				bi.Date = s.Value
			}
		}
	}
	return bi
}
