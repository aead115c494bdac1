// Package version holds build-time version information.
package version

import "runtime"

var (
	// Version is the semantic version, overridden at build time
	Version = "0.1.0"

	// GitCommit is the commit hash, overridden at build time
	GitCommit = "unknown"

	// BuildDate is the build timestamp, overridden at build time
	BuildDate = "unknown"
)

// GoVersion reports the Go runtime the binary was built with
func GoVersion() string {
	return runtime.Version()
}
