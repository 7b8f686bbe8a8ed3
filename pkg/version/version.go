// Package version exposes build metadata injected at link time.
package version

import "fmt"

// Build metadata, set with -ldflags "-X github.com/rshade/recview/pkg/version.version=...".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the build.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate)
}
