// Package version holds build metadata injected by linker flags.
package version

import (
	"fmt"
)

var (
	BuildType = "development"
	Version   string
	Commit    string
	GoVersion string
)

// IsDevelopment is true for binaries built outside a release.
func IsDevelopment() bool {
	return BuildType == "development"
}

// String is the full human-readable version.
func String() string {
	return fmt.Sprintf("%s (revision %s compiled with %s)", Version, Commit, GoVersion)
}

// ShortString is the version for display in logs and uploads.
func ShortString() string {
	if IsDevelopment() {
		return Commit
	}
	return Version
}
