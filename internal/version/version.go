// Package version exposes build identification stamped in at link time.
package version

import "fmt"

// Overridden with -ldflags "-X ..." by release builds.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the full build identifier for startup logs.
func String() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, Commit, Date)
}
