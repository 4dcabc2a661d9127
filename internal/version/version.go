// Package version exposes build information stamped in at link time.
package version

import "fmt"

var (
	// Version is the semantic version, set via -ldflags.
	Version = "dev"
	// Commit is the git commit hash, set via -ldflags.
	Commit = "none"
	// Date is the build date, set via -ldflags.
	Date = "unknown"
)

// String returns a one-line human readable version string.
func String() string {
	return fmt.Sprintf("rewind %s (commit %s, built %s)", Version, Commit, Date)
}
