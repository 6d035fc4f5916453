// Package version exposes build metadata injected via ldflags.
package version

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the short git commit hash.
	Commit = "none"
	// Date is the UTC build date.
	Date = "unknown"
)

// GetVersion returns the version as a display string.
func GetVersion() string {
	if Version == "dev" {
		return "dev (development build)"
	}
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
