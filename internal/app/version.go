package app

import "fmt"

// Build metadata, injected with -ldflags "-X ...". Left at the zero
// values when the binary is built without them (local go run).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata for the startup log line and
// the health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
