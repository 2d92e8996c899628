package node

import (
	"strings"

	goversion "github.com/hashicorp/go-version"

	"forge_setup/internal/platform"
)

// RuntimeVersion queries the reachable Node.js runtime for its version
// string (e.g. "v22.18.0"). Empty when the query fails or is simulated.
func RuntimeVersion(r platform.Runner) string {
	out, err := r.Run("node", "--version")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// MajorVersion reports the major version of the reachable Node.js runtime.
// Output that does not parse as a version is treated as major 0 so that an
// odd build string lands in the "too old" branch instead of crashing the run.
func MajorVersion(r platform.Runner) int {
	raw := strings.TrimPrefix(RuntimeVersion(r), "v")
	if raw == "" {
		return 0
	}
	v, err := goversion.NewVersion(raw)
	if err != nil {
		return 0
	}
	return v.Segments()[0]
}
