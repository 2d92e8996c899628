// Package npm ensures the target package is installed as a global package.
package npm

import (
	"fmt"
	"strings"

	"forge_setup/internal/logger"
	"forge_setup/internal/platform"
	"forge_setup/internal/registry"
)

// EnsureGlobal checks the global package listing for pkg and installs it at
// the latest dist-tag when absent. The listing check is a case-sensitive
// substring match on "<pkg>@" — by design npm's output format is not parsed
// any further. One install attempt, no retries.
func EnsureGlobal(pkg string, sel registry.Selection, r platform.Runner, log logger.Logger) error {
	out, _ := r.Run("npm", "list", "--global")
	if !r.Simulated() && strings.Contains(out, pkg+"@") {
		log.Success(fmt.Sprintf("✅ %s is already installed.", pkg))
		return nil
	}

	args := []string{"install", "--global", pkg + "@latest"}
	if !sel.IsDefault() {
		args = append(args, "--registry="+sel.URL)
	}

	log.Info(fmt.Sprintf("📦 Installing %s...", pkg))
	if _, err := r.Run("npm", args...); err != nil {
		log.Error(fmt.Sprintf("❌ Failed to install %s.", pkg))
		return fmt.Errorf("npm install failed: %w", err)
	}
	if r.Simulated() {
		return nil
	}

	log.Success(fmt.Sprintf("✅ %s installed.", pkg))
	log.Hint("Run `forge --help` to get started.")
	return nil
}
