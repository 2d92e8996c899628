package node

import (
	"errors"
	"fmt"

	"forge_setup/internal/logger"
	"forge_setup/internal/platform"
)

// ErrNoPackageManager means no supported package manager was found on the
// search path.
var ErrNoPackageManager = errors.New("cannot determine a package manager")

// selectManager picks the package manager for this run. The choice is made
// once per invocation and never silently re-chosen:
//  1. posix hosts use apt-get unconditionally;
//  2. elsewhere, apt on the search path wins, then choco;
//  3. otherwise the run fails.
func selectManager(plat platform.Platform, env platform.Env) (name string, args []string, err error) {
	if plat == platform.Posix {
		return "apt-get", []string{"install", "nodejs", "-y"}, nil
	}
	if _, ok := env.LookPath("apt"); ok {
		return "apt-get", []string{"install", "nodejs", "-y"}, nil
	}
	if _, ok := env.LookPath("choco"); ok {
		return "choco", []string{"install", "nodejs", "-y"}, nil
	}
	return "", nil, ErrNoPackageManager
}

// Install provisions Node.js with the selected package manager. One attempt,
// no fallback.
func Install(plat platform.Platform, env platform.Env, r platform.Runner, log logger.Logger) error {
	name, args, err := selectManager(plat, env)
	if err != nil {
		log.Error("❌ Cannot determine a package manager for this host.")
		log.Hint("Install Node.js manually from https://nodejs.org/en/download and re-run this installer.")
		return err
	}

	log.Info(fmt.Sprintf("📦 Installing Node.js via %s...", name))
	if _, err := r.Run(name, args...); err != nil {
		log.Error("❌ Node.js installation failed.")
		return fmt.Errorf("%s install failed: %w", name, err)
	}
	if r.Simulated() {
		return nil
	}

	if v := RuntimeVersion(r); v != "" {
		log.Success(fmt.Sprintf("✅ Node.js %s installed.", v))
	} else {
		log.Success("✅ Node.js installed.")
	}
	return nil
}
