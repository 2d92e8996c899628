// Package node checks for a usable Node.js runtime and installs one through
// the host's package manager when it is missing or too old.
package node

import (
	"errors"
	"fmt"
	"io"

	"forge_setup/internal/config"
	"forge_setup/internal/logger"
	"forge_setup/internal/platform"
	"forge_setup/internal/ui"
)

// ErrDeclined means the operator chose not to upgrade an outdated runtime.
// A handled outcome, not a failure: the run stops cleanly.
var ErrDeclined = errors.New("node.js upgrade declined")

// Ensure makes sure a Node.js runtime at or above cfg.MinNodeMajor is
// reachable, installing or upgrading through the package manager as needed.
//
// An outdated runtime triggers exactly one interactive prompt; an empty
// answer means yes. In dry-run the version query is displayed and the step
// short-circuits to success — branches that depend on real command output
// are not evaluated.
func Ensure(plat platform.Platform, cfg *config.Config, env platform.Env, r platform.Runner, log logger.Logger, stdin io.Reader, out io.Writer) error {
	if _, ok := env.LookPath("node"); !ok {
		log.Info("📦 Node.js not found. Installing...")
		return Install(plat, env, r, log)
	}

	if r.Simulated() {
		_, _ = r.Run("node", "--version")
		return nil
	}

	major := MajorVersion(r)
	if major >= cfg.MinNodeMajor {
		log.Success(fmt.Sprintf("✅ Node.js v%d found. Skipping Node.js installation.", major))
		return nil
	}

	question := fmt.Sprintf("⚡ Node.js major version %d is older than %d. Upgrade now?", major, cfg.MinNodeMajor)
	answer, err := ui.Confirm(question, ui.AnswerYes, stdin, out)
	if err != nil {
		return err
	}
	if answer == ui.AnswerNo {
		log.Hint("Install Node.js manually from https://nodejs.org/en/download when you are ready.")
		return ErrDeclined
	}
	return Install(plat, env, r, log)
}
