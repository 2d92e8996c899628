package platform

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner executes external commands. Everything that could mutate host state
// goes through a Runner so that dry-run is a swappable implementation rather
// than conditionals scattered through every step.
type Runner interface {
	// Run executes the command and returns its combined output.
	Run(name string, args ...string) (string, error)
	// Simulated reports whether commands are displayed instead of executed.
	// Steps use it to skip branches that depend on real command output.
	Simulated() bool
}

// ExecRunner runs commands for real, blocking until they complete.
type ExecRunner struct {
	// Trace, when set, records every execution as structured fields.
	Trace *zap.Logger
}

func (r *ExecRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	// Ensure color is disabled for child processes that honor NO_COLOR
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	if r.Trace != nil {
		r.Trace.Info("command",
			zap.String("name", name),
			zap.Strings("args", args),
			zap.Bool("failed", err != nil),
		)
	}
	return string(out), err
}

func (*ExecRunner) Simulated() bool { return false }

// DryRunner displays each command line instead of executing it and treats
// the step as succeeded. No external state changes.
type DryRunner struct {
	Out io.Writer
}

func (r *DryRunner) Run(name string, args ...string) (string, error) {
	fmt.Fprintf(r.Out, "$ %s\n", strings.Join(append([]string{name}, args...), " "))
	return "", nil
}

func (*DryRunner) Simulated() bool { return true }
