package npm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"forge_setup/internal/logger"
	"forge_setup/internal/platform"
	"forge_setup/internal/registry"
)

type fakeRunner struct {
	outputs map[string]string
	fails   map[string]bool
	calls   []string
}

func (r *fakeRunner) Run(name string, args ...string) (string, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, cmdline)
	if r.fails[cmdline] {
		return "", errors.New("exit status 1")
	}
	return r.outputs[cmdline], nil
}

func (r *fakeRunner) Simulated() bool { return false }

var defaultSel = registry.Selection{URL: registry.DefaultRegistry}

func TestEnsureGlobalAlreadyInstalled(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"npm list --global": "/usr/lib\n├── @forgelabs/cli@1.4.2\n└── npm@10.8.2\n",
	}}

	err := EnsureGlobal("@forgelabs/cli", defaultSel, r, logger.NewConsole(io.Discard))
	if err != nil {
		t.Fatalf("EnsureGlobal: %v", err)
	}
	if len(r.calls) != 1 {
		t.Errorf("listed package must not be reinstalled; commands: %v", r.calls)
	}
}

func TestEnsureGlobalNamePrefixIsNotAMatch(t *testing.T) {
	// @forgelabs/cli-tools@1.0.0 must not satisfy @forgelabs/cli
	r := &fakeRunner{outputs: map[string]string{
		"npm list --global": "/usr/lib\n└── @forgelabs/cli-tools@1.0.0\n",
	}}

	if err := EnsureGlobal("@forgelabs/cli", defaultSel, r, logger.NewConsole(io.Discard)); err != nil {
		t.Fatalf("EnsureGlobal: %v", err)
	}
	if len(r.calls) != 2 || r.calls[1] != "npm install --global @forgelabs/cli@latest" {
		t.Errorf("expected an install, got %v", r.calls)
	}
}

func TestEnsureGlobalInstallsLatest(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"npm list --global": "/usr/lib\n"}}

	err := EnsureGlobal("@forgelabs/cli", defaultSel, r, logger.NewConsole(io.Discard))
	if err != nil {
		t.Fatalf("EnsureGlobal: %v", err)
	}
	want := []string{"npm list --global", "npm install --global @forgelabs/cli@latest"}
	if len(r.calls) != len(want) || r.calls[0] != want[0] || r.calls[1] != want[1] {
		t.Errorf("commands = %v, want %v", r.calls, want)
	}
}

func TestEnsureGlobalMirrorAddsRegistryFlag(t *testing.T) {
	r := &fakeRunner{}
	sel := registry.Selection{URL: "https://mirror.example.com/npm"}

	if err := EnsureGlobal("@forgelabs/cli", sel, r, logger.NewConsole(io.Discard)); err != nil {
		t.Fatalf("EnsureGlobal: %v", err)
	}
	install := r.calls[len(r.calls)-1]
	if !strings.Contains(install, "--registry=https://mirror.example.com/npm") {
		t.Errorf("install command %q missing registry flag", install)
	}
}

func TestEnsureGlobalInstallFailurePropagates(t *testing.T) {
	r := &fakeRunner{fails: map[string]bool{"npm install --global @forgelabs/cli@latest": true}}

	err := EnsureGlobal("@forgelabs/cli", defaultSel, r, logger.NewConsole(io.Discard))
	if err == nil {
		t.Fatal("expected install failure to propagate")
	}
	if n := len(r.calls); n != 2 {
		t.Errorf("exactly one install attempt expected, got %v", r.calls)
	}
}

func TestEnsureGlobalDryRunAlwaysShowsInstall(t *testing.T) {
	var buf bytes.Buffer
	r := &platform.DryRunner{Out: &buf}

	if err := EnsureGlobal("@forgelabs/cli", defaultSel, r, logger.NewConsole(io.Discard)); err != nil {
		t.Fatalf("EnsureGlobal: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "$ npm list --global\n") {
		t.Errorf("listing command not displayed: %q", out)
	}
	if !strings.Contains(out, "$ npm install --global @forgelabs/cli@latest\n") {
		t.Errorf("install command not displayed: %q", out)
	}
}
