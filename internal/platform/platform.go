package platform

import (
	"os/exec"
	"runtime"
	"strings"
)

// Platform is the coarse classification of the host OS used to select a
// package manager.
type Platform string

const (
	Posix   Platform = "posix"
	Win32   Platform = "win32"
	Unknown Platform = "unknown"
)

// Env answers read-only questions about the host. It exists so the whole
// installation flow can run against a mocked host in tests.
type Env interface {
	// KernelName returns the host kernel identification (uname -s style).
	KernelName() string
	// LookPath reports whether an executable is reachable on the search path.
	LookPath(name string) (string, bool)
}

// MapKernel maps a kernel name to a platform tag. Unrecognized names map to
// Unknown; the installer then probes for a package manager and fails with an
// explicit error when none is found.
func MapKernel(name string) Platform {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(lower, "linux"), strings.HasPrefix(lower, "darwin"):
		return Posix
	case strings.HasPrefix(lower, "msys"), strings.HasPrefix(lower, "cygwin"), strings.HasPrefix(lower, "mingw"):
		return Win32
	default:
		return Unknown
	}
}

// Detect resolves the host platform tag. Deterministic and side-effect free
// beyond reading the kernel identification.
func Detect(env Env) Platform {
	return MapKernel(env.KernelName())
}

// OSEnv is the real host environment.
type OSEnv struct{}

func NewOSEnv() *OSEnv { return &OSEnv{} }

func (*OSEnv) KernelName() string {
	if out, err := exec.Command("uname", "-s").Output(); err == nil {
		return strings.TrimSpace(string(out))
	}
	// uname is unavailable outside posix-like shells; synthesize a name
	// from the Go runtime instead.
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Msys"
	default:
		return runtime.GOOS
	}
}

func (*OSEnv) LookPath(name string) (string, bool) {
	p, err := exec.LookPath(name)
	return p, err == nil
}
