package config

import (
	"os"
	"os/user"
	"strconv"

	"github.com/denisbrodbeck/machineid"
)

// DefaultPackage is the npm package this installer provisions.
const DefaultPackage = "@forgelabs/cli"

// DefaultMinNodeMajor is the lowest Node.js major version the Forge CLI
// supports.
const DefaultMinNodeMajor = 16

// Config holds the runtime configuration for one installer run. It is built
// once and threaded explicitly into each step; no step reads ambient state.
type Config struct {
	// Package is the npm package to install globally.
	Package string
	// MinNodeMajor is the minimum acceptable Node.js major version.
	MinNodeMajor int
	// DryRun displays commands instead of executing them.
	DryRun bool
	// Verbose writes a structured command trace to ~/.forge/setup.log.
	Verbose bool
	// NPMMirror is an optional corporate registry mirror to consider.
	NPMMirror string
	// ReportEndpoint, when set, receives the install receipt as JSON.
	ReportEndpoint string

	UserName  string
	MachineID string
}

// Default returns the configuration from defaults plus environment-variable
// overrides.
func Default() *Config {
	machineID, err := machineid.ID()
	if err != nil {
		machineID = "unknown-machine-id"
	}
	userName := "unknown"
	if u, err := user.Current(); err == nil {
		userName = u.Username
	}

	cfg := &Config{
		Package:        DefaultPackage,
		MinNodeMajor:   DefaultMinNodeMajor,
		NPMMirror:      os.Getenv("FORGE_NPM_MIRROR"),
		ReportEndpoint: os.Getenv("FORGE_REPORT_ENDPOINT"),
		UserName:       userName,
		MachineID:      machineID,
	}
	if pkg := os.Getenv("FORGE_CLI_PACKAGE"); pkg != "" {
		cfg.Package = pkg
	}
	if v := os.Getenv("FORGE_MIN_NODE_MAJOR"); v != "" {
		if major, err := strconv.Atoi(v); err == nil && major > 0 {
			cfg.MinNodeMajor = major
		}
	}
	return cfg
}
