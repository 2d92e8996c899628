package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"forge_setup/internal/config"
	"forge_setup/internal/install"
	"forge_setup/internal/logger"
	"forge_setup/internal/platform"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logger.ErrorText("❌ "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dryRun, verbose bool

	cmd := &cobra.Command{
		Use:           "installer [package]",
		Short:         "Install Node.js and the Forge CLI",
		Long:          "Ensures a Node.js runtime is present and recent enough, then installs the Forge CLI as a global npm package.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			cfg.DryRun = dryRun
			cfg.Verbose = verbose
			if len(args) == 1 {
				cfg.Package = args[0]
			}

			out := cmd.OutOrStdout()
			log := logger.NewConsole(out)
			env := platform.NewOSEnv()

			var runner platform.Runner
			if cfg.DryRun {
				runner = &platform.DryRunner{Out: out}
			} else {
				execRunner := &platform.ExecRunner{}
				if cfg.Verbose {
					if dir, err := config.ForgeDir(); err == nil {
						if err := os.MkdirAll(dir, 0o755); err == nil {
							if trace, terr := logger.NewTrace(filepath.Join(dir, "setup.log")); terr == nil {
								execRunner.Trace = trace
								defer trace.Sync() //nolint:errcheck
							} else {
								log.Warning(fmt.Sprintf("⚠️ Command trace unavailable: %v", terr))
							}
						}
					}
				}
				runner = execRunner
			}

			return install.Run(cfg, env, runner, log, cmd.InOrStdin(), out)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "display the commands that would run instead of executing them")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "write a structured command trace to ~/.forge/setup.log")
	// --dry is an accepted spelling of --dry-run
	cmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "dry" {
			name = "dry-run"
		}
		return pflag.NormalizedName(name)
	})

	return cmd
}
