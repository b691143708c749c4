package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rethab/coreutils/core/environ"
	"github.com/rethab/coreutils/core/runner"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

var exitStatus int

// rootCmd represents the env command. The env grammar mixes options,
// NAME=VALUE assignments and a trailing command, so cobra's own flag
// parsing is disabled and every token is handed to the scanner verbatim.
var rootCmd = &cobra.Command{
	Use:                "env [OPTION]... [-] [NAME=VALUE]... [COMMAND [ARG]...]",
	Short:              "Set each NAME to VALUE in the environment and run COMMAND.",
	DisableFlagParsing: true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	Run: func(cmd *cobra.Command, args []string) {
		r := &runner.Runner{
			Args:    args,
			Env:     environ.System(),
			FS:      afero.NewOsFs(),
			Stdin:   os.Stdin,
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
			Version: version,
		}
		exitStatus = r.Run()
	},
}

// Execute runs the root command and returns the process exit status.
// This is called by main.main().
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitStatus
}
