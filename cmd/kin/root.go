package main

import (
	"fmt"
	"os"

	"github.com/pcrockett/kin-backup/internal/kinlog"
	"github.com/spf13/cobra"
)

// version is set by the build (ldflags); defaults to "dev" for local builds.
var version = "dev"

var verbosity string

var rootCmd = &cobra.Command{
	Use:     "kin",
	Short:   "Prepare encrypted backup packages for your next of kin",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		kinlog.Setup(verbosity)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&verbosity, "log-level", "", "log verbosity: debug, info, warn, error (default: $KIN_LOG or info)")
	rootCmd.AddCommand(initCmd, compileCmd, decryptCmd)
}

func main() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
