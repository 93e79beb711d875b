package main

import (
	"errors"
	"fmt"

	"github.com/pcrockett/kin-backup/internal/compile"
	"github.com/pcrockett/kin-backup/internal/kinerrors"
	"github.com/spf13/cobra"
)

var (
	compileProjectDir string
	compileRecipient  string
)

var compileCmd = &cobra.Command{
	Use:   "compile DEST",
	Short: "Compile a backup package for one recipient",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringVar(&compileProjectDir, "project-dir", "", "project directory (default: current directory)")
	compileCmd.Flags().StringVar(&compileRecipient, "recipient", "", "recipient this package is being compiled for")
	compileCmd.MarkFlagRequired("recipient")
}

func runCompile(cmd *cobra.Command, args []string) error {
	dest := args[0]

	err := compile.Run(&compile.Request{
		ProjectDir: compileProjectDir,
		DestDir:    dest,
		Recipient:  compileRecipient,
	})
	if err != nil {
		if errors.Is(err, kinerrors.ErrDestinationNotEmpty) {
			return fmt.Errorf("%s must be empty or not yet exist", dest)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Compiled package for %s at %s\n", compileRecipient, dest)
	return nil
}
