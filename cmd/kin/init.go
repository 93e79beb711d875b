package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pcrockett/kin-backup/internal/project"
	"github.com/pcrockett/kin-backup/internal/prompt"
	"github.com/pcrockett/kin-backup/internal/render"
	"github.com/spf13/cobra"
)

var (
	initOwner      string
	initRecipients []string
)

var initCmd = &cobra.Command{
	Use:   "init [DIR]",
	Short: "Create a new project",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initOwner, "owner", "", "your name, shown in the instructions you hand to each recipient")
	initCmd.Flags().StringSliceVar(&initRecipients, "recipients", nil, "names of the people who should be able to recover this backup")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	owner := initOwner
	if owner == "" {
		line, err := prompt.Line("Owner name: ")
		if err != nil {
			return err
		}
		owner = line
	}

	names := initRecipients
	if len(names) == 0 {
		line, err := prompt.Line("Recipient names (space separated): ")
		if err != nil {
			return err
		}
		names = strings.Fields(line)
	}
	if len(names) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	proj, err := project.Init(dir)
	if err != nil {
		return err
	}

	recipients := make([]project.Recipient, len(names))
	for i, name := range names {
		passphrase, err := project.GeneratePassphrase()
		if err != nil {
			return fmt.Errorf("generating passphrase for %s: %w", name, err)
		}
		recipients[i] = project.Recipient{Name: name, Passphrase: passphrase}
	}

	settings := project.NewSettings(owner, recipients)
	if err := settings.Write(proj.ConfigFile()); err != nil {
		return err
	}

	overviewPath := filepath.Join(proj.ConfigDir(), "overview.md")
	if err := os.WriteFile(overviewPath, []byte(render.OverviewTemplate), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized project for %s at %s\n", owner, proj.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "Put files recipients may see in %s/public\n", proj.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "Put files that should stay encrypted in %s/private\n", proj.Path())
	return nil
}
