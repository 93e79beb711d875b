package main

import (
	"errors"
	"fmt"

	"github.com/pcrockett/kin-backup/internal/kinerrors"
	"github.com/pcrockett/kin-backup/internal/prompt"
	"github.com/pcrockett/kin-backup/internal/restore"
	"github.com/spf13/cobra"
)

var (
	decryptBackupDir string
	decryptDestFile  string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Recover a compiled package's private archive",
	Args:  cobra.NoArgs,
	RunE:  runDecrypt,
}

func init() {
	decryptCmd.Flags().StringVar(&decryptBackupDir, "backup-dir", "", "package directory (default: current directory)")
	decryptCmd.Flags().StringVar(&decryptDestFile, "destination", "", "where to write the recovered archive (default: prompt)")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	dest := decryptDestFile
	if dest == "" {
		line, err := prompt.Line("Recover into file: ")
		if err != nil {
			return err
		}
		dest = line
	}

	passphrase, err := prompt.Passphrase("Passphrase: ")
	if err != nil {
		return err
	}

	err = restore.Run(&restore.Request{
		BackupDir:  decryptBackupDir,
		DestFile:   dest,
		Passphrase: passphrase,
	})
	if err != nil {
		if errors.Is(err, kinerrors.ErrNoMatchingKey) {
			return fmt.Errorf("wrong passphrase")
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recovered archive to %s\n", dest)
	return nil
}
