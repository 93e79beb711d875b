// Command kindecrypt is the standalone recovery executable bundled into
// every compiled package. A recipient runs it directly - no kin install
// required - and it defaults to treating its own parent directory as the
// package to recover from.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pcrockett/kin-backup/internal/kinerrors"
	"github.com/pcrockett/kin-backup/internal/kinlog"
	"github.com/pcrockett/kin-backup/internal/prompt"
	"github.com/pcrockett/kin-backup/internal/restore"
)

var version = "dev"

func main() {
	backupDir := flag.String("backup-dir", "", "package directory (default: this executable's parent directory)")
	destination := flag.String("destination", "", "where to write the recovered archive (default: prompt)")
	verbosity := flag.String("log-level", "", "log verbosity: debug, info, warn, error (default: $KIN_LOG or info)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	kinlog.Setup(*verbosity)

	if err := run(*backupDir, *destination); err != nil {
		if errors.Is(err, kinerrors.ErrNoMatchingKey) {
			fmt.Fprintln(os.Stderr, "wrong passphrase")
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(backupDir, destination string) error {
	dir := backupDir
	if dir == "" {
		self, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locating this executable: %w", err)
		}
		dir = filepath.Dir(self)
	}

	dest := destination
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

	if err := restore.Run(&restore.Request{BackupDir: dir, DestFile: dest, Passphrase: passphrase}); err != nil {
		return err
	}

	fmt.Println("Recovered archive to", dest)
	return nil
}
