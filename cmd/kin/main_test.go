package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pcrockett/kin-backup/internal/project"
)

func resetFlags() {
	initOwner = ""
	initRecipients = nil
	compileProjectDir = ""
	compileRecipient = ""
	decryptBackupDir = ""
	decryptDestFile = ""
}

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitCreatesProjectWithRecipients(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")

	if _, err := execRoot(t, "init", dir, "--owner", "Carol", "--recipients", "alice,bob"); err != nil {
		t.Fatalf("init: %v", err)
	}

	settings, err := project.ReadSettings(filepath.Join(dir, ".kin", "config.json"))
	if err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}
	if settings.Owner != "Carol" {
		t.Errorf("Owner = %q, want Carol", settings.Owner)
	}
	if len(settings.Recipients) != 2 {
		t.Fatalf("len(Recipients) = %d, want 2", len(settings.Recipients))
	}

	if _, err := os.Stat(filepath.Join(dir, ".kin", "overview.md")); err != nil {
		t.Errorf("overview.md was not written: %v", err)
	}
}

func TestCompileRequiresRecipientFlag(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	if _, err := execRoot(t, "init", dir, "--owner", "Carol", "--recipients", "alice,bob"); err != nil {
		t.Fatalf("init: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "pkg")
	if _, err := execRoot(t, "compile", dest, "--project-dir", dir); err == nil {
		t.Fatal("expected an error when --recipient is omitted")
	}
}

func TestCompileRejectsNonEmptyDestination(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	if _, err := execRoot(t, "init", dir, "--owner", "Carol", "--recipients", "alice,bob"); err != nil {
		t.Fatalf("init: %v", err)
	}

	dest := t.TempDir()
	if err := os.WriteFile(filepath.Join(dest, "x"), []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err := execRoot(t, "compile", dest, "--project-dir", dir, "--recipient", "alice")
	if err == nil {
		t.Fatal("expected an error for a non-empty destination")
	}
}
