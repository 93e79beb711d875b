package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pcrockett/kin-backup/internal/kinerrors"
)

func TestInitCreatesSubdirs(t *testing.T) {
	root := filepath.Join(t.TempDir(), "newproject")

	d, err := Init(root)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, dir := range []string{d.PublicDir(), d.PrivateDir(), d.ConfigDir()} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}

func TestInitOnExistingEmptyDir(t *testing.T) {
	root := t.TempDir()

	if _, err := Init(root); err != nil {
		t.Fatalf("Init on existing empty dir: %v", err)
	}
}

func TestInitRejectsNonEmptyDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "existing.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err := Init(root)
	if !errors.Is(err, kinerrors.ErrDestinationNotEmpty) {
		t.Fatalf("expected ErrDestinationNotEmpty, got %v", err)
	}
}

func TestConfigFilePath(t *testing.T) {
	d := Open("/tmp/project")
	want := filepath.Join("/tmp/project", ".kin", "config.json")
	if d.ConfigFile() != want {
		t.Errorf("ConfigFile() = %q, want %q", d.ConfigFile(), want)
	}
}
