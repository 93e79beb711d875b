package restore

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pcrockett/kin-backup/internal/archive"
	"github.com/pcrockett/kin-backup/internal/backup"
	"github.com/pcrockett/kin-backup/internal/kcrypto"
	"github.com/pcrockett/kin-backup/internal/kinerrors"
)

// buildTestPackage hand-assembles a package the way compile.Run would,
// without depending on the compile package (which needs a kindecrypt
// binary on PATH to finish a full run).
func buildTestPackage(t *testing.T) (pkgDir, passphrase string) {
	t.Helper()

	master := kcrypto.RandomBytes(kcrypto.WrapKeySize)
	passphrase = "correct horse battery staple"

	wk, err := kcrypto.Wrap(master, passphrase)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}

	pkgDir = filepath.Join(t.TempDir(), "pkg")
	pkg, err := backup.Init(pkgDir, []kcrypto.WrappedKey{wk})
	if err != nil {
		t.Fatalf("backup.Init: %v", err)
	}

	srcDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(srcDir, "secret.txt"), []byte("hello private"), 0o644); err != nil {
		t.Fatalf("write secret.txt: %v", err)
	}

	tempZip := filepath.Join(t.TempDir(), "private.zip.tmp")
	if err := archive.Build(srcDir, tempZip); err != nil {
		t.Fatalf("archive.Build: %v", err)
	}

	zipFile, err := os.Open(tempZip)
	if err != nil {
		t.Fatalf("open temp zip: %v", err)
	}
	defer zipFile.Close()

	out, err := os.Create(pkg.PrivateArchive())
	if err != nil {
		t.Fatalf("create private archive: %v", err)
	}
	defer out.Close()

	if err := kcrypto.Encrypt(master, zipFile, out); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	return pkgDir, passphrase
}

func TestRunRecoversPrivateArchive(t *testing.T) {
	pkgDir, passphrase := buildTestPackage(t)
	destFile := filepath.Join(t.TempDir(), "recovered.zip")

	if err := Run(&Request{BackupDir: pkgDir, DestFile: destFile, Passphrase: passphrase}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	r, err := zip.OpenReader(destFile)
	if err != nil {
		t.Fatalf("open recovered zip: %v", err)
	}
	defer r.Close()

	if len(r.File) != 1 || r.File[0].Name != "secret.txt" {
		t.Fatalf("unexpected zip contents: %+v", r.File)
	}

	rc, err := r.File[0].Open()
	if err != nil {
		t.Fatalf("open secret.txt entry: %v", err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		t.Fatalf("read secret.txt entry: %v", err)
	}
	if buf.String() != "hello private" {
		t.Errorf("recovered contents = %q, want %q", buf.String(), "hello private")
	}
}

func TestRunWrongPassphrase(t *testing.T) {
	pkgDir, _ := buildTestPackage(t)
	destFile := filepath.Join(t.TempDir(), "recovered.zip")

	err := Run(&Request{BackupDir: pkgDir, DestFile: destFile, Passphrase: "not the right words"})
	if !errors.Is(err, kinerrors.ErrNoMatchingKey) {
		t.Fatalf("expected ErrNoMatchingKey, got %v", err)
	}
}

func TestRunRefusesToOverwriteDestination(t *testing.T) {
	pkgDir, passphrase := buildTestPackage(t)
	destFile := filepath.Join(t.TempDir(), "recovered.zip")
	if err := os.WriteFile(destFile, []byte("already here"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	err := Run(&Request{BackupDir: pkgDir, DestFile: destFile, Passphrase: passphrase})
	if !errors.Is(err, kinerrors.ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
}
