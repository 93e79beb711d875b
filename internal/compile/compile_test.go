package compile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pcrockett/kin-backup/internal/project"
	"github.com/pcrockett/kin-backup/internal/render"
)

func setupProject(t *testing.T) *project.Directory {
	t.Helper()
	root := filepath.Join(t.TempDir(), "proj")
	proj, err := project.Init(root)
	if err != nil {
		t.Fatalf("project.Init: %v", err)
	}

	if err := os.WriteFile(filepath.Join(proj.PublicDir(), "hello.txt"), []byte("hello public"), 0o644); err != nil {
		t.Fatalf("write public file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(proj.PrivateDir(), "secret.txt"), []byte("hello private"), 0o644); err != nil {
		t.Fatalf("write private file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(proj.ConfigDir(), "overview.md"), []byte(render.OverviewTemplate), 0o644); err != nil {
		t.Fatalf("write readme template: %v", err)
	}

	settings := project.NewSettings("Carol", []project.Recipient{
		{Name: "alice", Passphrase: "alice passphrase words here"},
		{Name: "bob", Passphrase: "bob passphrase words here"},
	})
	if err := settings.Write(proj.ConfigFile()); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	return proj
}

func TestRunFailsWithoutDecryptBinaryOnPath(t *testing.T) {
	proj := setupProject(t)
	dest := filepath.Join(t.TempDir(), "pkg")

	err := Run(&Request{
		ProjectDir: proj.Path(),
		DestDir:    dest,
		Recipient:  "alice",
	})

	// No kindecrypt binary is installed in the test environment, so the
	// placeDecryptBinary phase is expected to fail; everything up to and
	// including rendering the instructions should already have happened.
	if err == nil {
		t.Fatal("expected an error because no kindecrypt binary is on PATH")
	}

	if _, statErr := os.Stat(filepath.Join(dest, "public.zip")); statErr != nil {
		t.Errorf("public.zip should have been built before the failure: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(dest, "private.kin")); statErr != nil {
		t.Errorf("private.kin should have been built before the failure: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(dest, "readme.html")); statErr != nil {
		t.Errorf("readme.html should have been rendered before the failure: %v", statErr)
	}
}

func TestRunRejectsUnknownRecipient(t *testing.T) {
	proj := setupProject(t)
	dest := filepath.Join(t.TempDir(), "pkg")

	err := Run(&Request{
		ProjectDir: proj.Path(),
		DestDir:    dest,
		Recipient:  "nobody",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown recipient")
	}
}
