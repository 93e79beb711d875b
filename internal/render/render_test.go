package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadmeRendersPassphraseAndPeers(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "overview.md")
	if err := os.WriteFile(mdPath, []byte(OverviewTemplate), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	model := InstructionModel{
		Owner:      "Carol",
		Recipient:  "Alice",
		Passphrase: "correct horse battery staple",
		Peers:      []Peer{{Name: "Bob"}},
	}

	destPath := filepath.Join(dir, "readme.html")
	if err := Instructions(mdPath, model, destPath); err != nil {
		t.Fatalf("Instructions: %v", err)
	}

	html, err := os.ReadFile(destPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	got := string(html)
	for _, want := range []string{"Carol", "Alice", "correct horse battery staple", "Bob"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestReadmeMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	err := Instructions(filepath.Join(dir, "missing.md"), InstructionModel{}, filepath.Join(dir, "out.html"))
	if err == nil {
		t.Fatal("expected error for missing template")
	}
}
