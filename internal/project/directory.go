package project

import (
	"os"
	"path/filepath"

	"github.com/pcrockett/kin-backup/internal/kinerrors"
)

// Directory is a project's working tree: a public subtree that will ship
// unencrypted, a private subtree that will be compiled into the
// encrypted archive, and a config subdirectory holding the settings file
// and readme templates.
type Directory struct {
	path string
}

// Open wraps an existing project directory without modifying it.
func Open(path string) *Directory {
	return &Directory{path: path}
}

// Init creates a new project rooted at path, which must either not exist
// yet or be an empty directory, along with its public, private, and
// config subdirectories.
func Init(path string) (*Directory, error) {
	if err := ensureEmptyDir(path); err != nil {
		return nil, err
	}

	d := &Directory{path: path}
	for _, subdir := range []string{d.PublicDir(), d.PrivateDir(), d.ConfigDir()} {
		if err := ensureEmptyDir(subdir); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ensureEmptyDir creates path if it does not exist, or confirms it is an
// empty directory if it does.
func ensureEmptyDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.Mkdir(path, 0o755); err != nil {
			return kinerrors.NewPathError("mkdir", path, err)
		}
		return nil
	}
	if err != nil {
		return kinerrors.NewPathError("stat", path, err)
	}

	if !info.IsDir() {
		return kinerrors.NewPathError("init", path, kinerrors.NewValidationError("path", "exists and is not a directory"))
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return kinerrors.NewPathError("readdir", path, err)
	}
	if len(entries) > 0 {
		return kinerrors.NewPathError("init", path, kinerrors.ErrDestinationNotEmpty)
	}
	return nil
}

// Path returns the project root.
func (d *Directory) Path() string { return d.path }

// PublicDir returns the subtree shipped unencrypted in a compiled package.
func (d *Directory) PublicDir() string { return filepath.Join(d.path, "public") }

// PrivateDir returns the subtree compiled into the encrypted archive.
func (d *Directory) PrivateDir() string { return filepath.Join(d.path, "private") }

// ConfigDir returns the directory holding config.json and readme
// templates.
func (d *Directory) ConfigDir() string { return filepath.Join(d.path, ".kin") }

// ConfigFile returns the path to the project's settings file.
func (d *Directory) ConfigFile() string { return filepath.Join(d.ConfigDir(), configFileName) }
