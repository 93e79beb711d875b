// Package backup reads and writes a compiled kin-backup package: the
// on-disk layout a next-of-kin recipient receives, holding the public
// archive, the encrypted private archive, and the wrapped keys needed to
// recover it.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pcrockett/kin-backup/internal/kcrypto"
	"github.com/pcrockett/kin-backup/internal/kinerrors"
	"github.com/pcrockett/kin-backup/internal/masterkey"
)

const configFileName = "config.json"

// wrappedKeyJSON is the on-disk shape of one wrapped master key. The
// manifest never records which recipient a key belongs to: decrypt must
// try each one against the supplied passphrase in turn.
type wrappedKeyJSON struct {
	Data           string `json:"data"`
	PassphraseSalt string `json:"passphrase_salt"`
	Nonce          string `json:"nonce"`
}

type manifestJSON struct {
	EncryptedKeys []wrappedKeyJSON `json:"encrypted_keys"`
}

// Package is a compiled backup package rooted at a directory.
type Package struct {
	path string
}

// Open wraps an existing package directory.
func Open(path string) *Package {
	return &Package{path: path}
}

// Init creates a new package directory and writes its manifest with the
// given wrapped keys. path must be absent or an already-empty directory;
// a non-empty destination fails with kinerrors.ErrDestinationNotEmpty.
func Init(path string, keys []kcrypto.WrappedKey) (*Package, error) {
	if err := ensureEmptyDir(path); err != nil {
		return nil, err
	}

	pkg := &Package{path: path}
	if err := os.Mkdir(pkg.ConfigDir(), 0o755); err != nil {
		return nil, kinerrors.NewPathError("mkdir", pkg.ConfigDir(), err)
	}

	if err := writeManifest(pkg.ConfigFile(), keys); err != nil {
		return nil, err
	}
	return pkg, nil
}

// ensureEmptyDir creates path if it does not exist, or confirms it is an
// empty directory if it does, the same rule a project directory's own
// Init applies.
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

// Path returns the package root.
func (p *Package) Path() string { return p.path }

// ConfigDir returns the directory holding the package manifest.
func (p *Package) ConfigDir() string { return filepath.Join(p.path, ".kin") }

// ConfigFile returns the path to the package manifest.
func (p *Package) ConfigFile() string { return filepath.Join(p.ConfigDir(), configFileName) }

// PublicArchive returns the path to the unencrypted public zip.
func (p *Package) PublicArchive() string { return filepath.Join(p.path, "public.zip") }

// PrivateArchive returns the path to the encrypted private stream.
func (p *Package) PrivateArchive() string { return filepath.Join(p.path, "private.kin") }

// ReadmePath returns the path to the rendered HTML instructions.
func (p *Package) ReadmePath() string { return filepath.Join(p.path, "readme.html") }

// DecryptExePath returns the path to the bundled recovery binary for the
// current platform's package layout.
func (p *Package) DecryptExePath() (string, error) {
	switch runtime.GOOS {
	case "linux", "darwin":
		return filepath.Join(p.path, "decrypt"), nil
	case "windows":
		return filepath.Join(p.path, "decrypt.exe"), nil
	default:
		return "", fmt.Errorf("%w: %s", kinerrors.ErrUnsupportedEntry, runtime.GOOS)
	}
}

// DecryptMasterKey tries passphrase against every wrapped key recorded in
// the manifest, recipient-blind, returning the first one it unwraps.
func (p *Package) DecryptMasterKey(passphrase string) (*masterkey.MasterKey, error) {
	keys, err := readManifest(p.ConfigFile())
	if err != nil {
		return nil, err
	}

	for _, wk := range keys {
		raw, err := kcrypto.Unwrap(wk, passphrase)
		if err != nil {
			continue // expected for every wrapped key but the right one
		}
		return masterkey.FromBytes(raw), nil
	}

	return nil, kinerrors.ErrNoMatchingKey
}

func writeManifest(path string, keys []kcrypto.WrappedKey) error {
	encoded := make([]wrappedKeyJSON, len(keys))
	for i, k := range keys {
		encoded[i] = wrappedKeyJSON{
			Data:           encodeB64(k.Data),
			PassphraseSalt: encodeB64(k.Salt),
			Nonce:          encodeB64(k.Nonce),
		}
	}

	raw, err := json.MarshalIndent(manifestJSON{EncryptedKeys: encoded}, "", "  ")
	if err != nil {
		return kinerrors.NewPathError("marshal", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return kinerrors.NewPathError("write", path, err)
	}
	return nil
}

func readManifest(path string) ([]kcrypto.WrappedKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, kinerrors.NewPathError("read", path, err)
	}

	var m manifestJSON
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", kinerrors.ErrConfigCorrupt, err)
	}

	keys := make([]kcrypto.WrappedKey, len(m.EncryptedKeys))
	for i, k := range m.EncryptedKeys {
		data, err := decodeB64(k.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", kinerrors.ErrConfigCorrupt, err)
		}
		salt, err := decodeB64(k.PassphraseSalt)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", kinerrors.ErrConfigCorrupt, err)
		}
		nonce, err := decodeB64(k.Nonce)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", kinerrors.ErrConfigCorrupt, err)
		}
		keys[i] = kcrypto.WrappedKey{Data: data, Salt: salt, Nonce: nonce}
	}
	return keys, nil
}
