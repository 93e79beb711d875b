// Package masterkey owns the single symmetric key that protects a
// project's private archive.
package masterkey

import (
	"encoding/base64"
	"fmt"

	"github.com/pcrockett/kin-backup/internal/kcrypto"
	"github.com/pcrockett/kin-backup/internal/kinerrors"
)

// Size is the length of a master key in raw bytes.
const Size = kcrypto.WrapKeySize

// MasterKey is an opaque 32-byte symmetric key. It never appears on disk
// except base64-encoded inside a project's settings file, or wrapped
// inside a backup package's manifest.
type MasterKey struct {
	data []byte
}

// New generates a fresh random master key.
func New() *MasterKey {
	return &MasterKey{data: kcrypto.RandomBytes(Size)}
}

// FromBytes wraps raw key material recovered from an unwrap operation.
// The caller transfers ownership of data; it must not use it afterward.
func FromBytes(data []byte) *MasterKey {
	return &MasterKey{data: data}
}

// DecodeBase64 decodes a standard-base64 string into a MasterKey, rejecting
// any decoded length other than Size bytes.
func DecodeBase64(s string) (*MasterKey, error) {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kinerrors.ErrBase64Invalid, err)
	}
	if len(decoded) != Size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", kinerrors.ErrInvalidKeyLength, len(decoded), Size)
	}
	return &MasterKey{data: decoded}, nil
}

// EncodeBase64 returns the standard-base64 encoding of the key.
func (k *MasterKey) EncodeBase64() string {
	return base64.StdEncoding.EncodeToString(k.data)
}

// Bytes returns the raw key material. Callers must not retain it beyond
// the scope of the operation using it.
func (k *MasterKey) Bytes() []byte {
	return k.data
}

// WrapFor wraps this master key under a key derived from passphrase,
// producing one recipient-independent WrappedKey.
func (k *MasterKey) WrapFor(passphrase string) (kcrypto.WrappedKey, error) {
	return kcrypto.Wrap(k.data, passphrase)
}

// Close securely zeros the key material. Safe to call multiple times.
func (k *MasterKey) Close() {
	if k == nil || k.data == nil {
		return
	}
	kcrypto.SecureZero(k.data)
	k.data = nil
}
