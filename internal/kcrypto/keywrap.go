package kcrypto

import (
	"fmt"

	"github.com/pcrockett/kin-backup/internal/kinerrors"
	"golang.org/x/crypto/chacha20poly1305"
)

// NonceSize is the nonce length used for both key wrap and stream AEAD
// headers: XChaCha20-Poly1305's extended 24-byte nonce, wide enough to be
// drawn at random per wrap without a birthday-bound collision risk.
const NonceSize = chacha20poly1305.NonceSizeX

// MACSize is the authentication tag length appended to any single-shot
// XChaCha20-Poly1305 ciphertext.
const MACSize = chacha20poly1305.Overhead

// WrappedKeySize is the length of a wrapped 32-byte master key once its
// Poly1305 tag is appended.
const WrappedKeySize = WrapKeySize + MACSize

// WrappedKey is a master key encrypted under a passphrase-derived key,
// together with the salt and nonce needed to re-derive that key and
// attempt to open it. Every field round-trips through base64 on disk.
type WrappedKey struct {
	Data  []byte // Ciphertext: 32-byte master key + Poly1305 tag
	Salt  []byte // Argon2id salt, SaltSize bytes
	Nonce []byte // XChaCha20-Poly1305 nonce, NonceSize bytes
}

// Wrap encrypts a 32-byte master key under a key derived from passphrase.
// A fresh salt and nonce are generated for every call, so wrapping the same
// master key under the same passphrase twice yields two unlinkable
// WrappedKey values.
func Wrap(masterKey []byte, passphrase string) (WrappedKey, error) {
	if len(masterKey) != WrapKeySize {
		return WrappedKey{}, kinerrors.ErrInvalidKeyLength
	}

	salt := RandomBytes(SaltSize)
	wrapKey, err := DeriveKey([]byte(passphrase), salt)
	if err != nil {
		return WrappedKey{}, fmt.Errorf("%w: %v", kinerrors.ErrKdfExhaustion, err)
	}
	defer SecureZero(wrapKey)

	aead, err := chacha20poly1305.NewX(wrapKey)
	if err != nil {
		return WrappedKey{}, fmt.Errorf("%w: %v", kinerrors.ErrWrapFailed, err)
	}

	nonce := RandomBytes(NonceSize)
	ciphertext := aead.Seal(nil, nonce, masterKey, nil)

	return WrappedKey{Data: ciphertext, Salt: salt, Nonce: nonce}, nil
}

// Unwrap re-derives the wrapping key from wk's stored salt and the given
// passphrase candidate, then attempts authenticated decryption. Returns
// kinerrors.ErrWrongPassphrase on authentication failure - this is the
// expected, non-oracle result used by trial decryption across a package's
// wrapped keys.
func Unwrap(wk WrappedKey, passphrase string) ([]byte, error) {
	if len(wk.Salt) != SaltSize {
		return nil, kinerrors.ErrInvalidSaltLength
	}
	if len(wk.Nonce) != NonceSize {
		return nil, kinerrors.ErrInvalidNonceLength
	}
	if len(wk.Data) != WrappedKeySize {
		return nil, kinerrors.ErrInvalidWrappedLength
	}

	wrapKey, err := DeriveKey([]byte(passphrase), wk.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kinerrors.ErrKdfExhaustion, err)
	}
	defer SecureZero(wrapKey)

	aead, err := chacha20poly1305.NewX(wrapKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kinerrors.ErrWrapFailed, err)
	}

	masterKey, err := aead.Open(nil, wk.Nonce, wk.Data, nil)
	if err != nil {
		return nil, kinerrors.ErrWrongPassphrase
	}

	return masterKey, nil
}
