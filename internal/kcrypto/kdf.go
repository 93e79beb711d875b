package kcrypto

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// KDF parameters, chosen to match libsodium's crypto_pwhash "sensitive"
// limits (OPSLIMIT_SENSITIVE=4, MEMLIMIT_SENSITIVE=1 GiB, ALG_ARGON2ID13):
// memory-hard and slow enough that a wrong-passphrase trial-decrypt over a
// handful of peers still completes in a few seconds, never milliseconds.
//
// CRITICAL: these parameters MUST NOT change, or existing backup packages
// become impossible to decrypt.
const (
	SaltSize     = 16
	WrapKeySize  = 32
	kdfTime      = 4
	kdfMemoryKiB = 1 << 20 // 1 GiB
	kdfThreads   = 4
)

// DeriveKey derives a WrapKeySize-byte wrapping key from a UTF-8 passphrase
// and a SaltSize-byte salt using Argon2id. The passphrase's byte length
// (not its rune count) is the effective input length. Deterministic given
// the same (passphrase, salt).
func DeriveKey(passphrase []byte, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("kdf: salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	key := argon2.IDKey(passphrase, salt, kdfTime, kdfMemoryKiB, kdfThreads, WrapKeySize)

	// Sanity check: a zero key would mean the underlying implementation
	// silently failed to do any work.
	if bytes.Equal(key, make([]byte, WrapKeySize)) {
		return nil, fmt.Errorf("kdf: argon2id produced a zero key")
	}

	return key, nil
}
