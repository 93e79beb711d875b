// Package kcrypto provides the cryptographic primitives of the kin-backup
// core: random byte generation, Argon2id passphrase derivation, single-shot
// AEAD key wrapping, and the chunked stream AEAD used for private archives.
//
// This is AUDIT-CRITICAL code - changes here directly affect every
// backup package kin can produce and decrypt.
package kcrypto

import (
	"crypto/rand"
	"fmt"
)

// Fill fills buf with cryptographically strong random bytes.
//
// No failure case is exposed to callers: crypto/rand.Read only errors
// when the OS entropy source itself is broken, which is a fatal condition
// the process cannot recover from. Fill panics in that case. There is no
// separate crypto init step required by this pure-Go stack.
func Fill(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("fatal crypto/rand error: %v", err))
	}
}

// RandomBytes allocates and fills n cryptographically strong random bytes.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	Fill(b)
	return b
}
