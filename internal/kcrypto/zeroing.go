package kcrypto

import "crypto/subtle"

// SecureZero overwrites b with zeros in a way the compiler cannot optimize
// away, to shrink the window during which key material is recoverable from
// process memory. Go's garbage collector can still leave copies behind;
// this is best-effort hardening, not a guarantee.
func SecureZero(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}

// SecureZeroMultiple zeros every slice given.
func SecureZeroMultiple(slices ...[]byte) {
	for _, s := range slices {
		SecureZero(s)
	}
}
