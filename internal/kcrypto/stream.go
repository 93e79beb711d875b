package kcrypto

import (
	"encoding/binary"
	"io"

	"github.com/pcrockett/kin-backup/internal/kinerrors"
	"golang.org/x/crypto/chacha20poly1305"
)

// Stream AEAD: a chunked construction in which each PlaintextChunkSize
// chunk is sealed independently under a per-chunk nonce derived from a
// random per-stream header, and the last chunk carries a distinguished
// "final" tag so truncation is detectable without a length prefix.
//
// This is a from-scratch STREAM construction in the spirit of libsodium's
// crypto_secretstream_xchacha20poly1305, built on this stack's pure-Go
// AEAD instead of a cgo binding: a random header is written first, then
// every chunk's nonce is the header XORed with an incrementing
// little-endian counter, and the chunk's tag byte (MESSAGE or FINAL) rides
// along as additional authenticated data so tampering with the tag itself
// is detected by the AEAD, not by a side channel.
const (
	PlaintextChunkSize  = 16 * 1024
	TagOverhead         = chacha20poly1305.Overhead
	CiphertextChunkSize = PlaintextChunkSize + TagOverhead
	StreamHeaderSize    = chacha20poly1305.NonceSizeX
)

type chunkTag byte

const (
	tagMessage chunkTag = 0x00
	tagFinal   chunkTag = 0x01
)

// nonceFor derives the nonce for chunk index counter from the stream's
// random header by XORing the counter, little-endian, into its last 8
// bytes. The header's first 16 bytes are never touched, so two streams
// sharing a header by accident (which should never happen, since the
// header is drawn fresh per Encrypt call) would still differ unless every
// chunk counter also collided.
func nonceFor(header []byte, counter uint64) []byte {
	nonce := make([]byte, len(header))
	copy(nonce, header)
	var ctr [8]byte
	binary.LittleEndian.PutUint64(ctr[:], counter)
	for i, b := range ctr {
		nonce[len(nonce)-8+i] ^= b
	}
	return nonce
}

// Encrypt streams plaintext from r to w as a header followed by a sequence
// of tagged ciphertext chunks, the last of which carries the FINAL tag.
// Even empty input produces one FINAL-tagged chunk after the header, so
// decrypt always has a definite end. If w is a buffered writer, the
// caller is responsible for flushing it once Encrypt returns.
func Encrypt(key []byte, r io.Reader, w io.Writer) error {
	if len(key) != WrapKeySize {
		return kinerrors.ErrInvalidKeyLength
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return err
	}

	header := RandomBytes(StreamHeaderSize)
	if _, err := w.Write(header); err != nil {
		return err
	}

	buf := make([]byte, PlaintextChunkSize)
	var counter uint64

	for {
		n, err := io.ReadFull(r, buf)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return err
		}

		final := n < PlaintextChunkSize
		tag := tagMessage
		if final {
			tag = tagFinal
		}

		nonce := nonceFor(header, counter)
		ciphertext := aead.Seal(nil, nonce, buf[:n], []byte{byte(tag)})
		counter++

		if _, werr := w.Write(ciphertext); werr != nil {
			return werr
		}

		if final {
			return nil
		}
	}
}

// Decrypt reverses Encrypt: it reads the header, then chunks of up to
// CiphertextChunkSize bytes, opening each in turn and writing the
// recovered plaintext to w, until a chunk tagged FINAL is opened.
//
// A short read strictly between 0 and TagOverhead bytes is reported as
// ErrCorruptHeader; a read of exactly 0 bytes where a FINAL chunk was still
// expected is ErrTruncated; any authentication failure is ErrAuthFailure
// and is unrecoverable - callers must not retry.
func Decrypt(key []byte, r io.Reader, w io.Writer) error {
	if len(key) != WrapKeySize {
		return kinerrors.ErrInvalidKeyLength
	}

	header := make([]byte, StreamHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return kinerrors.ErrCorruptHeader
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return kinerrors.ErrCorruptHeader
	}

	buf := make([]byte, CiphertextChunkSize)
	var counter uint64

	for {
		n, err := io.ReadFull(r, buf)
		if err == io.EOF || n == 0 {
			return kinerrors.ErrTruncated
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return err
		}
		if n < TagOverhead {
			return kinerrors.ErrCorruptHeader
		}

		final := n < CiphertextChunkSize
		tag := tagMessage
		if final {
			tag = tagFinal
		}

		nonce := nonceFor(header, counter)
		plaintext, openErr := aead.Open(nil, nonce, buf[:n], []byte{byte(tag)})
		if openErr != nil {
			// A stream cut off inside a chunk reads as a short (so
			// apparently-final) chunk here, but it was sealed with the
			// MESSAGE tag - the AAD mismatch makes that
			// indistinguishable from tampering, which is the point: both
			// surface as an unrecoverable authentication failure.
			return kinerrors.ErrAuthFailure
		}
		counter++

		if _, werr := w.Write(plaintext); werr != nil {
			return werr
		}

		if final {
			return nil
		}
	}
}
