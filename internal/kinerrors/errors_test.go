package kinerrors

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidKeyLength", ErrInvalidKeyLength},
		{"ErrInvalidSaltLength", ErrInvalidSaltLength},
		{"ErrInvalidNonceLength", ErrInvalidNonceLength},
		{"ErrInvalidWrappedLength", ErrInvalidWrappedLength},
		{"ErrUnsupportedEntry", ErrUnsupportedEntry},
		{"ErrRecipientNotFound", ErrRecipientNotFound},
		{"ErrRecipientAmbiguous", ErrRecipientAmbiguous},
		{"ErrDestinationNotEmpty", ErrDestinationNotEmpty},
		{"ErrDestinationExists", ErrDestinationExists},
		{"ErrKdfExhaustion", ErrKdfExhaustion},
		{"ErrWrapFailed", ErrWrapFailed},
		{"ErrWrongPassphrase", ErrWrongPassphrase},
		{"ErrNoMatchingKey", ErrNoMatchingKey},
		{"ErrCorruptHeader", ErrCorruptHeader},
		{"ErrTruncated", ErrTruncated},
		{"ErrAuthFailure", ErrAuthFailure},
		{"ErrConfigCorrupt", ErrConfigCorrupt},
		{"ErrBase64Invalid", ErrBase64Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("sentinel error should not be nil")
			}
			if tt.err.Error() == "" {
				t.Error("sentinel error should have a message")
			}
		})
	}
}

func TestPathError(t *testing.T) {
	base := errors.New("permission denied")
	err := NewPathError("chmod", "/tmp/pkg/private.kin", base)

	if err.Error() != "chmod /tmp/pkg/private.kin: permission denied" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("errors.Is should see through PathError to the wrapped error")
	}
	if NewPathError("chmod", "x", nil) != nil {
		t.Error("NewPathError with nil err should return nil")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("recipient", "must not be empty")
	if err.Error() != "recipient: must not be empty" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
