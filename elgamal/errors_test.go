package elgamal

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrModulusTooSmall, "ErrModulusTooSmall"},
		{ErrInvalidCertainty, "ErrInvalidCertainty"},
		{ErrInvalidAttempts, "ErrInvalidAttempts"},
		{ErrUnsupportedHash, "ErrUnsupportedHash"},
		{ErrPrimeExhausted, "ErrPrimeExhausted"},
		{ErrSignAttemptsExhausted, "ErrSignAttemptsExhausted"},
		{ErrKeyMismatch, "ErrKeyMismatch"},
		{ErrInvalidKey, "ErrInvalidKey"},
		{ErrNoInverse, "ErrNoInverse"},
		{ErrRandom, "ErrRandom"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output and unwrapping for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
		kind ErrorKind
	}{
		{makeError(ErrModulusTooSmall, "some error"), "some error", ErrModulusTooSmall},
		{makeError(ErrNoInverse, "human-readable error"), "human-readable error", ErrNoInverse},
	}

	for i, test := range tests {
		if result := test.in.Error(); result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
		}
		if !errors.Is(test.in, test.kind) {
			t.Errorf("#%d: %v is not %v", i, test.in, test.kind)
		}
		var kind ErrorKind
		if !errors.As(test.in, &kind) || kind != test.kind {
			t.Errorf("#%d: As gave %v, want %v", i, kind, test.kind)
		}
	}
}
