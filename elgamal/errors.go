package elgamal

// These constants identify the kind of an Error.
const (
	// ErrModulusTooSmall is returned when the requested modulus is too short
	// for [2, p-2] to hold a private exponent.
	ErrModulusTooSmall = ErrorKind("ErrModulusTooSmall")

	// ErrInvalidCertainty is returned when the primality round count is not
	// positive.
	ErrInvalidCertainty = ErrorKind("ErrInvalidCertainty")

	// ErrInvalidAttempts is returned when a retry bound is not positive.
	ErrInvalidAttempts = ErrorKind("ErrInvalidAttempts")

	// ErrUnsupportedHash is returned for a hash name other than sha256 or
	// sha3-256.
	ErrUnsupportedHash = ErrorKind("ErrUnsupportedHash")

	// ErrPrimeExhausted is returned when key generation ran out of attempts
	// finding a prime modulus or a generator.
	ErrPrimeExhausted = ErrorKind("ErrPrimeExhausted")

	// ErrSignAttemptsExhausted is returned when signing drew the maximum
	// number of nonces without producing a non-degenerate signature.
	ErrSignAttemptsExhausted = ErrorKind("ErrSignAttemptsExhausted")

	// ErrKeyMismatch is returned when a private key is used with a public
	// key from another generation.
	ErrKeyMismatch = ErrorKind("ErrKeyMismatch")

	// ErrInvalidKey is returned for a missing, destroyed or out-of-range key.
	ErrInvalidKey = ErrorKind("ErrInvalidKey")

	// ErrNoInverse is returned when a nonce chosen coprime to p-1 turns out
	// to have no inverse. It means the arithmetic is broken.
	ErrNoInverse = ErrorKind("ErrNoInverse")

	// ErrRandom is returned when the random source fails.
	ErrRandom = ErrorKind("ErrRandom")
)

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to key generation or signing. It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
