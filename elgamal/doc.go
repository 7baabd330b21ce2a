// Package elgamal implements ElGamal signatures over Z_p*.
//
// GenerateKey creates a PublicKey/PrivateKey pair, Sign produces a
// Signature (r, s) satisfying g^H(m) = y^r * r^s (mod p), and Verify checks
// it. All three take the same Config. Moduli small enough for tests and
// demonstrations are accepted and offer no security.
//
// Secrets (the private exponent, nonces and their inverses) are wiped when
// they go out of use; call PrivateKey.Destroy once a key is retired.
package elgamal
