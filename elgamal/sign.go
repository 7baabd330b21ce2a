package elgamal

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/arvid220u/elgamalsig/arith"
	"github.com/google/uuid"
)

// Sign produces (r, s) with g^h = y^r * r^s (mod p), h being the hash of
// msg.
//
// A fresh nonce k is drawn for every attempt; attempts ending with s = 0 are
// discarded. Sign gives up with ErrSignAttemptsExhausted after
// cfg.MaxSignAttempts attempts. A nil random uses crypto/rand.Reader, which
// is safe to share between goroutines.
func Sign(random io.Reader, priv *PrivateKey, pub *PublicKey, msg []byte, cfg Config) (*Signature, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if random == nil {
		random = rand.Reader
	}
	if err := checkPair(priv, pub); err != nil {
		return nil, err
	}
	h, err := HashToExponent(cfg.Hash, msg)
	if err != nil {
		return nil, err
	}
	p1 := new(big.Int).Sub(pub.P, one) // p - 1

	for attempt := 1; attempt <= cfg.MaxSignAttempts; attempt++ {
		sig, err := signOnce(random, priv.X, pub, h, p1, cfg.MaxSignAttempts)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			logf(dSign, "signed %d byte message with key %v after %d attempt(s)", len(msg), pub.ID, attempt)
			dump(sig)
			return sig, nil
		}
		logf(dRetry, "attempt %d gave s = 0, discarding nonce", attempt)
	}
	return nil, makeError(ErrSignAttemptsExhausted, fmt.Sprintf("no valid signature after %d attempts, modulus %v",
		cfg.MaxSignAttempts, pub.P))
}

// checkPair makes sure priv can sign for pub: 2 <= x <= p-2 and, for
// generated keys, that both halves come from the same generation.
func checkPair(priv *PrivateKey, pub *PublicKey) error {
	if !pub.usable() {
		return makeError(ErrInvalidKey, "public key is missing values or out of range")
	}
	if priv == nil || priv.X == nil {
		return makeError(ErrInvalidKey, "private key is missing")
	}
	if priv.ID != uuid.Nil && pub.ID != uuid.Nil && priv.ID != pub.ID {
		return makeError(ErrKeyMismatch, fmt.Sprintf("private key %v does not belong to public key %v", priv.ID, pub.ID))
	}
	pm1 := new(big.Int).Sub(pub.P, one)
	if !inRange(priv.X, two, pm1) {
		// covers destroyed keys, whose x is zero
		return makeError(ErrInvalidKey, "private exponent out of range")
	}
	return nil
}

// signOnce draws one nonce and derives the signature from it. A nil
// signature with a nil error means s came out zero.
func signOnce(random io.Reader, x *big.Int, pub *PublicKey, h, p1 *big.Int, draws int) (*Signature, error) {
	var sc scratch
	defer sc.wipe()
	k, err := drawNonce(random, &sc, p1, draws)
	if err != nil {
		return nil, err
	}
	return signWithNonce(x, pub, h, k, p1)
}

// drawNonce picks k in [1, p-2] until gcd(k, p-1) = 1. Every candidate,
// rejected or not, is handed to sc.
func drawNonce(random io.Reader, sc *scratch, p1 *big.Int, draws int) (*big.Int, error) {
	pm2 := new(big.Int).Sub(p1, one)
	for i := 0; i < draws; i++ {
		k, err := randRange(random, one, pm2)
		if err != nil {
			return nil, err
		}
		sc.hold(k)
		if arith.Coprime(k, p1) {
			return k, nil
		}
	}
	return nil, makeError(ErrSignAttemptsExhausted, fmt.Sprintf("no nonce coprime to %v after %d draws", p1, draws))
}

// signWithNonce computes
//
//	r = g^k mod p
//	s = (h - x*r) * k^-1 mod (p-1)
//
// k must be coprime to p-1. It returns nil if s or r is zero.
func signWithNonce(x *big.Int, pub *PublicKey, h, k, p1 *big.Int) (*Signature, error) {
	var sc scratch
	defer sc.wipe()

	r := arith.Exp(new(big.Int), pub.G, k, pub.P)

	kInv, ok := arith.ModInverse(sc.get(), k, p1)
	if !ok {
		return nil, makeError(ErrNoInverse, fmt.Sprintf("nonce has no inverse mod %v", p1))
	}
	check := sc.get().Mul(k, kInv)
	if sc.get().Mod(check, p1).Cmp(one) != 0 {
		return nil, makeError(ErrNoInverse, fmt.Sprintf("k * k^-1 != 1 mod %v", p1))
	}

	xr := sc.get().Mul(x, r)
	t := sc.get().Sub(h, xr)
	t = sc.get().Mod(t, p1) // Euclidean, so t >= 0
	prod := sc.get().Mul(t, kInv)
	s := new(big.Int).Mod(prod, p1)

	if s.Sign() == 0 || r.Sign() == 0 {
		return nil, nil
	}
	return &Signature{R: r, S: s}, nil
}
