package elgamal

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/arvid220u/elgamalsig/arith"
	"github.com/google/uuid"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

type PublicKey struct { // shared by signer and verifiers, read only
	// ID ties the key to the PrivateKey generated with it.
	ID      uuid.UUID
	P, G, Y *big.Int // Y = G^X mod P
}

type PrivateKey struct { // owned by the signer, Destroy when done
	ID uuid.UUID // ID of the matching PublicKey
	X  *big.Int  // 2 <= X <= P-2
}

// Signature is a pair (R, S) with 0 <= R < P and 0 <= S < P-1.
type Signature struct {
	R, S *big.Int
}

// Equal reports whether both signatures hold the same pair.
func (sig *Signature) Equal(other *Signature) bool {
	if sig == nil || other == nil {
		return sig == other
	}
	return cmpNil(sig.R, other.R) && cmpNil(sig.S, other.S)
}

func (sig *Signature) String() string {
	if sig == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(r=%x, s=%x)", sig.R, sig.S)
}

func cmpNil(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// Destroy overwrites the private exponent. The key cannot sign afterwards.
func (priv *PrivateKey) Destroy() {
	if priv == nil {
		return
	}
	arith.Wipe(priv.X)
}

// usable reports whether pub has the shape every operation relies on:
// p >= 5, 1 <= g < p and 1 <= y < p.
func (pub *PublicKey) usable() bool {
	if pub == nil || pub.P == nil || pub.G == nil || pub.Y == nil {
		return false
	}
	if pub.P.Cmp(big.NewInt(5)) < 0 {
		return false
	}
	return inRange(pub.G, one, pub.P) && inRange(pub.Y, one, pub.P)
}

// Validate checks pub in full, including primality of p. Keys from
// GenerateKey always pass.
func (pub *PublicKey) Validate(cfg Config) error {
	if !pub.usable() {
		return makeError(ErrInvalidKey, "public key is missing values or out of range")
	}
	if pub.P.Bit(0) == 0 || !arith.ProbablyPrime(pub.P, cfg.PrimeCertainty) {
		return makeError(ErrInvalidKey, fmt.Sprintf("modulus %v is not prime", pub.P))
	}
	return nil
}

// inRange reports lo <= v < hi.
func inRange(v, lo, hi *big.Int) bool {
	return v.Cmp(lo) >= 0 && v.Cmp(hi) < 0
}

// generate a number from lo to hi, inclusive
func randRange(random io.Reader, lo, hi *big.Int) (r *big.Int, err error) {
	n := new(big.Int).Sub(hi, lo)
	n.Add(n, one)
	if n.Sign() <= 0 {
		return nil, makeError(ErrModulusTooSmall, fmt.Sprintf("empty range [%v, %v]", lo, hi))
	}
	r, err = rand.Int(random, n)
	if err != nil {
		return nil, makeError(ErrRandom, fmt.Sprintf("random source: %v", err))
	}
	r.Add(r, lo)
	return
}
