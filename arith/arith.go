// Package arith is the narrow big-integer surface the signature code is
// written against. Everything operates on math/big values; the modular
// exponentiation backend can be switched to GMP with the gmp build tag.
package arith

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ErrNoPrime is returned by Prime when no candidate survived the extra
// primality rounds within the allowed number of attempts.
var ErrNoPrime = errors.New("arith: no prime found")

var one = big.NewInt(1)

// ModInverse sets z to the inverse of g modulo n. ok is false if g and n
// are not coprime, in which case z is left unchanged.
func ModInverse(z, g, n *big.Int) (inv *big.Int, ok bool) {
	if z.ModInverse(g, n) == nil {
		return z, false
	}
	return z, true
}

// GCD returns gcd(a, b) for non-negative a and b.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// Coprime reports whether gcd(a, b) = 1.
func Coprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(one) == 0
}

// ProbablyPrime runs certainty Miller-Rabin rounds (plus the Baillie-PSW
// test math/big always adds) on x.
func ProbablyPrime(x *big.Int, certainty int) bool {
	return x.ProbablyPrime(certainty)
}

// Prime returns a prime of exactly bits bits. Every candidate from
// crypto/rand is rechecked with certainty rounds; at most attempts
// candidates are drawn.
func Prime(random io.Reader, bits, certainty, attempts int) (*big.Int, error) {
	for i := 0; i < attempts; i++ {
		p, err := rand.Prime(random, bits)
		if err != nil {
			return nil, err
		}
		if ProbablyPrime(p, certainty) {
			return p, nil
		}
	}
	return nil, ErrNoPrime
}

// Wipe overwrites every limb backing v, including spare capacity left over
// from earlier results, and resets v to zero.
func Wipe(v *big.Int) {
	if v == nil {
		return
	}
	w := v.Bits()
	w = w[:cap(w)]
	for i := range w {
		w[i] = 0
	}
	v.SetInt64(0)
}
