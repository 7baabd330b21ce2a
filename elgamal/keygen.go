package elgamal

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/arvid220u/elgamalsig/arith"
	"github.com/google/uuid"
)

// GenerateKey creates a key pair with a prime modulus of cfg.ModulusBits bits.
//
// By default g is drawn uniformly from [1, p) and never checked, so it may
// generate a small subgroup; with cfg.PrimitiveRoot set, p is a safe prime
// and g generates all of Z_p*.
// A nil random uses crypto/rand.Reader.
func GenerateKey(random io.Reader, cfg Config) (pub *PublicKey, priv *PrivateKey, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}
	if random == nil {
		random = rand.Reader
	}
	var p, g *big.Int
	if cfg.PrimitiveRoot {
		var q *big.Int
		p, q, err = genSafePrime(random, cfg)
		if err != nil {
			return
		}
		g, err = genPrimitiveRoot(random, p, q, cfg.MaxPrimeAttempts)
	} else {
		p, err = genPrime(random, cfg)
		if err != nil {
			return
		}
		g, err = randRange(random, one, new(big.Int).Sub(p, one)) // 1 <= g < p
	}
	if err != nil {
		return
	}

	x, err := randRange(random, two, new(big.Int).Sub(p, two)) // 2 <= x <= p-2
	if err != nil {
		return
	}
	y := arith.Exp(new(big.Int), g, x, p)

	id, err := uuid.NewRandom()
	if err != nil {
		arith.Wipe(x)
		return nil, nil, makeError(ErrRandom, fmt.Sprintf("key id: %v", err))
	}
	pub = &PublicKey{ID: id, P: p, G: g, Y: y}
	priv = &PrivateKey{ID: id, X: x}
	logf(dKeygen, "generated %d bit key %v", p.BitLen(), id)
	dump(pub)
	return
}

// generates prime p to base the system off of
func genPrime(random io.Reader, cfg Config) (*big.Int, error) {
	p, err := arith.Prime(random, cfg.ModulusBits, cfg.PrimeCertainty, cfg.MaxPrimeAttempts)
	if errors.Is(err, arith.ErrNoPrime) {
		return nil, makeError(ErrPrimeExhausted, fmt.Sprintf("no %d bit prime after %d attempts",
			cfg.ModulusBits, cfg.MaxPrimeAttempts))
	}
	if err != nil {
		return nil, makeError(ErrRandom, fmt.Sprintf("random source: %v", err))
	}
	return p, nil
}

// genSafePrime finds p = 2q + 1 with both p and q prime; p has exactly
// cfg.ModulusBits bits because q has one bit less.
func genSafePrime(random io.Reader, cfg Config) (p, q *big.Int, err error) {
	for i := 0; i < cfg.MaxPrimeAttempts; i++ {
		q, err = arith.Prime(random, cfg.ModulusBits-1, cfg.PrimeCertainty, 1)
		if errors.Is(err, arith.ErrNoPrime) {
			continue
		}
		if err != nil {
			return nil, nil, makeError(ErrRandom, fmt.Sprintf("random source: %v", err))
		}
		p = new(big.Int).Lsh(q, 1)
		p.Add(p, one)
		if arith.ProbablyPrime(p, cfg.PrimeCertainty) {
			return p, q, nil
		}
	}
	return nil, nil, makeError(ErrPrimeExhausted, fmt.Sprintf("no %d bit safe prime after %d attempts",
		cfg.ModulusBits, cfg.MaxPrimeAttempts))
}

// genPrimitiveRoot draws g in [2, p-2] until it has order p-1 = 2q, i.e.
// g^2 != 1 and g^q != 1 (mod p).
func genPrimitiveRoot(random io.Reader, p, q *big.Int, attempts int) (*big.Int, error) {
	pm2 := new(big.Int).Sub(p, two)
	t := new(big.Int)
	for i := 0; i < attempts; i++ {
		g, err := randRange(random, two, pm2)
		if err != nil {
			return nil, err
		}
		if arith.Exp(t, g, two, p).Cmp(one) == 0 {
			continue
		}
		if arith.Exp(t, g, q, p).Cmp(one) == 0 {
			continue
		}
		return g, nil
	}
	return nil, makeError(ErrPrimeExhausted, fmt.Sprintf("no generator of Z_%v* after %d attempts", p, attempts))
}
