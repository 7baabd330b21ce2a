package elgamal

import (
	"math/big"

	"github.com/arvid220u/elgamalsig/arith"
)

// modExp is the exponentiation used by Verify.
var modExp = arith.Exp

// Verify reports whether sig is a valid signature of msg under pub. It
// rejects r outside [0, p) and s outside [0, p-1) before any exponentiation
// and returns false rather than failing on malformed input.
func Verify(pub *PublicKey, msg []byte, sig *Signature, cfg Config) bool {
	if !pub.usable() || sig == nil || sig.R == nil || sig.S == nil {
		return false
	}
	p1 := new(big.Int).Sub(pub.P, one)
	if !inRange(sig.R, big.NewInt(0), pub.P) || !inRange(sig.S, big.NewInt(0), p1) {
		logf(dVerify, "signature out of range for key %v", pub.ID)
		return false
	}
	h, err := HashToExponent(cfg.Hash, msg)
	if err != nil {
		return false
	}

	lhs := modExp(new(big.Int), pub.G, h, pub.P) // g^h
	rhs := modExp(new(big.Int), pub.Y, sig.R, pub.P)
	rs := modExp(new(big.Int), sig.R, sig.S, pub.P)
	rhs.Mul(rhs, rs)
	rhs.Mod(rhs, pub.P) // y^r * r^s

	valid := lhs.Cmp(rhs) == 0
	logf(dVerify, "signature %v under key %v valid: %v", sig, pub.ID, valid)
	return valid
}
