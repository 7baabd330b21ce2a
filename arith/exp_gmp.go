//go:build gmp

package arith

import (
	"math/big"

	"github.com/ncw/gmp"
)

// Backend names the library doing modular exponentiation.
const Backend = "gmp"

// Exp sets z = x**y mod m and returns z. x, y and m must be non-negative;
// they cross into GMP as big-endian magnitudes.
func Exp(z, x, y, m *big.Int) *big.Int {
	gx := new(gmp.Int).SetBytes(x.Bytes())
	gy := new(gmp.Int).SetBytes(y.Bytes())
	gm := new(gmp.Int).SetBytes(m.Bytes())
	gz := new(gmp.Int).Exp(gx, gy, gm)
	z.SetBytes(gz.Bytes())
	// the exponent may be a nonce
	gy.SetInt64(0)
	return z
}
