//go:build !gmp

package arith

import "math/big"

// Backend names the library doing modular exponentiation.
const Backend = "math/big"

// Exp sets z = x**y mod m and returns z. y must be non-negative.
func Exp(z, x, y, m *big.Int) *big.Int {
	return z.Exp(x, y, m)
}
