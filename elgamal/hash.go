package elgamal

import "math/big"

// HashToExponent hashes msg with h and reads the digest as a big-endian
// unsigned integer. The result is not reduced; callers reduce it modulo
// whatever they need.
func HashToExponent(h Hash, msg []byte) (*big.Int, error) {
	d, err := h.New()
	if err != nil {
		return nil, err
	}
	d.Write(msg)
	return new(big.Int).SetBytes(d.Sum(nil)), nil
}
