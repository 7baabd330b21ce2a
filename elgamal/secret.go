package elgamal

import (
	"math/big"

	"github.com/arvid220u/elgamalsig/arith"
)

// scratch owns secret intermediates. Whoever creates one defers wipe right
// away, so every value it hands out is zeroized on all exit paths.
type scratch []*big.Int

// get returns a new zero value owned by s.
func (s *scratch) get() *big.Int {
	return s.hold(new(big.Int))
}

// hold transfers ownership of v to s.
func (s *scratch) hold(v *big.Int) *big.Int {
	*s = append(*s, v)
	return v
}

func (s *scratch) wipe() {
	for i, v := range *s {
		arith.Wipe(v)
		(*s)[i] = nil
	}
	*s = (*s)[:0]
}
