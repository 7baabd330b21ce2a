package elgamal

import (
	"errors"
	"math/big"
)

// textbookKey returns p = 251 with primitive root g = 6 and x = 97.
func textbookKey() (*PublicKey, *PrivateKey) {
	pub := &PublicKey{P: big.NewInt(251), G: big.NewInt(6), Y: big.NewInt(107)}
	priv := &PrivateKey{X: big.NewInt(97)}
	return pub, priv
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool empty")
}

func testConfig(bits int) Config {
	cfg := DefaultConfig()
	cfg.ModulusBits = bits
	return cfg
}
