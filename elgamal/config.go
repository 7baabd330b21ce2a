package elgamal

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/crypto/sha3"
)

// Hash names the 256-bit digest behind HashToExponent. The empty name
// means SHA256.
type Hash string

const (
	SHA256   Hash = "sha256"
	SHA3_256 Hash = "sha3-256"
)

// New returns a fresh digest for h.
func (h Hash) New() (hash.Hash, error) {
	switch h {
	case "", SHA256:
		return sha256.New(), nil
	case SHA3_256:
		return sha3.New256(), nil
	}
	return nil, makeError(ErrUnsupportedHash, fmt.Sprintf("unsupported hash %q", string(h)))
}

// minModulusBits is the shortest modulus for which [2, p-2] is non-empty:
// 2-bit moduli only admit p = 3.
const minModulusBits = 3

// Config holds the parameters shared by key generation, signing and
// verification. Pass the same Config to all three.
type Config struct {
	// ModulusBits is the bit length of the prime p.
	ModulusBits int `toml:"modulus_bits"`
	// PrimeCertainty is the number of Miller-Rabin rounds each prime
	// candidate must survive.
	PrimeCertainty int `toml:"prime_certainty"`
	// MaxPrimeAttempts bounds the prime and generator draws of GenerateKey.
	MaxPrimeAttempts int `toml:"max_prime_attempts"`
	// MaxSignAttempts bounds the nonce draws of Sign.
	MaxSignAttempts int `toml:"max_sign_attempts"`
	// Hash is the digest used to map messages to exponents.
	Hash Hash `toml:"hash"`
	// PrimitiveRoot makes GenerateKey use a safe prime and a generator of
	// the full group instead of an unchecked random g.
	PrimitiveRoot bool `toml:"primitive_root"`
}

// DefaultConfig returns a configuration suitable for demonstrations and
// tests. 64-bit moduli offer no security.
func DefaultConfig() Config {
	return Config{
		ModulusBits:      64,
		PrimeCertainty:   40,
		MaxPrimeAttempts: 4096,
		MaxSignAttempts:  1000,
		Hash:             SHA256,
	}
}

// Validate reports the first parameter that cannot work.
func (cfg Config) Validate() error {
	if cfg.ModulusBits < minModulusBits {
		return makeError(ErrModulusTooSmall, fmt.Sprintf("modulus of %d bits is too small, need at least %d",
			cfg.ModulusBits, minModulusBits))
	}
	if cfg.PrimeCertainty <= 0 {
		return makeError(ErrInvalidCertainty, fmt.Sprintf("prime certainty must be positive, got %d",
			cfg.PrimeCertainty))
	}
	if cfg.MaxPrimeAttempts <= 0 || cfg.MaxSignAttempts <= 0 {
		return makeError(ErrInvalidAttempts, fmt.Sprintf("attempt bounds must be positive, got %d and %d",
			cfg.MaxPrimeAttempts, cfg.MaxSignAttempts))
	}
	if _, err := cfg.Hash.New(); err != nil {
		return err
	}
	return nil
}

// DecodeConfig reads a TOML document over the defaults and validates the
// result. Unknown keys are rejected.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, checkDecoded(md, cfg)
}

// LoadConfig is DecodeConfig on the contents of a file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, checkDecoded(md, cfg)
}

func checkDecoded(md toml.MetaData, cfg Config) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}
