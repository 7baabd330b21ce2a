package elgamal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"default", func(c *Config) {}, nil},
		{"smallest modulus", func(c *Config) { c.ModulusBits = 3 }, nil},
		{"two bit modulus", func(c *Config) { c.ModulusBits = 2 }, ErrModulusTooSmall},
		{"zero modulus", func(c *Config) { c.ModulusBits = 0 }, ErrModulusTooSmall},
		{"zero certainty", func(c *Config) { c.PrimeCertainty = 0 }, ErrInvalidCertainty},
		{"zero prime attempts", func(c *Config) { c.MaxPrimeAttempts = 0 }, ErrInvalidAttempts},
		{"negative sign attempts", func(c *Config) { c.MaxSignAttempts = -1 }, ErrInvalidAttempts},
		{"sha3", func(c *Config) { c.Hash = SHA3_256 }, nil},
		{"empty hash", func(c *Config) { c.Hash = "" }, nil},
		{"md5", func(c *Config) { c.Hash = "md5" }, ErrUnsupportedHash},
	}
	for _, test := range tests {
		cfg := DefaultConfig()
		test.modify(&cfg)
		err := cfg.Validate()
		if test.want == nil && err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		}
		if test.want != nil && !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(`
modulus_bits = 128
hash = "sha3-256"
primitive_root = true
`)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if cfg.ModulusBits != 128 || cfg.Hash != SHA3_256 || !cfg.PrimitiveRoot {
		t.Fatalf("decoded %+v", cfg)
	}
	def := DefaultConfig()
	if cfg.PrimeCertainty != def.PrimeCertainty || cfg.MaxSignAttempts != def.MaxSignAttempts {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestDecodeConfigInvalid(t *testing.T) {
	if _, err := DecodeConfig(`modulus_bits = 2`); !errors.Is(err, ErrModulusTooSmall) {
		t.Errorf("got %v, want ErrModulusTooSmall", err)
	}
	if _, err := DecodeConfig(`hash = "md5"`); !errors.Is(err, ErrUnsupportedHash) {
		t.Errorf("got %v, want ErrUnsupportedHash", err)
	}
	if _, err := DecodeConfig(`modulus_bitz = 64`); err == nil {
		t.Errorf("unknown key accepted")
	}
	if _, err := DecodeConfig(`modulus_bits = "many"`); err == nil {
		t.Errorf("string modulus accepted")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elgamal.toml")
	if err := os.WriteFile(path, []byte("modulus_bits = 32\nmax_sign_attempts = 5\n"), 0o600); err != nil {
		t.Fatalf("%v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if cfg.ModulusBits != 32 || cfg.MaxSignAttempts != 5 {
		t.Fatalf("loaded %+v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("missing file accepted")
	}
}
