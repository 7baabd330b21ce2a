package elgamal

import (
	"crypto/rand"
	"testing"

	"go.dedis.ch/onet/v3/log"
)

func TestDebugDump(t *testing.T) {
	saved := log.DebugVisible()
	log.SetDebugVisible(5)
	defer log.SetDebugVisible(saved)

	cfg := testConfig(16)
	pub, priv, err := GenerateKey(rand.Reader, cfg)
	if err != nil {
		t.Fatalf("%v", err)
	}
	msg := []byte("ElGamal Signature.")
	sig, err := Sign(rand.Reader, priv, pub, msg, cfg)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !Verify(pub, msg, sig, cfg) {
		t.Fatalf("signature %v rejected", sig)
	}
}
