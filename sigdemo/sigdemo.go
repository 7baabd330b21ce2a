package main

import (
	"fmt"
	"os"

	"github.com/arvid220u/elgamalsig/arith"
	"github.com/arvid220u/elgamalsig/elgamal"
	"github.com/fatih/color"
	"go.dedis.ch/onet/v3/log"
	"gopkg.in/urfave/cli.v1"
)

// sigdemo generates a key pair, signs one message, verifies it and prints
// the outcome.
func main() {
	app := cli.NewApp()
	app.Name = "sigdemo"
	app.Usage = "Generates an ElGamal key pair, signs a message and verifies the signature."
	app.Version = "0.1"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "debug, d",
			Value: 0,
			Usage: "debug-level: 1 for terse, 5 for maximal",
		},
		cli.IntFlag{
			Name:  "bits, b",
			Value: 8,
			Usage: "bit length of the prime modulus",
		},
		cli.IntFlag{
			Name:  "certainty",
			Value: 40,
			Usage: "Miller-Rabin rounds per prime candidate",
		},
		cli.BoolFlag{
			Name:  "primitive",
			Usage: "use a safe prime and a generator of the full group",
		},
		cli.StringFlag{
			Name:  "hash",
			Value: string(elgamal.SHA256),
			Usage: "hash to exponent: sha256 or sha3-256",
		},
		cli.StringFlag{
			Name:  "msg, m",
			Value: "ElGamal Signature.",
			Usage: "message to sign",
		},
	}
	app.Before = func(c *cli.Context) error {
		log.SetDebugVisible(c.Int("debug"))
		return nil
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := elgamal.DefaultConfig()
	cfg.ModulusBits = c.Int("bits")
	cfg.PrimeCertainty = c.Int("certainty")
	cfg.PrimitiveRoot = c.Bool("primitive")
	cfg.Hash = elgamal.Hash(c.String("hash"))
	msg := c.String("msg")
	log.Lvlf1("modular exponentiation backend: %s", arith.Backend)

	pub, priv, err := elgamal.GenerateKey(nil, cfg)
	if err != nil {
		return fmt.Errorf("key generation: %v", err)
	}
	defer priv.Destroy()

	sig, err := elgamal.Sign(nil, priv, pub, []byte(msg), cfg)
	if err != nil {
		return fmt.Errorf("signing: %v", err)
	}

	result := color.RedString("invalid")
	if elgamal.Verify(pub, []byte(msg), sig, cfg) {
		result = color.GreenString("valid")
	}
	fmt.Printf("# msg : %s\n", msg)
	fmt.Printf("# sig : %s\n", result)
	return nil
}
