package main

import (
	crand "crypto/rand"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/galletas1712/cassiopeia/pairing"
	"github.com/galletas1712/cassiopeia/pvss"
	"github.com/galletas1712/cassiopeia/serialize"
)

type genKeysOutput struct {
	SKs []string            `json:"sks"`
	PKs []serialize.G2Point `json:"pks"`
}

// runGenKeys generates n committee keypairs and writes {sks, pks}, one
// secret key and public key per committee slot, n being the CLI's sole
// positional argument. The pairing context's generators are the package-wide
// BN254 canonical generators.
func runGenKeys(args []string) error {
	fs := pflag.NewFlagSet("gen-keys", pflag.ContinueOnError)
	out := fs.String("out", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return usageErrorf("parsing flags: %w", err)
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return usageErrorf("gen-keys: expected exactly one argument n, got %d", len(rest))
	}
	n, err := strconv.Atoi(rest[0])
	if err != nil || n <= 0 {
		return usageErrorf("gen-keys: n must be a positive integer, got %q", rest[0])
	}

	cfg := pairing.NewConfig()
	result := genKeysOutput{
		SKs: make([]string, n),
		PKs: make([]serialize.G2Point, n),
	}
	for i := 0; i < n; i++ {
		sk, pk, err := pvss.GenerateKey(crand.Reader, cfg)
		if err != nil {
			return apiErrorf("generating key %d: %w", i, err)
		}
		result.SKs[i] = serialize.EncodeFr(sk)
		result.PKs[i] = serialize.G2Point{G2Affine: pk}
	}
	return writeJSON(*out, result)
}
