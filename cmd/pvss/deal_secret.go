package main

import (
	crand "crypto/rand"

	"github.com/spf13/pflag"

	"github.com/galletas1712/cassiopeia/pvss"
	"github.com/galletas1712/cassiopeia/serialize"
)

// runDealSecret reads a serialize.Config (the committee's public keys and
// threshold) and runs the dealer, writing an Envelope with Config,
// Ciphertext, and Secrets populated. The caller is responsible for keeping
// Secrets private; no other subcommand in this CLI reads Secrets (they decode
// only the config and ciphertext fields of their input).
func runDealSecret(args []string) error {
	fs := pflag.NewFlagSet("deal-secret", pflag.ContinueOnError)
	in := fs.String("in", "", "input file (default: stdin)")
	out := fs.String("out", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return usageErrorf("parsing flags: %w", err)
	}

	var wireCfg serialize.Config
	if err := readJSON(*in, &wireCfg); err != nil {
		return err
	}

	cfg, err := wireCfg.ToConfig()
	if err != nil {
		return apiErrorf("decoding config: %w", err)
	}

	ct, secrets, err := pvss.DistributeSecret(crand.Reader, cfg)
	if err != nil {
		return apiErrorf("distributing secret: %w", err)
	}

	wireSecrets := serialize.FromSecrets(secrets)
	env := serialize.Envelope{
		Config:     serialize.FromConfig(cfg),
		Ciphertext: serialize.FromCiphertext(ct),
		Secrets:    &wireSecrets,
	}
	return writeJSON(*out, env)
}
