package main

import (
	"github.com/spf13/pflag"

	"github.com/galletas1712/cassiopeia/pvss"
	"github.com/galletas1712/cassiopeia/serialize"
)

type decryptShareInput struct {
	Config     serialize.Config     `json:"config"`
	Ciphertext serialize.Ciphertext `json:"ciphertext"`
	SK         string               `json:"sk"`
	I          int                  `json:"i"`
}

type decryptShareOutput struct {
	I     int               `json:"i"`
	Share serialize.G2Point `json:"share"`
}

// runDecryptShare reads a committee member's secret key and participant id
// alongside the ciphertext they are decrypting against, and writes back
// their decrypted share h^{f(i+1)} (i being 0-based).
func runDecryptShare(args []string) error {
	fs := pflag.NewFlagSet("decrypt-share", pflag.ContinueOnError)
	in := fs.String("in", "", "input file (default: stdin)")
	out := fs.String("out", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return usageErrorf("parsing flags: %w", err)
	}

	var input decryptShareInput
	if err := readJSON(*in, &input); err != nil {
		return err
	}

	cfg, err := input.Config.ToConfig()
	if err != nil {
		return apiErrorf("decoding config: %w", err)
	}
	ct := input.Ciphertext.ToCiphertext()

	sk, err := serialize.DecodeFr(input.SK)
	if err != nil {
		return apiErrorf("decoding secret key: %w", err)
	}

	share, err := pvss.DecryptShare(cfg, ct, sk, input.I)
	if err != nil {
		return apiErrorf("decrypting share: %w", err)
	}

	result := decryptShareOutput{I: input.I, Share: serialize.G2Point{G2Affine: share}}
	return writeJSON(*out, result)
}
