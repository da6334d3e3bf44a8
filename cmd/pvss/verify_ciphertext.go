package main

import (
	"github.com/spf13/pflag"

	"github.com/galletas1712/cassiopeia/pvss"
	"github.com/galletas1712/cassiopeia/serialize"
)

type verifyCiphertextInput struct {
	Config     serialize.Config     `json:"config"`
	Ciphertext serialize.Ciphertext `json:"ciphertext"`
}

type verifyCiphertextOutput struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// runVerifyCiphertext runs both public consistency checks against a
// ciphertext and reports the result as {valid, reason}. An invalid
// ciphertext is a reportable outcome, not a CLI failure: the subcommand
// still exits 0, with valid:false and a human-readable reason.
func runVerifyCiphertext(args []string) error {
	fs := pflag.NewFlagSet("verify-ciphertext", pflag.ContinueOnError)
	in := fs.String("in", "", "input file (default: stdin)")
	out := fs.String("out", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return usageErrorf("parsing flags: %w", err)
	}

	var input verifyCiphertextInput
	if err := readJSON(*in, &input); err != nil {
		return err
	}

	cfg, err := input.Config.ToConfig()
	if err != nil {
		return apiErrorf("decoding config: %w", err)
	}
	ct := input.Ciphertext.ToCiphertext()

	result := verifyCiphertextOutput{Valid: true}
	if err := pvss.VerifyCiphertext(cfg, ct); err != nil {
		result.Valid = false
		result.Reason = err.Error()
	}
	return writeJSON(*out, result)
}
