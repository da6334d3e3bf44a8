// Package pairing holds the fixed BN254 generators shared by every cassiopeia
// component. A Config is immutable once built and safe for concurrent use by
// multiple dealers, verifiers, or combiners.
package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Config fixes the canonical generators g ∈ G1 and h ∈ G2 used throughout a
// PVSS deployment. It never changes for the lifetime of any object derived
// from it.
type Config struct {
	G bn254.G1Affine
	H bn254.G2Affine
}

// NewConfig builds a Config from BN254's canonical generators.
func NewConfig() Config {
	_, _, g1Aff, g2Aff := bn254.Generators()
	return Config{G: g1Aff, H: g2Aff}
}
