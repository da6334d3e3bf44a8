// Package pvss implements Publicly Verifiable Secret Sharing over BN254: a
// dealer distributes a secret s such that any t out of n committee members
// can jointly reconstruct H^s, while any observer holding only public keys
// and the ciphertext can verify the sharing is internally consistent without
// talking to the dealer or the committee.
//
// The package is a pure, synchronous library: every value here is
// constructed once and immutable thereafter, so a Config or Ciphertext may be
// read concurrently from multiple goroutines without synchronization.
package pvss

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/galletas1712/cassiopeia/pairing"
)

// Config owns the pairing generators and the committee's registration: an
// ordered list of G2 public keys and the reconstruction threshold t. The
// secret polynomial has degree t-1 (t coefficients, f_0 .. f_{t-1}); any t
// (or more) of the n shares reconstruct the secret, while any t-1 reveal
// nothing about it.
type Config struct {
	Pairing      pairing.Config
	CommitteePKs []bn254.G2Affine
	T            int
}

// NewConfig validates and builds a Config. It enforces 0 < t < n, where
// n = len(committeePKs), so that a threshold of shares is both meaningful
// (t > 0) and strictly short of requiring the whole committee (t < n).
func NewConfig(pc pairing.Config, committeePKs []bn254.G2Affine, t int) (Config, error) {
	n := len(committeePKs)
	if n == 0 {
		return Config{}, fmt.Errorf("pvss: committee must have at least one member")
	}
	if t <= 0 || t >= n {
		return Config{}, fmt.Errorf("pvss: threshold t=%d must satisfy 0 < t < n=%d", t, n)
	}
	return Config{Pairing: pc, CommitteePKs: committeePKs, T: t}, nil
}

// N returns the committee size.
func (c Config) N() int {
	return len(c.CommitteePKs)
}

// Ciphertext is the dealer's public output: commitments to the secret
// polynomial's coefficients (FI), per-participant evaluation commitments
// (AI), and per-participant encrypted shares (YI).
//
// Invariants: len(FI) == cfg.T, len(AI) == len(YI) == cfg.N().
type Ciphertext struct {
	FI []bn254.G1Affine // g · f_k,        k in [0, t)
	AI []bn254.G1Affine // g · f(i+1),     i in [0, n)
	YI []bn254.G2Affine // pk_i · f(i+1),  i in [0, n)
}

// Secrets is the dealer's private output: the raw secret f_0 and its
// committed form h·f_0, which is the canonical reconstruction target.
type Secrets struct {
	F0  fr.Element
	HF0 bn254.G2Affine
}
