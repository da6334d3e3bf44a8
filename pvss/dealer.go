package pvss

import (
	crand "crypto/rand"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// circomSecretBits caps the dealer's constant term f_0 to [0, 2^250), strictly
// inside Fr's ~254-bit modulus. Downstream circuits that consume f_0 as a
// Circom signal assume this narrower range, so the dealer samples within it
// even though every other coefficient, and Fr arithmetic generally, allows
// the full field.
const circomSecretBits = 250

// DistributeSecret runs the dealer: it samples a random degree-(t-1)
// polynomial f over Fr, commits to its coefficients, evaluates it once per
// committee member, and encrypts each evaluation under that member's G2
// public key. The returned Ciphertext is the public record any observer can
// later feed to Verify; the returned Secrets are for the dealer alone and
// must never be published.
//
// f_0, the polynomial's constant term (the shared secret itself), is drawn
// from [0, 2^250) rather than the full Fr range, so that it can double as a
// signal in a Circom circuit downstream. Every other coefficient is drawn
// uniformly from all of Fr.
func DistributeSecret(rand io.Reader, cfg Config) (Ciphertext, Secrets, error) {
	n := cfg.N()
	t := cfg.T

	coeffs := make([]fr.Element, t)
	bound := new(big.Int).Lsh(big.NewInt(1), circomSecretBits)
	f0Int, err := crand.Int(rand, bound)
	if err != nil {
		return Ciphertext{}, Secrets{}, err
	}
	coeffs[0].SetBigInt(f0Int)
	for k := 1; k < t; k++ {
		c, err := sampleFr(rand)
		if err != nil {
			return Ciphertext{}, Secrets{}, err
		}
		coeffs[k] = c
	}

	fi := make([]bn254.G1Affine, t)
	for k := 0; k < t; k++ {
		fi[k].ScalarMultiplication(&cfg.Pairing.G, coeffs[k].BigInt(new(big.Int)))
	}

	ai := make([]bn254.G1Affine, n)
	yi := make([]bn254.G2Affine, n)
	for idx := 0; idx < n; idx++ {
		fEval := evalPoly(coeffs, int64(idx+1))
		fEvalBig := fEval.BigInt(new(big.Int))

		ai[idx].ScalarMultiplication(&cfg.Pairing.G, fEvalBig)
		yi[idx].ScalarMultiplication(&cfg.CommitteePKs[idx], fEvalBig)
	}

	var hf0 bn254.G2Affine
	hf0.ScalarMultiplication(&cfg.Pairing.H, coeffs[0].BigInt(new(big.Int)))

	return Ciphertext{FI: fi, AI: ai, YI: yi}, Secrets{F0: coeffs[0], HF0: hf0}, nil
}

// evalPoly evaluates coeffs (low-degree-first) at x via Horner's method,
// working directly in Fr.
func evalPoly(coeffs []fr.Element, x int64) fr.Element {
	var xElem fr.Element
	xElem.SetInt64(x)

	var acc fr.Element
	for k := len(coeffs) - 1; k >= 0; k-- {
		acc.Mul(&acc, &xElem)
		acc.Add(&acc, &coeffs[k])
	}
	return acc
}
