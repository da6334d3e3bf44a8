package pvss

import (
	crand "crypto/rand"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Verify runs both public checks against ct: polynomial consistency between
// the coefficient commitments (FI) and the per-participant evaluation
// commitments (AI), and pairing consistency between each evaluation
// commitment and its encrypted share (YI). A single challenge alpha is drawn
// from rand and deliberately reused across both checks: the two invariants
// live in different groups (G1 for Check A, GT for Check B), so sharing the
// challenge costs nothing in soundness and saves a second draw. Callers that
// want reproducible verification runs — tests, mainly — should pass a
// deterministic rand; VerifyCiphertext is the seam-hidden convenience
// wrapper over crypto/rand.Reader for everyone else.
//
// Verify returns nil only if both checks pass for every participant. A
// single malformed share anywhere in ct causes the whole call to fail; it
// does not report which participant was at fault — use VerifyShare for that.
func Verify(cfg Config, ct Ciphertext, rand io.Reader) error {
	if err := checkShapes(cfg, ct); err != nil {
		return err
	}

	alpha, err := sampleFr(rand)
	if err != nil {
		return err
	}

	if err := checkEvaluations(cfg, ct, alpha); err != nil {
		return err
	}
	if err := checkEncryptions(cfg, ct, alpha); err != nil {
		return err
	}
	return nil
}

// VerifyCiphertext is Verify with randomness drawn from crypto/rand.Reader.
func VerifyCiphertext(cfg Config, ct Ciphertext) error {
	return Verify(cfg, ct, crand.Reader)
}

func checkShapes(cfg Config, ct Ciphertext) error {
	n := cfg.N()
	if len(ct.FI) != cfg.T {
		return &EvaluationsCheckError{}
	}
	if len(ct.AI) != n || len(ct.YI) != n {
		return &EvaluationsCheckError{}
	}
	return nil
}

// checkEvaluations is Check A: a Schwartz-Zippel test that the evaluation
// commitments AI really are commitments to the evaluations, at {1..n}, of
// the same degree-(t-1) polynomial FI commits to. Writing L_i(alpha) for the
// Lagrange basis polynomials over nodes {1..n}, the invariant is
//
//	Σ_{i=1..n} L_i(alpha) · AI_{i-1}  ==  Σ_{k=0..t-1} alpha^k · FI_k
//
// which is checked as a single variable-base MSM of size n+t: bases
// AI ++ FI, scalars L_i(alpha)_{i=1..n} ++ (-1)·alpha^k_{k=0..t-1} (the
// first power is -1; subsequent powers are produced by continuing
// cur *= alpha from that starting value). The MSM must collapse to the
// identity.
func checkEvaluations(cfg Config, ct Ciphertext, alpha fr.Element) error {
	n := cfg.N()
	t := cfg.T

	lagrange := GenAllLagrangeCoefficients(n, alpha)

	bases := make([]bn254.G1Affine, 0, n+t)
	scalars := make([]fr.Element, 0, n+t)

	bases = append(bases, ct.AI...)
	scalars = append(scalars, lagrange...)

	var cur fr.Element
	cur.SetInt64(-1)
	for k := 0; k < t; k++ {
		bases = append(bases, ct.FI[k])
		scalars = append(scalars, cur)
		cur.Mul(&cur, &alpha)
	}

	var residual bn254.G1Affine
	if _, err := residual.MultiExp(bases, scalars, ecc.MultiExpConfig{}); err != nil {
		return err
	}

	if !residual.IsInfinity() {
		return &EvaluationsCheckError{P: residual}
	}
	return nil
}

// checkEncryptions is Check B: for every participant i, it must hold that
//
//	e(AI_i, pk_i) == e(g, YI_i)
//
// i.e. YI_i really is pk_i raised to the same exponent f(i) that AI_i
// commits to under the dealer's own generator g — the statement that makes
// decryption-with-the-right-secret-key recover the correct share. The n
// per-participant identities are amortized into one pairing product using
// the powers of the same alpha Check A consumed: with powers = (1, alpha,
// alpha^2, ..., alpha^(n-1)), batched_a_i = AI_i · powers[i] and
// batched_neg_g_i = (-g) · powers[i], the single product
//
//	Π_{i=1..n} e(batched_neg_g_i, YI_i) · e(batched_a_i, pk_i)
//
// must equal 1_GT.
func checkEncryptions(cfg Config, ct Ciphertext, alpha fr.Element) error {
	n := cfg.N()

	var negG bn254.G1Affine
	negG.Neg(&cfg.Pairing.G)

	powers := make([]fr.Element, n)
	powers[0] = fr.One()
	for i := 1; i < n; i++ {
		powers[i].Mul(&powers[i-1], &alpha)
	}

	bases := make([]bn254.G1Affine, 2*n)
	pairs := make([]bn254.G2Affine, 2*n)
	for i := 0; i < n; i++ {
		p := powers[i].BigInt(new(big.Int))

		var batchedNegG, batchedA bn254.G1Affine
		batchedNegG.ScalarMultiplication(&negG, p)
		batchedA.ScalarMultiplication(&ct.AI[i], p)

		bases[2*i] = batchedNegG
		pairs[2*i] = ct.YI[i]
		bases[2*i+1] = batchedA
		pairs[2*i+1] = cfg.CommitteePKs[i]
	}

	ok, err := bn254.PairingCheck(bases, pairs)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRatioIncorrect
	}
	return nil
}

// VerifyShare checks a single decrypted share h^{f(i+1)} against the public
// ciphertext and committee registration, independent of Verify. i is the
// same 0-based participant index DecryptShare and CombineShares take. It is
// the check a combiner runs on each share it receives before folding it
// into CombineShares, so one bad contributor cannot silently corrupt the
// reconstructed secret:
//
//	e(AI_i, H) == e(G, share)
func VerifyShare(cfg Config, ct Ciphertext, share bn254.G2Affine, i int) error {
	n := cfg.N()
	if i < 0 || i >= n {
		return &InvalidParticipantIdError{Index: i}
	}

	var negG bn254.G1Affine
	negG.Neg(&cfg.Pairing.G)

	p := []bn254.G1Affine{ct.AI[i], negG}
	q := []bn254.G2Affine{cfg.Pairing.H, share}

	ok, err := bn254.PairingCheck(p, q)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRatioIncorrect
	}
	return nil
}
