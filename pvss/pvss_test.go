package pvss_test

import (
	crand "crypto/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/frankban/quicktest"

	"github.com/galletas1712/cassiopeia/pairing"
	"github.com/galletas1712/cassiopeia/pvss"
)

type committee struct {
	cfg pvss.Config
	sks []fr.Element
}

// newCommittee generates n fresh BN254 keypairs and a Config with threshold t.
func newCommittee(c *quicktest.C, n, t int) committee {
	pc := pairing.NewConfig()
	pks := make([]bn254.G2Affine, n)
	sks := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		sk, pk, err := pvss.GenerateKey(crand.Reader, pc)
		c.Assert(err, quicktest.IsNil)
		sks[i] = sk
		pks[i] = pk
	}
	cfg, err := pvss.NewConfig(pc, pks, t)
	c.Assert(err, quicktest.IsNil)
	return committee{cfg: cfg, sks: sks}
}

func TestNewConfigValidatesThreshold(t *testing.T) {
	c := quicktest.New(t)
	pc := pairing.NewConfig()
	pks := make([]bn254.G2Affine, 3)

	_, err := pvss.NewConfig(pc, pks, 0)
	c.Assert(err, quicktest.IsNotNil)

	_, err = pvss.NewConfig(pc, pks, 3)
	c.Assert(err, quicktest.IsNotNil)

	_, err = pvss.NewConfig(pc, pks, 2)
	c.Assert(err, quicktest.IsNil)
}

func TestCommitteeValidateRejectsEmptyInfinityAndDuplicatePKs(t *testing.T) {
	c := quicktest.New(t)
	pc := pairing.NewConfig()

	c.Assert(pvss.Committee{}.Validate(), quicktest.IsNotNil)

	_, pk1, err := pvss.GenerateKey(crand.Reader, pc)
	c.Assert(err, quicktest.IsNil)
	_, pk2, err := pvss.GenerateKey(crand.Reader, pc)
	c.Assert(err, quicktest.IsNil)

	c.Assert(pvss.Committee{PKs: []bn254.G2Affine{pk1, pk2}}.Validate(), quicktest.IsNil)
	c.Assert(pvss.Committee{PKs: []bn254.G2Affine{pk1, pk1}}.Validate(), quicktest.IsNotNil)
	c.Assert(pvss.Committee{PKs: []bn254.G2Affine{pk1, {}}}.Validate(), quicktest.IsNotNil)
}

func TestHappyPathReconstructsSecret(t *testing.T) {
	c := quicktest.New(t)
	const n, thr = 10, 5
	com := newCommittee(c, n, thr)

	ct, secrets, err := pvss.DistributeSecret(crand.Reader, com.cfg)
	c.Assert(err, quicktest.IsNil)

	c.Assert(pvss.VerifyCiphertext(com.cfg, ct), quicktest.IsNil)

	indices := make([]int, thr)
	shares := make([]bn254.G2Affine, thr)
	for k := 0; k < thr; k++ {
		idx := k // 0-based participant index
		share, err := pvss.DecryptShare(com.cfg, ct, com.sks[idx], idx)
		c.Assert(err, quicktest.IsNil)
		c.Assert(pvss.VerifyShare(com.cfg, ct, share, idx), quicktest.IsNil)
		indices[k] = idx
		shares[k] = share
	}

	recovered, err := pvss.CombineShares(shares, indices)
	c.Assert(err, quicktest.IsNil)
	c.Assert(recovered.Equal(&secrets.HF0), quicktest.IsTrue)
}

func TestReconstructionAtExactThresholdMatchesOverThreshold(t *testing.T) {
	c := quicktest.New(t)
	const n, thr = 7, 4
	com := newCommittee(c, n, thr)

	ct, secrets, err := pvss.DistributeSecret(crand.Reader, com.cfg)
	c.Assert(err, quicktest.IsNil)

	// Reconstruct from two overlapping sets of size == thr and
	// size > thr; both must land on the same committed secret. Indices are
	// 0-based.
	exact := []int{0, 1, 2, 3}
	over := []int{1, 2, 3, 4, 5, 6}

	recoverFrom := func(indices []int) bn254.G2Affine {
		shares := make([]bn254.G2Affine, len(indices))
		for k, idx := range indices {
			share, err := pvss.DecryptShare(com.cfg, ct, com.sks[idx], idx)
			c.Assert(err, quicktest.IsNil)
			shares[k] = share
		}
		recovered, err := pvss.CombineShares(shares, indices)
		c.Assert(err, quicktest.IsNil)
		return recovered
	}

	r1 := recoverFrom(exact)
	r2 := recoverFrom(over)
	c.Assert(r1.Equal(&secrets.HF0), quicktest.IsTrue)
	c.Assert(r2.Equal(&secrets.HF0), quicktest.IsTrue)
}

func TestBelowThresholdDoesNotReconstructSecret(t *testing.T) {
	c := quicktest.New(t)
	const n, thr = 10, 5
	com := newCommittee(c, n, thr)

	ct, secrets, err := pvss.DistributeSecret(crand.Reader, com.cfg)
	c.Assert(err, quicktest.IsNil)

	indices := []int{0, 1, 2, 3} // thr - 1 shares, 0-based
	shares := make([]bn254.G2Affine, len(indices))
	for k, idx := range indices {
		share, err := pvss.DecryptShare(com.cfg, ct, com.sks[idx], idx)
		c.Assert(err, quicktest.IsNil)
		shares[k] = share
	}

	recovered, err := pvss.CombineShares(shares, indices)
	c.Assert(err, quicktest.IsNil)
	c.Assert(recovered.Equal(&secrets.HF0), quicktest.IsFalse)
}

func TestVerifyCiphertextRejectsTamperedEvaluation(t *testing.T) {
	c := quicktest.New(t)
	const n, thr = 6, 3
	com := newCommittee(c, n, thr)

	ct, _, err := pvss.DistributeSecret(crand.Reader, com.cfg)
	c.Assert(err, quicktest.IsNil)

	// Corrupt one evaluation commitment so it no longer matches the
	// coefficient commitments.
	var bump bn254.G1Affine
	bump.Add(&ct.AI[2], &com.cfg.Pairing.G)
	ct.AI[2] = bump

	err = pvss.VerifyCiphertext(com.cfg, ct)
	c.Assert(err, quicktest.IsNotNil)
	var evalErr *pvss.EvaluationsCheckError
	c.Assert(err, quicktest.ErrorAs, &evalErr)
}

func TestVerifyCiphertextRejectsTamperedShare(t *testing.T) {
	c := quicktest.New(t)
	const n, thr = 6, 3
	com := newCommittee(c, n, thr)

	ct, _, err := pvss.DistributeSecret(crand.Reader, com.cfg)
	c.Assert(err, quicktest.IsNil)

	var bump bn254.G2Affine
	bump.Add(&ct.YI[1], &com.cfg.Pairing.H)
	ct.YI[1] = bump

	err = pvss.VerifyCiphertext(com.cfg, ct)
	c.Assert(err, quicktest.Equals, pvss.ErrRatioIncorrect)
}

func TestVerifyShareRejectsTamperedShare(t *testing.T) {
	c := quicktest.New(t)
	const n, thr = 5, 2
	com := newCommittee(c, n, thr)

	ct, _, err := pvss.DistributeSecret(crand.Reader, com.cfg)
	c.Assert(err, quicktest.IsNil)

	share, err := pvss.DecryptShare(com.cfg, ct, com.sks[0], 0)
	c.Assert(err, quicktest.IsNil)
	c.Assert(pvss.VerifyShare(com.cfg, ct, share, 0), quicktest.IsNil)

	var bump bn254.G2Affine
	bump.Add(&share, &com.cfg.Pairing.H)
	c.Assert(pvss.VerifyShare(com.cfg, ct, bump, 0), quicktest.Equals, pvss.ErrRatioIncorrect)
}

func TestDecryptShareRejectsZeroSecretKey(t *testing.T) {
	c := quicktest.New(t)
	const n, thr = 4, 2
	com := newCommittee(c, n, thr)

	ct, _, err := pvss.DistributeSecret(crand.Reader, com.cfg)
	c.Assert(err, quicktest.IsNil)

	_, err = pvss.DecryptShare(com.cfg, ct, fr.Element{}, 0)
	c.Assert(err, quicktest.Equals, pvss.ErrInvalidSecretKey)
}

func TestDecryptShareRejectsInvalidParticipantId(t *testing.T) {
	c := quicktest.New(t)
	const n, thr = 4, 2
	com := newCommittee(c, n, thr)

	ct, _, err := pvss.DistributeSecret(crand.Reader, com.cfg)
	c.Assert(err, quicktest.IsNil)

	_, err = pvss.DecryptShare(com.cfg, ct, com.sks[0], -1)
	var idErr *pvss.InvalidParticipantIdError
	c.Assert(err, quicktest.ErrorAs, &idErr)

	_, err = pvss.DecryptShare(com.cfg, ct, com.sks[0], n)
	c.Assert(err, quicktest.ErrorAs, &idErr)
}

// TestLagrangeCoefficientsAgreeNaiveAndOptimized checks spec.md §8's
// "Lagrange equivalence" property: for contiguous nodes {1..n} and a
// uniformly random challenge, the naive and factorial-optimized Lagrange
// bases must agree element-wise.
func TestLagrangeCoefficientsAgreeNaiveAndOptimized(t *testing.T) {
	c := quicktest.New(t)
	for _, n := range []int{1, 2, 3, 5, 8, 13, 21, 34, 64} {
		var alpha fr.Element
		_, err := alpha.SetRandom()
		c.Assert(err, quicktest.IsNil)

		nodes := make([]int, n)
		for i := range nodes {
			nodes[i] = i + 1
		}

		naive := pvss.GenLagrangeCoefficients(nodes, alpha)
		optimized := pvss.GenAllLagrangeCoefficients(n, alpha)
		c.Assert(len(naive), quicktest.Equals, len(optimized))
		for k := range naive {
			c.Assert(naive[k].Equal(&optimized[k]), quicktest.IsTrue)
		}
	}
}

// TestLagrangeCoefficientsReconstructAtZero checks that GenLagrangeCoefficients
// evaluated at alpha=0 over an arbitrary (non-contiguous) subset of nodes
// recovers a known polynomial's constant term from its evaluations, which is
// exactly what CombineShares relies on.
func TestLagrangeCoefficientsReconstructAtZero(t *testing.T) {
	c := quicktest.New(t)
	// f(x) = 3 + 5x + 7x^2
	coeffs := []int64{3, 5, 7}
	eval := func(x int64) fr.Element {
		var acc fr.Element
		for k := len(coeffs) - 1; k >= 0; k-- {
			var xElem, ck fr.Element
			xElem.SetInt64(x)
			ck.SetInt64(coeffs[k])
			acc.Mul(&acc, &xElem)
			acc.Add(&acc, &ck)
		}
		return acc
	}

	nodes := []int{2, 4, 9} // non-contiguous, enough points for a degree-2 poly
	var zero fr.Element
	lagr := pvss.GenLagrangeCoefficients(nodes, zero)

	var recovered fr.Element
	for k, x := range nodes {
		fx := eval(int64(x))
		var term fr.Element
		term.Mul(&lagr[k], &fx)
		recovered.Add(&recovered, &term)
	}

	var want fr.Element
	want.SetInt64(coeffs[0])
	c.Assert(recovered.Equal(&want), quicktest.IsTrue)
}
