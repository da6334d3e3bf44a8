package pvss

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// GenLagrangeCoefficients returns, for each node in nodes (treated as the
// field elements naming those integers), the Lagrange basis polynomial
// L_i(alpha) evaluated at alpha via the direct, unoptimized definition:
//
//	L_i(alpha) = Π_{j != i} (alpha - x_j) / (x_i - x_j)
//
// nodes need not be the contiguous range {1..n}: this is the general form
// the combiner uses to reconstruct from an arbitrary subset of committee
// participants (at alpha = 0), and the form GenAllLagrangeCoefficients is
// checked against when nodes happens to be {1..n}.
func GenLagrangeCoefficients(nodes []int, alpha fr.Element) []fr.Element {
	xs := make([]fr.Element, len(nodes))
	for k, x := range nodes {
		xs[k].SetInt64(int64(x))
	}

	coeffs := make([]fr.Element, len(nodes))
	for k := range nodes {
		num := fr.One()
		den := fr.One()
		for l := range nodes {
			if l == k {
				continue
			}
			var diffA, diffX fr.Element
			diffA.Sub(&alpha, &xs[l])
			num.Mul(&num, &diffA)

			diffX.Sub(&xs[k], &xs[l])
			den.Mul(&den, &diffX)
		}
		var denInv fr.Element
		denInv.Inverse(&den)
		coeffs[k].Mul(&num, &denInv)
	}
	return coeffs
}

// GenAllLagrangeCoefficients computes the same values as
// GenLagrangeCoefficients(nodes, alpha) for the specific contiguous node set
// nodes = {1, ..., n}, using the closed-form factorial optimization of
// spec.md §4.2:
//
//	L_i(alpha) = Π · (alpha - i)^-1 · ((i-1)! · (-1)^(n-i) · (n-i)!)^-1
//
// where Π = Π_{j=1}^n (alpha - j). Positive factorials P[0..n-1] and signed
// negative factorials N[0..n-1] (N[k] = Π_{j=1}^k (-j) = (-1)^k · k!) are
// each tabulated once in O(n); every L_i then costs two inversions and two
// multiplications instead of the O(n) product the naive form needs per index, so
// the whole vector drops from O(n^2) to O(n).
//
// This is the form Verify's Check A calls, since Check A's Lagrange basis is
// always taken over the full committee {1..n}, never a subset.
func GenAllLagrangeCoefficients(n int, alpha fr.Element) []fr.Element {
	pi := fr.One()
	diffs := make([]fr.Element, n)
	for j := 1; j <= n; j++ {
		var xj fr.Element
		xj.SetInt64(int64(j))
		diffs[j-1].Sub(&alpha, &xj)
		pi.Mul(&pi, &diffs[j-1])
	}

	pos := make([]fr.Element, n) // pos[k] = k!
	pos[0] = fr.One()
	for k := 1; k < n; k++ {
		var kElem fr.Element
		kElem.SetInt64(int64(k))
		pos[k].Mul(&pos[k-1], &kElem)
	}

	neg := make([]fr.Element, n) // neg[k] = Π_{j=1}^k (-j)
	neg[0] = fr.One()
	for k := 1; k < n; k++ {
		var negK fr.Element
		negK.SetInt64(int64(-k))
		neg[k].Mul(&neg[k-1], &negK)
	}

	coeffs := make([]fr.Element, n)
	for idx := 1; idx <= n; idx++ {
		k := idx - 1

		var scale, scaleInv, denomInv fr.Element
		scale.Mul(&pos[idx-1], &neg[n-idx])
		scaleInv.Inverse(&scale)
		denomInv.Inverse(&diffs[k])

		coeffs[k].Mul(&pi, &denomInv)
		coeffs[k].Mul(&coeffs[k], &scaleInv)
	}
	return coeffs
}
