package pvss

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// DecryptShare is a committee member's half of reconstruction: given their
// own secret key sk and 0-based participant index i (naming
// cfg.CommitteePKs[i]), it inverts the dealer's encryption
// YI_i = pk_i^{f(i+1)} = H^{sk·f(i+1)} back to H^{f(i+1)}, the quantity that
// combines with the other members' shares via Lagrange interpolation in the
// exponent.
func DecryptShare(cfg Config, ct Ciphertext, sk fr.Element, i int) (bn254.G2Affine, error) {
	n := cfg.N()
	if i < 0 || i >= n {
		return bn254.G2Affine{}, &InvalidParticipantIdError{Index: i}
	}
	if sk.IsZero() {
		return bn254.G2Affine{}, ErrInvalidSecretKey
	}

	var skInv fr.Element
	skInv.Inverse(&sk)

	var share bn254.G2Affine
	share.ScalarMultiplication(&ct.YI[i], skInv.BigInt(new(big.Int)))
	return share, nil
}

// CombineShares reconstructs H^{f_0} (the dealer's committed secret) from a
// set of decrypted shares H^{f(i+1)}, one per entry of indices (each a
// 0-based participant index, naming cfg.CommitteePKs[indices[j]]), via
// Lagrange interpolation in the exponent:
//
//	H^{f_0} = Π_j share_j ^ L_j(0)
//
// where the Lagrange nodes are the 1-based evaluation points x_j =
// indices[j] + 1, matching how the dealer evaluated its polynomial.
//
// Callers are expected to have already run VerifyShare on every share they
// pass in; CombineShares itself performs no verification and will happily
// produce a wrong point from bad input. len(shares) must equal
// len(indices), and should be at least the dealer's threshold t for the
// result to actually equal H^{f_0} — fewer shares silently reconstruct a
// different, meaningless point rather than erroring, the same as plain
// Shamir interpolation below threshold. Duplicate indices are not detected:
// their zero denominator inverts to zero inside Lagrange coefficient
// generation, so the result is a wrong point and no error is returned;
// callers must deduplicate upstream.
func CombineShares(shares []bn254.G2Affine, indices []int) (bn254.G2Affine, error) {
	if len(shares) != len(indices) {
		return bn254.G2Affine{}, ErrShareCountMismatch
	}

	nodes := make([]int, len(indices))
	for k, idx := range indices {
		nodes[k] = idx + 1
	}
	var zero fr.Element
	coeffs := GenLagrangeCoefficients(nodes, zero)

	var acc bn254.G2Affine // zero value is the point at infinity, the group identity
	for k, share := range shares {
		var term bn254.G2Affine
		term.ScalarMultiplication(&share, coeffs[k].BigInt(new(big.Int)))
		acc.Add(&acc, &term)
	}
	return acc, nil
}
