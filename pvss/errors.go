package pvss

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// InvalidParticipantIdError is returned whenever an index is out of [0, n)
// where it is expected to name a committee member.
type InvalidParticipantIdError struct {
	Index int
}

func (e *InvalidParticipantIdError) Error() string {
	return fmt.Sprintf("pvss: invalid participant id %d", e.Index)
}

// ErrInvalidSecretKey is returned when a committee member's secret key is
// zero and therefore has no multiplicative inverse in Fr.
var ErrInvalidSecretKey = fmt.Errorf("pvss: secret key is zero, not invertible")

// EvaluationsCheckError is returned by Verify/VerifyCiphertext when the
// polynomial-consistency check (Check A) fails. P is the non-zero residual
// G1 point the combined MSM collapsed to. It is also returned, with P left at
// the zero value (the identity), when the ciphertext's FI/AI/YI lengths do
// not match the Config.
type EvaluationsCheckError struct {
	P bn254.G1Affine
}

func (e *EvaluationsCheckError) Error() string {
	return fmt.Sprintf("pvss: evaluations check failed, residual point %s", e.P.String())
}

// ErrRatioIncorrect is returned when a pairing identity fails: either the
// ciphertext's share-encryption check (Check B) or a single share's
// decryption-verification check.
var ErrRatioIncorrect = fmt.Errorf("pvss: pairing ratio check failed")

// ErrShareCountMismatch is returned by CombineShares when the number of
// shares and the number of participant indices it was given disagree.
var ErrShareCountMismatch = fmt.Errorf("pvss: share count does not match index count")
