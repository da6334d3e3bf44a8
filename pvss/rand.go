package pvss

import (
	crand "crypto/rand"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// sampleFr draws a uniform element of Fr from rand. It uses crypto/rand's
// rejection-sampling Int under the hood against the field modulus, so every
// caller that needs reproducible randomness (tests, the CLI's --seed-less
// default notwithstanding) can do so by supplying a deterministic rand
// without reaching past this package's API into gnark-crypto internals.
func sampleFr(rand io.Reader) (fr.Element, error) {
	modulus := fr.Modulus()
	v, err := crand.Int(rand, modulus)
	if err != nil {
		return fr.Element{}, err
	}
	var e fr.Element
	e.SetBigInt(v)
	return e, nil
}
