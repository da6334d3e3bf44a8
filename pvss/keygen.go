package pvss

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/galletas1712/cassiopeia/pairing"
)

// GenerateKey produces one committee member's BN254 keypair: a uniformly
// random secret key sk in Fr and its public key pk = H^sk in G2, H being
// the pairing context's fixed G2 generator. A zero sk (astronomically
// unlikely, but checked rather than assumed) is resampled, since
// DecryptShare rejects it outright.
func GenerateKey(rand io.Reader, cfg pairing.Config) (fr.Element, bn254.G2Affine, error) {
	var sk fr.Element
	for {
		s, err := sampleFr(rand)
		if err != nil {
			return fr.Element{}, bn254.G2Affine{}, err
		}
		if !s.IsZero() {
			sk = s
			break
		}
	}

	var pk bn254.G2Affine
	pk.ScalarMultiplication(&cfg.H, sk.BigInt(new(big.Int)))
	return sk, pk, nil
}
