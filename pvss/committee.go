package pvss

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Committee bundles a candidate committee's public keys before they are
// handed to NewConfig. It exists purely as glue for the CLI's config input
// path (serialize.Config.ToConfig, used by every subcommand that reads a
// committee): a cheap guard against copy/paste mistakes when assembling a
// list of pks, not a defense against a participant who submits a key it does
// not hold. Rogue-key resistance is explicitly out of scope for this
// package; callers who need it must validate possession out of band.
type Committee struct {
	PKs []bn254.G2Affine
}

// Validate rejects an empty committee, any point-at-infinity public key, and
// any duplicate public key. It does not check subgroup membership: pks
// arriving through serialize.G2Point's UnmarshalJSON/UnmarshalCBOR are already
// validated there, and Validate is meant to run on already-deserialized,
// already-on-curve keys.
func (c Committee) Validate() error {
	if len(c.PKs) == 0 {
		return fmt.Errorf("pvss: committee must have at least one member")
	}
	seen := make(map[bn254.G2Affine]struct{}, len(c.PKs))
	for i, pk := range c.PKs {
		if pk.IsInfinity() {
			return fmt.Errorf("pvss: committee member %d has a point-at-infinity public key", i)
		}
		if _, dup := seen[pk]; dup {
			return fmt.Errorf("pvss: committee member %d duplicates another member's public key", i)
		}
		seen[pk] = struct{}{}
	}
	return nil
}
