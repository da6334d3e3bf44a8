package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/fxamacker/cbor/v2"
)

// G1Point is the wire representation of a bn254.G1Affine point, encoded as
// a JSON/CBOR object {"x": Fq, "y": Fq} — matching the EIP-197 precompile's
// field layout rather than gnark-crypto's in-memory struct order.
type G1Point struct {
	bn254.G1Affine
}

type g1Wire struct {
	X string `json:"x" cbor:"x"`
	Y string `json:"y" cbor:"y"`
}

func (p G1Point) toWire() g1Wire {
	return g1Wire{X: EncodeFq(p.X), Y: EncodeFq(p.Y)}
}

func (p *G1Point) fromWire(w g1Wire) error {
	x, err := DecodeFq(w.X)
	if err != nil {
		return err
	}
	y, err := DecodeFq(w.Y)
	if err != nil {
		return err
	}
	candidate := bn254.G1Affine{X: x, Y: y}
	if !validG1(candidate) {
		return ErrInvalidPoint
	}
	p.G1Affine = candidate
	return nil
}

// validG1 reports whether pt is on the BN254 G1 curve and in its (trivial,
// cofactor-1) subgroup. The subgroup check is cheap here, but present for
// symmetry with validG2 and because it costs nothing to be explicit about
// it rather than assume the cofactor.
func validG1(pt bn254.G1Affine) bool {
	if pt.IsInfinity() {
		return true
	}
	return pt.IsOnCurve() && pt.IsInSubGroup()
}

func (p G1Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toWire())
}

func (p *G1Point) UnmarshalJSON(data []byte) error {
	var w g1Wire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("serialize: decoding g1 point: %w", err)
	}
	return p.fromWire(w)
}

func (p G1Point) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.toWire())
}

func (p *G1Point) UnmarshalCBOR(data []byte) error {
	var w g1Wire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("serialize: decoding g1 point cbor: %w", err)
	}
	return p.fromWire(w)
}

// G2Point is the wire representation of a bn254.G2Affine point, encoded as
// a JSON/CBOR object {"x": Fq2, "y": Fq2}, each coordinate itself reversed
// per EIP-197 (see FQ2).
type G2Point struct {
	bn254.G2Affine
}

type g2Wire struct {
	X FQ2 `json:"x" cbor:"x"`
	Y FQ2 `json:"y" cbor:"y"`
}

func (p G2Point) toWire() g2Wire {
	return g2Wire{X: FQ2{E2: p.X}, Y: FQ2{E2: p.Y}}
}

func (p *G2Point) fromWire(w g2Wire) error {
	candidate := bn254.G2Affine{X: w.X.E2, Y: w.Y.E2}
	if !validG2(candidate) {
		return ErrInvalidPoint
	}
	p.G2Affine = candidate
	return nil
}

// validG2 reports whether pt is on the BN254 twist and in the correct
// (non-trivial cofactor) subgroup — unlike G1, skipping this check on G2
// would accept small-subgroup points that silently break pairing checks.
func validG2(pt bn254.G2Affine) bool {
	if pt.IsInfinity() {
		return true
	}
	return pt.IsOnCurve() && pt.IsInSubGroup()
}

func (p G2Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toWire())
}

func (p *G2Point) UnmarshalJSON(data []byte) error {
	var w g2Wire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("serialize: decoding g2 point: %w", err)
	}
	return p.fromWire(w)
}

func (p G2Point) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.toWire())
}

func (p *G2Point) UnmarshalCBOR(data []byte) error {
	var w g2Wire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("serialize: decoding g2 point cbor: %w", err)
	}
	return p.fromWire(w)
}
