package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/fxamacker/cbor/v2"
)

// FQ2 is the wire representation of bn254.E2 (c0 + c1·u). Its JSON encoding
// is a 2-element array in [c1, c0] order — the reverse of gnark-crypto's
// in-memory (A0, A1) field order — because that is the order the EIP-197
// precompile and Circom's bn254 G2 encoding both expect. CBOR uses the same
// reversed order for the same reason: a CBOR-encoded ciphertext must be
// re-encodable to the EIP-197 JSON form (and vice versa) without touching
// the curve library, so both wire forms agree on byte order.
type FQ2 struct {
	E2 bn254.E2
}

type fq2Wire [2]string

func (f FQ2) toWire() fq2Wire {
	return fq2Wire{EncodeFq(f.E2.A1), EncodeFq(f.E2.A0)}
}

func (f *FQ2) fromWire(w fq2Wire) error {
	a1, err := DecodeFq(w[0])
	if err != nil {
		return err
	}
	a0, err := DecodeFq(w[1])
	if err != nil {
		return err
	}
	f.E2.A0 = a0
	f.E2.A1 = a1
	return nil
}

func (f FQ2) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.toWire())
}

func (f *FQ2) UnmarshalJSON(data []byte) error {
	var w fq2Wire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("serialize: decoding fq2: %w", err)
	}
	return f.fromWire(w)
}

func (f FQ2) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(f.toWire())
}

func (f *FQ2) UnmarshalCBOR(data []byte) error {
	var w fq2Wire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("serialize: decoding fq2 cbor: %w", err)
	}
	return f.fromWire(w)
}
