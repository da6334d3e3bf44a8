package serialize_test

import (
	crand "crypto/rand"
	"encoding/json"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"
	"github.com/frankban/quicktest"

	"github.com/galletas1712/cassiopeia/pairing"
	"github.com/galletas1712/cassiopeia/pvss"
	"github.com/galletas1712/cassiopeia/serialize"
)

func TestFrRoundTrip(t *testing.T) {
	c := quicktest.New(t)
	sk, _, err := pvss.GenerateKey(crand.Reader, pairing.NewConfig())
	c.Assert(err, quicktest.IsNil)

	s := serialize.EncodeFr(sk)
	c.Assert(s[:2], quicktest.Equals, "0x")
	c.Assert(len(s), quicktest.Equals, 2+64) // fixed-width: always 32 bytes, 64 hex digits

	decoded, err := serialize.DecodeFr(s)
	c.Assert(err, quicktest.IsNil)
	c.Assert(decoded.Equal(&sk), quicktest.IsTrue)

	// serialize(deserialize(s)) == s for every s produced by the serializer.
	c.Assert(serialize.EncodeFr(decoded), quicktest.Equals, s)
}

// TestFrEncodeIsFixedWidth checks spec.md §6.2's "no leading zeros stripped
// beyond those present in the canonical representation": Fr(3) must encode
// as the full 32-byte, 64-hex-digit word (the EIP-197 word size), not a
// minimal-width "0x03" — a ciphertext produced by any other EIP-197-faithful
// encoder (or read by the pairing precompile) assumes the fixed width.
func TestFrEncodeIsFixedWidth(t *testing.T) {
	c := quicktest.New(t)
	var small fr.Element
	small.SetUint64(3)
	c.Assert(serialize.EncodeFr(small), quicktest.Equals, "0x"+strings.Repeat("0", 62)+"03")
}

func TestDecodeFrRejectsMalformedInput(t *testing.T) {
	c := quicktest.New(t)

	_, err := serialize.DecodeFr("deadbeef")
	c.Assert(err, quicktest.Equals, serialize.ErrMalformedHex)

	_, err = serialize.DecodeFr("0xabc")
	c.Assert(err, quicktest.Equals, serialize.ErrMalformedHex)

	// Even digit count (62) but one byte short of a full word: DecodeFr never
	// receives this shape from its own encoder, but a hand-crafted wire value
	// might.
	_, err = serialize.DecodeFr("0x" + repeatHex("ab", 31))
	c.Assert(err, quicktest.Equals, serialize.ErrMalformedHex)

	// Exactly 32 bytes, but >= the Fr modulus (~2^254).
	_, err = serialize.DecodeFr("0x" + repeatHex("ff", 32))
	c.Assert(err, quicktest.Equals, serialize.ErrOutOfRange)
}

// TestDecodeFrRejectsNonCanonicalEncoding checks spec.md §6.2's round-trip
// identity rule: a hex string with spurious uppercase digits decodes to the
// right value arithmetically, but is not the wire form that value's own
// (lowercase) encoder would have produced, so it must be rejected.
func TestDecodeFrRejectsNonCanonicalEncoding(t *testing.T) {
	c := quicktest.New(t)
	var v fr.Element
	v.SetUint64(0xabcdef)
	canonical := serialize.EncodeFr(v)

	upper := "0x" + strings.ToUpper(canonical[2:])
	_, err := serialize.DecodeFr(upper)
	c.Assert(err, quicktest.Equals, serialize.ErrOutOfRange)
}

func repeatHex(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestG1PointRoundTripJSONAndCBOR(t *testing.T) {
	c := quicktest.New(t)
	pc := pairing.NewConfig()
	point := serialize.G1Point{G1Affine: pc.G}

	data, err := json.Marshal(point)
	c.Assert(err, quicktest.IsNil)

	var decoded serialize.G1Point
	c.Assert(json.Unmarshal(data, &decoded), quicktest.IsNil)
	c.Assert(decoded.G1Affine.Equal(&point.G1Affine), quicktest.IsTrue)

	cborData, err := cbor.Marshal(point)
	c.Assert(err, quicktest.IsNil)
	var cborDecoded serialize.G1Point
	c.Assert(cbor.Unmarshal(cborData, &cborDecoded), quicktest.IsNil)
	c.Assert(cborDecoded.G1Affine.Equal(&point.G1Affine), quicktest.IsTrue)
}

func TestG2PointRoundTripJSONAndCBOR(t *testing.T) {
	c := quicktest.New(t)
	pc := pairing.NewConfig()
	point := serialize.G2Point{G2Affine: pc.H}

	data, err := json.Marshal(point)
	c.Assert(err, quicktest.IsNil)

	var decoded serialize.G2Point
	c.Assert(json.Unmarshal(data, &decoded), quicktest.IsNil)
	c.Assert(decoded.G2Affine.Equal(&point.G2Affine), quicktest.IsTrue)

	cborData, err := cbor.Marshal(point)
	c.Assert(err, quicktest.IsNil)
	var cborDecoded serialize.G2Point
	c.Assert(cbor.Unmarshal(cborData, &cborDecoded), quicktest.IsNil)
	c.Assert(cborDecoded.G2Affine.Equal(&point.G2Affine), quicktest.IsTrue)
}

// TestFQ2WireOrderIsReversed checks spec.md §6.2/§9's load-bearing EIP-197
// reversal: for an Fq2 element c0 + c1*u with c0 != c1, the JSON/CBOR array's
// first entry must decode to c1 and the second to c0 — the opposite of
// gnark-crypto's in-memory (A0, A1) field order.
func TestFQ2WireOrderIsReversed(t *testing.T) {
	c := quicktest.New(t)
	var c0, c1 fp.Element
	c0.SetUint64(11)
	c1.SetUint64(22)
	fq2 := serialize.FQ2{E2: bn254.E2{A0: c0, A1: c1}}

	data, err := json.Marshal(fq2)
	c.Assert(err, quicktest.IsNil)

	var wire [2]string
	c.Assert(json.Unmarshal(data, &wire), quicktest.IsNil)
	c.Assert(wire[0], quicktest.Equals, serialize.EncodeFq(c1))
	c.Assert(wire[1], quicktest.Equals, serialize.EncodeFq(c0))

	var decoded serialize.FQ2
	c.Assert(json.Unmarshal(data, &decoded), quicktest.IsNil)
	c.Assert(decoded.E2.A0.Equal(&c0), quicktest.IsTrue)
	c.Assert(decoded.E2.A1.Equal(&c1), quicktest.IsTrue)
}

func TestG1PointRejectsOffCurvePoint(t *testing.T) {
	c := quicktest.New(t)
	pc := pairing.NewConfig()
	bad := pc.G
	bad.Y.SetOne() // almost certainly not on the curve anymore

	data, err := json.Marshal(serialize.G1Point{G1Affine: bad})
	c.Assert(err, quicktest.IsNil)

	var decoded serialize.G1Point
	err = json.Unmarshal(data, &decoded)
	c.Assert(err, quicktest.ErrorIs, serialize.ErrInvalidPoint)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	c := quicktest.New(t)
	pc := pairing.NewConfig()
	const n, thr = 5, 3

	pks := make([]bn254.G2Affine, n)
	for i := 0; i < n; i++ {
		_, pk, err := pvss.GenerateKey(crand.Reader, pc)
		c.Assert(err, quicktest.IsNil)
		pks[i] = pk
	}

	cfg, err := pvss.NewConfig(pc, pks, thr)
	c.Assert(err, quicktest.IsNil)

	ct, secrets, err := pvss.DistributeSecret(crand.Reader, cfg)
	c.Assert(err, quicktest.IsNil)

	s := serialize.FromSecrets(secrets)
	env := serialize.Envelope{
		Config:     serialize.FromConfig(cfg),
		Ciphertext: serialize.FromCiphertext(ct),
		Secrets:    &s,
	}

	data, err := json.Marshal(env)
	c.Assert(err, quicktest.IsNil)

	var decoded serialize.Envelope
	c.Assert(json.Unmarshal(data, &decoded), quicktest.IsNil)

	gotCfg, err := decoded.Config.ToConfig()
	c.Assert(err, quicktest.IsNil)
	c.Assert(gotCfg.T, quicktest.Equals, cfg.T)

	gotCt := decoded.Ciphertext.ToCiphertext()
	c.Assert(pvss.VerifyCiphertext(gotCfg, gotCt), quicktest.IsNil)

	gotSecrets, err := decoded.Secrets.ToSecrets()
	c.Assert(err, quicktest.IsNil)
	c.Assert(gotSecrets.F0.Equal(&secrets.F0), quicktest.IsTrue)
}
