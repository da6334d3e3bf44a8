// Package serialize implements cassiopeia's wire formats: a canonical,
// EIP-197-faithful JSON encoding (the format any Ethereum precompile caller
// or Circom witness generator expects) and a compact CBOR encoding. The CLI
// reads and writes JSON only; the CBOR codecs are library API. Both encodings round-trip every type in this
// package byte-for-byte; decoding is never lenient about shape, since a
// silently-accepted malformed point is exactly the kind of bug a pairing
// scheme cannot afford.
package serialize

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrMalformedHex is returned when a JSON hex string fails the wire format's
// shape rules: missing "0x" prefix, odd-length digits, or an unexpected
// byte count for the field it is decoding into.
var ErrMalformedHex = fmt.Errorf("serialize: malformed hex string")

// ErrOutOfRange is returned when a decoded integer is not a canonical
// element of its field (it is >= the field's modulus), or when the decoded
// value re-encodes to a different string than the one given (e.g. uppercase
// hex digits).
var ErrOutOfRange = fmt.Errorf("serialize: value out of range for field")

// ErrInvalidPoint is returned when a decoded curve point fails the
// on-curve or in-subgroup check.
var ErrInvalidPoint = fmt.Errorf("serialize: point is not on curve or not in the correct subgroup")

// decodeHexBytes parses a "0x"-prefixed lowercase hex string into exactly n
// raw bytes, rejecting a missing prefix, a digit count other than 2*n, or
// invalid hex digits. n is always the field's fixed word width (32 bytes for
// both Fr and Fq on BN254, the EIP-197 word size this format exists to
// match), so every wire string is a fixed 2*n hex digits — never stripped of
// leading zero bytes.
func decodeHexBytes(s string, n int) ([]byte, error) {
	if len(s) < 2 || s[0:2] != "0x" {
		return nil, ErrMalformedHex
	}
	digits := s[2:]
	if len(digits) != 2*n {
		return nil, ErrMalformedHex
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, ErrMalformedHex
	}
	return b, nil
}

// EncodeFr renders e's canonical representative as a fixed-width,
// "0x"-prefixed hex string: 32 big-endian bytes (64 hex digits), with
// leading zero bytes kept, never stripped.
func EncodeFr(e fr.Element) string {
	b := e.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

// DecodeFr parses a wire-format Fr element. It rejects malformed hex,
// strings that are not exactly 64 hex digits, values outside [0, r), and any
// non-canonical encoding: the decoded value is re-encoded and compared
// byte-for-byte against s, so e.g. stray uppercase hex digits (valid hex,
// wrong wire form) are rejected the same as a value >= the field modulus.
func DecodeFr(s string) (fr.Element, error) {
	b, err := decodeHexBytes(s, fr.Bytes)
	if err != nil {
		return fr.Element{}, err
	}
	if new(big.Int).SetBytes(b).Cmp(fr.Modulus()) >= 0 {
		return fr.Element{}, ErrOutOfRange
	}
	var e fr.Element
	e.SetBytes(b)
	if EncodeFr(e) != s {
		return fr.Element{}, ErrOutOfRange
	}
	return e, nil
}

// EncodeFq renders e's canonical representative as a fixed-width,
// "0x"-prefixed hex string: 32 big-endian bytes (64 hex digits), with
// leading zero bytes kept, never stripped.
func EncodeFq(e fp.Element) string {
	b := e.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

// DecodeFq parses a wire-format Fq element, with the same fixed-width shape
// rule and non-canonical round-trip rejection DecodeFr applies.
func DecodeFq(s string) (fp.Element, error) {
	b, err := decodeHexBytes(s, fp.Bytes)
	if err != nil {
		return fp.Element{}, err
	}
	if new(big.Int).SetBytes(b).Cmp(fp.Modulus()) >= 0 {
		return fp.Element{}, ErrOutOfRange
	}
	var e fp.Element
	e.SetBytes(b)
	if EncodeFq(e) != s {
		return fp.Element{}, ErrOutOfRange
	}
	return e, nil
}
