package serialize

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/galletas1712/cassiopeia/pairing"
	"github.com/galletas1712/cassiopeia/pvss"
)

// Config is the wire representation of pvss.Config.
type Config struct {
	G            G1Point   `json:"g" cbor:"g"`
	H            G2Point   `json:"h" cbor:"h"`
	CommitteePKs []G2Point `json:"committee_pks" cbor:"committee_pks"`
	T            int       `json:"t" cbor:"t"`
}

// FromConfig builds the wire form of a pvss.Config.
func FromConfig(cfg pvss.Config) Config {
	pks := make([]G2Point, len(cfg.CommitteePKs))
	for i, pk := range cfg.CommitteePKs {
		pks[i] = G2Point{G2Affine: pk}
	}
	return Config{
		G:            G1Point{G1Affine: cfg.Pairing.G},
		H:            G2Point{G2Affine: cfg.Pairing.H},
		CommitteePKs: pks,
		T:            cfg.T,
	}
}

// ToConfig validates and converts the wire form back into a pvss.Config. It
// runs pvss.Committee's cheap copy/paste guard (no duplicate or
// point-at-infinity keys) over CommitteePKs before handing them to
// pvss.NewConfig, since a JSON-assembled committee is exactly where that
// mistake tends to creep in.
func (c Config) ToConfig() (pvss.Config, error) {
	pks := make([]bn254.G2Affine, len(c.CommitteePKs))
	for i, pk := range c.CommitteePKs {
		pks[i] = pk.G2Affine
	}
	if err := (pvss.Committee{PKs: pks}).Validate(); err != nil {
		return pvss.Config{}, err
	}
	return pvss.NewConfig(pairing.Config{G: c.G.G1Affine, H: c.H.G2Affine}, pks, c.T)
}

// Ciphertext is the wire representation of pvss.Ciphertext, field names
// matching spec.md's wire vocabulary (f_i, a_i, y_i) rather than the Go
// struct's exported field names.
type Ciphertext struct {
	FI []G1Point `json:"f_i" cbor:"f_i"`
	AI []G1Point `json:"a_i" cbor:"a_i"`
	YI []G2Point `json:"y_i" cbor:"y_i"`
}

// FromCiphertext builds the wire form of a pvss.Ciphertext.
func FromCiphertext(ct pvss.Ciphertext) Ciphertext {
	fi := make([]G1Point, len(ct.FI))
	for i, p := range ct.FI {
		fi[i] = G1Point{G1Affine: p}
	}
	ai := make([]G1Point, len(ct.AI))
	for i, p := range ct.AI {
		ai[i] = G1Point{G1Affine: p}
	}
	yi := make([]G2Point, len(ct.YI))
	for i, p := range ct.YI {
		yi[i] = G2Point{G2Affine: p}
	}
	return Ciphertext{FI: fi, AI: ai, YI: yi}
}

// ToCiphertext converts the wire form back into a pvss.Ciphertext. It
// performs no shape validation against a Config; callers pass the result to
// pvss.Verify/pvss.VerifyCiphertext for that.
func (ct Ciphertext) ToCiphertext() pvss.Ciphertext {
	fi := make([]bn254.G1Affine, len(ct.FI))
	for i, p := range ct.FI {
		fi[i] = p.G1Affine
	}
	ai := make([]bn254.G1Affine, len(ct.AI))
	for i, p := range ct.AI {
		ai[i] = p.G1Affine
	}
	yi := make([]bn254.G2Affine, len(ct.YI))
	for i, p := range ct.YI {
		yi[i] = p.G2Affine
	}
	return pvss.Ciphertext{FI: fi, AI: ai, YI: yi}
}

// Secrets is the wire representation of pvss.Secrets.
type Secrets struct {
	F0  string  `json:"f_0" cbor:"f_0"`
	HF0 G2Point `json:"h_f_0" cbor:"h_f_0"`
}

// FromSecrets builds the wire form of a pvss.Secrets.
func FromSecrets(s pvss.Secrets) Secrets {
	return Secrets{F0: EncodeFr(s.F0), HF0: G2Point{G2Affine: s.HF0}}
}

// ToSecrets converts the wire form back into a pvss.Secrets.
func (s Secrets) ToSecrets() (pvss.Secrets, error) {
	f0, err := DecodeFr(s.F0)
	if err != nil {
		return pvss.Secrets{}, err
	}
	return pvss.Secrets{F0: f0, HF0: s.HF0.G2Affine}, nil
}

// Envelope bundles a Config with a Ciphertext, and optionally the dealer's
// Secrets, into the single JSON/CBOR object the CLI's single-file modes
// write. Secrets is only populated by deal-secret's own output, which the
// dealer keeps to itself; the other subcommands decode their own input types
// and never read Secrets.
type Envelope struct {
	Config     Config     `json:"config" cbor:"config"`
	Ciphertext Ciphertext `json:"ciphertext" cbor:"ciphertext"`
	Secrets    *Secrets   `json:"secrets,omitempty" cbor:"secrets,omitempty"`
}
