package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/spf13/pflag"

	"github.com/galletas1712/cassiopeia/pvss"
	"github.com/galletas1712/cassiopeia/serialize"
)

type sharePair struct {
	I     int               `json:"i"`
	Share serialize.G2Point `json:"share"`
}

type combineSharesOutput struct {
	Secret serialize.G2Point `json:"secret"`
}

// runCombineShares reconstructs h^{f_0} from a set of decrypted shares,
// either as a single JSON array of {i, share} on stdin/--in, or — the one
// subcommand that supports it — one {i, share} object per *.json file
// under --dir, the shape a real committee exchanging shares out-of-band
// would produce.
func runCombineShares(args []string) error {
	fs := pflag.NewFlagSet("combine-shares", pflag.ContinueOnError)
	in := fs.String("in", "", "input file (default: stdin)")
	out := fs.String("out", "", "output file (default: stdout)")
	dir := fs.String("dir", "", "directory of *.json {i, share} files, instead of stdin/--in")
	if err := fs.Parse(args); err != nil {
		return usageErrorf("parsing flags: %w", err)
	}

	var pairs []sharePair
	if *dir != "" {
		p, err := readSharesFromDir(*dir)
		if err != nil {
			return err
		}
		pairs = p
	} else {
		if err := readJSON(*in, &pairs); err != nil {
			return err
		}
	}

	indices := make([]int, len(pairs))
	shares := make([]bn254.G2Affine, len(pairs))
	for k, p := range pairs {
		indices[k] = p.I
		shares[k] = p.Share.G2Affine
	}

	secret, err := pvss.CombineShares(shares, indices)
	if err != nil {
		return apiErrorf("combining shares: %w", err)
	}

	result := combineSharesOutput{Secret: serialize.G2Point{G2Affine: secret}}
	return writeJSON(*out, result)
}

func readSharesFromDir(dir string) ([]sharePair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ioErrorf("reading share directory %q: %w", dir, err)
	}

	var pairs []sharePair
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		var p sharePair
		if err := readJSON(path, &p); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	if len(pairs) == 0 {
		return nil, usageErrorf("no *.json share files found in %q", dir)
	}
	return pairs, nil
}
