// Command pvss is the cassiopeia CLI: a thin wrapper over the pvss and
// serialize packages exposing gen-keys, deal-secret, decrypt-share,
// combine-shares, and verify-ciphertext as single-shot subcommands. Every
// subcommand writes one JSON object to stdout (or --out). gen-keys takes the
// committee size n as its positional argument and reads no input; every other
// subcommand reads one JSON value from stdin (or --in), and combine-shares
// additionally accepts --dir for a file-tree of per-member share files.
package main

import (
	"fmt"
	"os"

	"github.com/galletas1712/cassiopeia/log"
)

var subcommands = map[string]func(args []string) error{
	"gen-keys":          runGenKeys,
	"deal-secret":       runDealSecret,
	"decrypt-share":     runDecryptShare,
	"combine-shares":    runCombineShares,
	"verify-ciphertext": runVerifyCiphertext,
}

func main() {
	// stdout is every subcommand's JSON output channel, so diagnostics go to
	// stderr instead of stdout, unlike cmd/send-blob's "debug"/"stdout" pair.
	log.Init("error", "stderr", nil)
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usageString())
		return exitUsage
	}

	cmd, ok := subcommands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "pvss: unknown subcommand %q\n%s\n", args[0], usageString())
		return exitUsage
	}

	if err := cmd(args[1:]); err != nil {
		log.Errorw(err, "subcommand failed")
		fmt.Fprintln(os.Stderr, err)
		return exitCodeOf(err)
	}
	return exitOK
}

func usageString() string {
	return "usage: pvss <gen-keys|deal-secret|decrypt-share|combine-shares|verify-ciphertext> [flags]"
}
