package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// exit codes, per the CLI's documented contract: 0 success, 1 usage error,
// 2 I/O error, 3 core API error surfaced from the pvss/serialize packages.
const (
	exitOK       = 0
	exitUsage    = 1
	exitIO       = 2
	exitAPIError = 3
)

// cliError carries the exit code a failure should produce, so main can stay
// a thin dispatcher instead of every subcommand calling os.Exit itself.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }

func usageErrorf(format string, args ...any) error {
	return &cliError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

func ioErrorf(format string, args ...any) error {
	return &cliError{code: exitIO, err: fmt.Errorf(format, args...)}
}

func apiErrorf(format string, args ...any) error {
	return &cliError{code: exitAPIError, err: fmt.Errorf(format, args...)}
}

func exitCodeOf(err error) int {
	if err == nil {
		return exitOK
	}
	if ce, ok := err.(*cliError); ok {
		return ce.code
	}
	return exitAPIError
}

// openInput opens path for reading, or stdin if path is empty.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf("opening input %q: %w", path, err)
	}
	return f, nil
}

// openOutput opens path for writing, or stdout if path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, ioErrorf("creating output %q: %w", path, err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// readJSON reads and decodes a single JSON value from path (or stdin).
func readJSON(path string, v any) error {
	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(v); err != nil {
		return ioErrorf("decoding JSON from %q: %w", displayPath(path), err)
	}
	return nil
}

// writeJSON encodes v as indented JSON to path (or stdout).
func writeJSON(path string, v any) error {
	f, err := openOutput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return ioErrorf("encoding JSON to %q: %w", displayPath(path), err)
	}
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return "<stdin/stdout>"
	}
	return path
}
