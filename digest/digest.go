// Package digest provides a common capability interface over cryptographic
// hash algorithms and a registry of named implementations.
//
// It extends the stdlib hash.Hash contract with Clone, so keyed
// constructions that need to snapshot a running hash state can do so
// without knowing how each algorithm stores that state.
package digest

import (
	"io"

	"github.com/pkg/errors"
)

// Digest is a running hash computation.
type Digest interface {
	io.Writer

	// Reset returns the digest to its initial empty state.
	Reset()

	// Sum appends the hash of everything written since the last Reset to b
	// and returns the resulting slice. It does not consume the running
	// state; further writes continue the same computation.
	Sum(b []byte) []byte

	// Size returns the number of bytes Sum appends.
	Size() int

	// BlockSize returns the algorithm's block size in bytes.
	BlockSize() int

	// Clone returns a deep copy with independent mutable state.
	Clone() Digest
}

var ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

// Stream hashes everything readable from r using algo.
func Stream(algo Algorithm, r io.Reader) ([]byte, error) {
	if !algo.Available() {
		return nil, ErrUnsupportedAlgorithm
	}

	d := algo.New()
	if _, err := io.Copy(d, r); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	return d.Sum(nil), nil
}
