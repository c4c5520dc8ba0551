package digest

import (
	"hash"
	"strings"

	"github.com/pkg/errors"

	sliceutil "digest-kit/lib/slice"
)

// Algorithm identifies a registered hash algorithm and constructs running
// instances of it. The zero value is not usable; obtain algorithms from the
// package variables or Get.
type Algorithm struct {
	name      string
	size      int
	blockSize int
	newFunc   func() hash.Hash
	replayed  bool // state is not marshalable; clones replay recorded input
}

func (a Algorithm) Name() string   { return a.name }
func (a Algorithm) Size() int      { return a.size }
func (a Algorithm) BlockSize() int { return a.blockSize }

// Available reports whether a can construct digest instances.
func (a Algorithm) Available() bool { return a.newFunc != nil }

// New constructs a fresh, empty digest instance. It panics when called on
// an unavailable Algorithm; check Available first when the value did not
// come from this package.
func (a Algorithm) New() Digest {
	if a.replayed {
		return &replayDigest{algo: a, inner: a.newFunc()}
	}
	return &marshalDigest{algo: a, inner: a.newFunc()}
}

var supported []Algorithm

func register(a Algorithm) Algorithm {
	supported = append(supported, a)
	return a
}

// Get resolves a registered algorithm by name (case-insensitive).
func Get(name string) (Algorithm, error) {
	for _, a := range supported {
		if strings.EqualFold(a.name, name) {
			return a, nil
		}
	}
	return Algorithm{}, errors.Wrapf(ErrUnsupportedAlgorithm, "%q", name)
}

// Algorithms returns every registered algorithm in registration order.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), supported...)
}

// Names returns the names of every registered algorithm.
func Names() []string {
	return sliceutil.Map(Algorithms(), Algorithm.Name)
}
