// Package hmac implements the Hash-based Message Authentication Code
// construction over any registered digest algorithm.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc2104
//
// Update is call-granular: every call runs a complete nested pass over
// just the bytes it was given, and the passes accumulate in the outer
// state. The tag for data fed in one call therefore differs from the tag
// for the same data split across two calls. This deviates from streaming
// HMAC and is kept for output compatibility; a single Update call produces
// the standard RFC 2104 tag.
package hmac

import (
	"fmt"

	"digest-kit/digest"
	"digest-kit/digest/encoding"
)

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// Digest is a running HMAC computation. It is not safe for concurrent use;
// Clone produces an independent instance that is.
type Digest struct {
	algo digest.Algorithm
	key  []byte // post-normalization, kept for diagnostics only

	ipad, opad []byte

	outer digest.Digest
	inner digest.Digest // scratch, reset before every use
}

// New constructs an HMAC over algo keyed with key.
//
// Keys longer than the algorithm's block length are replaced by their own
// digest before pad derivation, shorter keys are zero-extended. Empty keys
// are accepted, as RFC 2104 permits.
func New(key []byte, algo digest.Algorithm) (*Digest, error) {
	if !algo.Available() {
		return nil, digest.ErrUnsupportedAlgorithm
	}

	outer := algo.New()
	inner := algo.New()

	blockLen := algo.BlockSize()
	if len(key) > blockLen {
		inner.Write(key)
		key = inner.Sum(nil)
		inner.Reset()
	} else {
		key = append([]byte(nil), key...)
	}

	ipad := make([]byte, blockLen)
	opad := make([]byte, blockLen)
	for i := 0; i < blockLen; i++ {
		ipad[i] = ipadByte
		opad[i] = opadByte
	}
	for i, k := range key {
		ipad[i] ^= k
		opad[i] ^= k
	}

	return &Digest{
		algo:  algo,
		key:   key,
		ipad:  ipad,
		opad:  opad,
		outer: outer,
		inner: inner,
	}, nil
}

// NewByName is New with the algorithm resolved through the registry.
func NewByName(key []byte, name string) (*Digest, error) {
	algo, err := digest.Get(name)
	if err != nil {
		return nil, err
	}
	return New(key, algo)
}

// Update authenticates data as one unit: a freshly reset inner pass hashes
// ipad ‖ data, and its result is fed, prefixed with opad, into the running
// outer state. Returns d to allow chaining.
func (d *Digest) Update(data []byte) *Digest {
	d.inner.Reset()
	d.inner.Write(d.ipad)
	d.inner.Write(data)

	d.outer.Write(d.opad)
	d.outer.Write(d.inner.Sum(nil))

	return d
}

// Reset discards all updates, returning d to its freshly constructed
// state. The key and pads are unaffected.
func (d *Digest) Reset() {
	d.outer.Reset()
}

// Sum appends the current tag to b and returns the resulting slice. It
// does not consume the outer state: repeated calls return the same tag,
// and further updates continue the same computation.
func (d *Digest) Sum(b []byte) []byte {
	return d.outer.Sum(b)
}

// HexSum returns the current tag in lowercase hex.
func (d *Digest) HexSum() string {
	return encoding.Hex(d.Sum(nil))
}

// Size returns the tag length in bytes.
func (d *Digest) Size() int { return d.algo.Size() }

// BlockSize returns the underlying algorithm's block size in bytes.
func (d *Digest) BlockSize() int { return d.algo.BlockSize() }

// Clone returns an independent copy: the outer state is deep-copied, so
// subsequent updates to d and the clone do not observe each other. Pads
// and key are immutable and shared.
func (d *Digest) Clone() *Digest {
	return &Digest{
		algo:  d.algo,
		key:   d.key,
		ipad:  d.ipad,
		opad:  d.opad,
		outer: d.outer.Clone(),
		inner: d.algo.New(),
	}
}

// String renders d for debugging. The format is not a contract.
func (d *Digest) String() string {
	return fmt.Sprintf("hmac(%s): key=%q digest=%s", d.algo.Name(), d.key, d.HexSum())
}

// Sum computes the tag for data in a single pass, equivalent to
// New(key, algo) followed by one Update(data).
func Sum(key, data []byte, algo digest.Algorithm) ([]byte, error) {
	d, err := New(key, algo)
	if err != nil {
		return nil, err
	}
	return d.Update(data).Sum(nil), nil
}
