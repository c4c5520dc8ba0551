package digest

import (
	"encoding"
	"fmt"
	"hash"
)

// marshalDigest clones by round-tripping the underlying hash's binary
// state. Every stdlib hash and blake2b support this.
type marshalDigest struct {
	algo  Algorithm
	inner hash.Hash
}

var _ Digest = (*marshalDigest)(nil)

func (d *marshalDigest) Write(p []byte) (int, error) { return d.inner.Write(p) }
func (d *marshalDigest) Reset()                      { d.inner.Reset() }
func (d *marshalDigest) Sum(b []byte) []byte         { return d.inner.Sum(b) }
func (d *marshalDigest) Size() int                   { return d.algo.size }
func (d *marshalDigest) BlockSize() int              { return d.algo.blockSize }

func (d *marshalDigest) Clone() Digest {
	state, err := d.inner.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("internal error: marshaling %s state: %v", d.algo.name, err))
	}

	fresh := d.algo.newFunc()
	if err := fresh.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
		panic(fmt.Sprintf("internal error: unmarshaling %s state: %v", d.algo.name, err))
	}

	return &marshalDigest{algo: d.algo, inner: fresh}
}

// replayDigest records written input so clones can be built by replaying
// it into a fresh instance. Used for algorithms whose implementations do
// not expose their state (ripemd160, whirlpool).
type replayDigest struct {
	algo  Algorithm
	inner hash.Hash
	input []byte
}

var _ Digest = (*replayDigest)(nil)

func (d *replayDigest) Write(p []byte) (int, error) {
	d.input = append(d.input, p...)
	return d.inner.Write(p)
}

func (d *replayDigest) Reset() {
	d.input = nil
	d.inner.Reset()
}

func (d *replayDigest) Sum(b []byte) []byte { return d.inner.Sum(b) }
func (d *replayDigest) Size() int           { return d.algo.size }
func (d *replayDigest) BlockSize() int      { return d.algo.blockSize }

func (d *replayDigest) Clone() Digest {
	fresh := d.algo.newFunc()
	fresh.Write(d.input)

	return &replayDigest{
		algo:  d.algo,
		inner: fresh,
		input: append([]byte(nil), d.input...),
	}
}
