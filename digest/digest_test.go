package digest

import (
	"encoding/hex"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Known single-block vectors for every registered algorithm.
var abcVectors = map[string]string{
	"md5":         "900150983cd24fb0d6963f7d28e17f72",
	"sha1":        "a9993e364706816aba3e25717850c26c9cd0d89d",
	"sha224":      "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7",
	"sha256":      "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	"sha384":      "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7",
	"sha512":      "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
	"ripemd160":   "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc",
	"whirlpool":   "4e2448a4c6f486bb16b6562c73b4020bf3043e3a731bce721ae1b303d97e6d4c7181eebdb6c57e277d0e34957114cbd6c797fc9d95d8b582d225292076d4eef5",
	"blake2b-256": "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319",
	"blake2b-512": "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
}

func hexSum(d Digest) string {
	return hex.EncodeToString(d.Sum(nil))
}

func TestKnownVectors(t *testing.T) {
	require.Len(t, abcVectors, len(Algorithms()))

	for _, algo := range Algorithms() {
		t.Run(algo.Name(), func(t *testing.T) {
			expected, ok := abcVectors[algo.Name()]
			require.True(t, ok, "no vector for %s", algo.Name())

			d := algo.New()
			d.Write([]byte("abc"))
			assert.Equal(t, expected, hexSum(d))
		})
	}
}

func TestAlgorithmMetadata(t *testing.T) {
	for _, algo := range Algorithms() {
		t.Run(algo.Name(), func(t *testing.T) {
			require.True(t, algo.Available())

			d := algo.New()
			assert.Equal(t, algo.Size(), d.Size())
			assert.Equal(t, algo.BlockSize(), d.BlockSize())
			assert.Len(t, d.Sum(nil), algo.Size())
			assert.Greater(t, algo.BlockSize(), 0)
		})
	}

	assert.Equal(t, len(Algorithms()), len(Names()))
	assert.Contains(t, Names(), "sha256")
}

func TestGet(t *testing.T) {
	t.Run("Registered name", func(t *testing.T) {
		algo, err := Get("sha1")
		require.NoError(t, err)
		assert.Equal(t, SHA1.Name(), algo.Name())
	})

	t.Run("Case-insensitive", func(t *testing.T) {
		algo, err := Get("SHA256")
		require.NoError(t, err)
		assert.Equal(t, SHA256.Name(), algo.Name())
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := Get("md2")
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	})
}

func TestSumNonDestructive(t *testing.T) {
	for _, algo := range []Algorithm{SHA256, RIPEMD160} {
		t.Run(algo.Name(), func(t *testing.T) {
			d := algo.New()
			d.Write([]byte("ab"))

			first := d.Sum(nil)
			assert.Equal(t, first, d.Sum(nil), "repeated Sum must not drift")

			// The state stays usable after Sum.
			d.Write([]byte("c"))

			fresh := algo.New()
			fresh.Write([]byte("abc"))
			assert.Equal(t, fresh.Sum(nil), d.Sum(nil))
		})
	}
}

func TestClone(t *testing.T) {
	// SHA-256 clones via marshaled state, ripemd160 and whirlpool via
	// input replay; all three must behave identically.
	for _, algo := range []Algorithm{SHA256, RIPEMD160, Whirlpool} {
		t.Run(algo.Name(), func(t *testing.T) {
			d := algo.New()
			d.Write([]byte("foo"))

			c := d.Clone()
			d.Write([]byte("bar"))
			c.Write([]byte("baz"))

			foobar := algo.New()
			foobar.Write([]byte("foobar"))
			foobaz := algo.New()
			foobaz.Write([]byte("foobaz"))

			assert.Equal(t, foobar.Sum(nil), d.Sum(nil))
			assert.Equal(t, foobaz.Sum(nil), c.Sum(nil))
		})
	}
}

func TestReset(t *testing.T) {
	for _, algo := range []Algorithm{SHA256, Whirlpool} {
		t.Run(algo.Name(), func(t *testing.T) {
			d := algo.New()
			d.Write([]byte("discarded"))
			d.Reset()
			d.Write([]byte("abc"))

			fresh := algo.New()
			fresh.Write([]byte("abc"))
			assert.Equal(t, fresh.Sum(nil), d.Sum(nil))
		})
	}
}

func TestStream(t *testing.T) {
	t.Run("Reader is hashed fully", func(t *testing.T) {
		sum, err := Stream(SHA1, strings.NewReader("abc"))
		require.NoError(t, err)

		d := SHA1.New()
		d.Write([]byte("abc"))
		assert.Equal(t, d.Sum(nil), sum)
	})

	t.Run("Unavailable algorithm", func(t *testing.T) {
		_, err := Stream(Algorithm{}, strings.NewReader("abc"))
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	})

	t.Run("Reader failure", func(t *testing.T) {
		readErr := errors.New("broken")
		_, err := Stream(SHA1, iotest.ErrReader(readErr))
		assert.ErrorIs(t, err, readErr)
	})
}
