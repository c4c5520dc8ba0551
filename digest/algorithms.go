package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/jzelinskie/whirlpool"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
)

var (
	MD5    = register(Algorithm{name: "md5", size: md5.Size, blockSize: md5.BlockSize, newFunc: md5.New})
	SHA1   = register(Algorithm{name: "sha1", size: sha1.Size, blockSize: sha1.BlockSize, newFunc: sha1.New})
	SHA224 = register(Algorithm{name: "sha224", size: sha256.Size224, blockSize: sha256.BlockSize, newFunc: sha256.New224})
	SHA256 = register(Algorithm{name: "sha256", size: sha256.Size, blockSize: sha256.BlockSize, newFunc: sha256.New})
	SHA384 = register(Algorithm{name: "sha384", size: sha512.Size384, blockSize: sha512.BlockSize, newFunc: sha512.New384})
	SHA512 = register(Algorithm{name: "sha512", size: sha512.Size, blockSize: sha512.BlockSize, newFunc: sha512.New})

	RIPEMD160 = register(Algorithm{name: "ripemd160", size: ripemd160.Size, blockSize: ripemd160.BlockSize, newFunc: ripemd160.New, replayed: true})
	Whirlpool = register(Algorithm{name: "whirlpool", size: 64, blockSize: 64, newFunc: whirlpool.New, replayed: true})

	BLAKE2b256 = register(Algorithm{name: "blake2b-256", size: blake2b.Size256, blockSize: blake2b.BlockSize, newFunc: newBLAKE2b(blake2b.New256)})
	BLAKE2b512 = register(Algorithm{name: "blake2b-512", size: blake2b.Size, blockSize: blake2b.BlockSize, newFunc: newBLAKE2b(blake2b.New512)})
)

// blake2b constructors only fail on oversized keys; unkeyed use never does.
func newBLAKE2b(f func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := f(nil)
		if err != nil {
			panic("internal error: constructing unkeyed blake2b: " + err.Error())
		}
		return h
	}
}
