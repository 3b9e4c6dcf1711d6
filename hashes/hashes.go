// Package hashes maps the standard hash-name strings used for
// pre-hashed signing ("sha256", "sha3256", "blake2b", ...) to hash
// constructors. The name travels into the signature as a domain label,
// so producers and verifiers must agree on the exact byte string; this
// registry covers the conventional names, while the signing API itself
// accepts any non-empty label.
package hashes

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"hash"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

var registry = map[string]func() hash.Hash{
	"sha224":    sha256.New224,
	"sha256":    sha256simd.New,
	"sha384":    sha512.New384,
	"sha512":    sha512.New,
	"sha512224": sha512.New512_224,
	"sha512256": sha512.New512_256,
	"sha3224":   sha3.New224,
	"sha3256":   sha3.New256,
	"sha3384":   sha3.New384,
	"sha3512":   sha3.New512,
	"blake2b":   newBlake2b,
	"blake2s":   newBlake2s,
	"blake3":    newBlake3,
}

func newBlake2b() hash.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err) // cannot happen with a nil key
	}
	return h
}

func newBlake2s() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(err) // cannot happen with a nil key
	}
	return h
}

func newBlake3() hash.Hash {
	return blake3.New()
}

// New returns a fresh hash for the given standard name.
func New(name string) (hash.Hash, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.New("unknown hash name: " + name)
	}
	return f(), nil
}

// Sum hashes msg under the named hash and returns the digest.
func Sum(name string, msg []byte) ([]byte, error) {
	h, err := New(name)
	if err != nil {
		return nil, err
	}
	h.Write(msg)
	return h.Sum(nil), nil
}

// Names lists the registered hash names.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	return out
}
