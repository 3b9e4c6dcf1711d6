package jq255e

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2s"
)

// Domain-separation bytes for the internal BLAKE2s derivations.
const (
	domainSignRaw    = 0x52 // signature over a raw message
	domainSignHashed = 0x48 // signature over a pre-hashed message
	domainECDHOK     = 0x53 // ECDH success
	domainECDHFail   = 0x46 // ECDH failure (masked output path)
)

// newHash returns the streaming hash used for every internal derivation:
// BLAKE2s with 32-byte output and no key.
func newHash() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(err) // cannot happen with a nil key
	}
	return h
}

// writeDomain appends the signing domain suffix: 0x52 || hv in raw mode
// (empty hash name), or 0x48 || name || 0x00 || hv for pre-hashed input.
// Any non-empty name is accepted; verification binds to the exact bytes.
func writeDomain(h hash.Hash, hashName string, hv []byte) {
	if hashName == "" {
		h.Write([]byte{domainSignRaw})
	} else {
		h.Write([]byte{domainSignHashed})
		h.Write([]byte(hashName))
		h.Write([]byte{0x00})
	}
	h.Write(hv)
}

// deriveK derives the per-signature scalar:
// k = BLAKE2s(sec || Q || len64(seed) || seed || domain) reduced mod r.
// An empty seed gives fully deterministic signatures; a non-empty seed
// randomizes k without giving up the deterministic fallback.
func deriveK(k *Scalar, secEnc, pubEnc *[32]byte, hashName string, hv, seed []byte) {
	h := newHash()
	h.Write(secEnc[:])
	h.Write(pubEnc[:])
	var ln [8]byte
	binary.LittleEndian.PutUint64(ln[:], uint64(len(seed)))
	h.Write(ln[:])
	h.Write(seed)
	writeDomain(h, hashName, hv)
	var out [32]byte
	h.Sum(out[:0])
	k.DecodeReduce(out[:])
	wipe(out[:])
}

// computeChallenge derives the 16-byte signature challenge
// c = BLAKE2s(R || Q || domain)[0:16].
func computeChallenge(c *[16]byte, rEnc, pubEnc *[32]byte, hashName string, hv []byte) {
	h := newHash()
	h.Write(rEnc[:])
	h.Write(pubEnc[:])
	writeDomain(h, hashName, hv)
	var out [32]byte
	h.Sum(out[:0])
	copy(c[:], out[:16])
}

// wipe clears a byte buffer holding secret material.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
