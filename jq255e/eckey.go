package jq255e

import (
	"crypto/rand"
	"errors"
)

const (
	// PrivateKeySize is the byte length of an encoded private key.
	PrivateKeySize = 32
	// PublicKeySize is the byte length of an encoded public key.
	PublicKeySize = 32
	// KeyPairSize is the byte length of an encoded keypair
	// (private key followed by public key).
	KeyPairSize = 64
	// SignatureSize is the byte length of a signature.
	SignatureSize = 48
	// SharedSecretSize is the byte length of an ECDH output.
	SharedSecretSize = 32
)

// PublicKey is a jq255e public key: a group element together with its
// 32-byte encoding. The encoding kept alongside makes re-encoding free
// and is the authoritative byte string for key ordering. An invalid or
// identity public key carries a cleared validity flag; sign, verify and
// ECDH all fail on it without leaking through timing.
type PublicKey struct {
	p   Point
	enc [32]byte
	ok  uint64
}

// PrivateKey is a jq255e private key: a non-zero scalar, with the
// matching public key cached.
type PrivateKey struct {
	s   Scalar
	pub PublicKey
}

// PrivateKeyFromSeed derives a private key from seed bytes: the seed is
// hashed, interpreted as a scalar with reduction, and a zero result is
// replaced by one. The caller must provide at least 128 bits of entropy
// for a secret key.
func PrivateKeyFromSeed(seed []byte) *PrivateKey {
	h := newHash()
	h.Write(seed)
	var out [32]byte
	h.Sum(out[:0])
	k := &PrivateKey{}
	k.s.DecodeReduce(out[:])
	wipe(out[:])
	z := k.s.IsZeroMask()
	k.s.Select(&k.s, &scOne, z)
	k.initPublic()
	return k
}

// KeyPairGenerate creates a fresh private key from system entropy.
func KeyPairGenerate() (*PrivateKey, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	k := PrivateKeyFromSeed(seed[:])
	wipe(seed[:])
	return k, nil
}

// PrivateKeyDecode decodes a 32-byte private key. The zero scalar is the
// invalid-key sentinel and is rejected, as are non-canonical encodings.
func PrivateKeyDecode(src []byte) (*PrivateKey, error) {
	if len(src) != PrivateKeySize {
		return nil, errors.New("private key must be 32 bytes")
	}
	k := &PrivateKey{}
	m := k.s.Decode(src)
	if m == 0 || k.s.IsZeroMask() != 0 {
		return nil, errors.New("invalid private key")
	}
	k.initPublic()
	return k, nil
}

func (k *PrivateKey) initPublic() {
	k.pub.p.MulGen(&k.s)
	k.pub.p.Encode(k.pub.enc[:])
	k.pub.ok = ^uint64(0)
}

// Bytes returns the 32-byte encoding of the private key.
func (k *PrivateKey) Bytes() [32]byte {
	return k.s.Bytes()
}

// Public returns the public key matching k.
func (k *PrivateKey) Public() *PublicKey {
	pub := k.pub
	return &pub
}

// EncodeKeyPair returns the 64-byte keypair encoding: private || public.
func (k *PrivateKey) EncodeKeyPair() [KeyPairSize]byte {
	var out [KeyPairSize]byte
	sb := k.s.Bytes()
	copy(out[:32], sb[:])
	copy(out[32:], k.pub.enc[:])
	wipe(sb[:])
	return out
}

// Clear wipes the private scalar.
func (k *PrivateKey) Clear() {
	k.s.clear()
}

// KeyPairDecode decodes a 64-byte keypair and checks that the public
// half matches the private half.
func KeyPairDecode(src []byte) (*PrivateKey, error) {
	if len(src) != KeyPairSize {
		return nil, errors.New("keypair must be 64 bytes")
	}
	k, err := PrivateKeyDecode(src[:32])
	if err != nil {
		return nil, err
	}
	var declared [32]byte
	copy(declared[:], src[32:])
	if declared != k.pub.enc {
		return nil, errors.New("keypair public key mismatch")
	}
	return k, nil
}

// PublicKeyDecode decodes a 32-byte public key. Encodings that are not
// canonical field elements, or whose u coordinate is not on the curve,
// are rejected. The all-zero encoding (the identity) decodes without
// error but yields a key flagged invalid: sign/verify/ECDH against it
// report failure.
func PublicKeyDecode(src []byte) (*PublicKey, error) {
	if len(src) != PublicKeySize {
		return nil, errors.New("public key must be 32 bytes")
	}
	pub := &PublicKey{}
	ok := pub.p.Decode(src)
	copy(pub.enc[:], src)
	if ok == 0 {
		return nil, errors.New("invalid public key")
	}
	pub.ok = ^(pub.p.isIdentityMask()) // identity: flagged, not an error
	return pub, nil
}

// Bytes returns the 32-byte encoding of the public key.
func (q *PublicKey) Bytes() [32]byte {
	return q.enc
}

// IsValid returns false for the invalid-key sentinel (identity).
func (q *PublicKey) IsValid() bool {
	return q.ok != 0
}

// Equal reports whether two public keys have the same encoding.
func (q *PublicKey) Equal(other *PublicKey) bool {
	return q.enc == other.enc
}

// Point returns a copy of the group element of q.
func (q *PublicKey) Point() *Point {
	p := q.p
	return &p
}
