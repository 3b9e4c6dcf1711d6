package jq255

import (
	"jq255.mleku.dev/jq255e"
)

// Aliases to the default curve (jq255e), in the same spirit as the
// signer package's interface aliases: existing code can hold the root
// types while the concrete curve stays swappable by import path.
type (
	Point      = jq255e.Point
	Scalar     = jq255e.Scalar
	PrivateKey = jq255e.PrivateKey
	PublicKey  = jq255e.PublicKey
)

const (
	PrivateKeySize   = jq255e.PrivateKeySize
	PublicKeySize    = jq255e.PublicKeySize
	KeyPairSize      = jq255e.KeyPairSize
	SignatureSize    = jq255e.SignatureSize
	SharedSecretSize = jq255e.SharedSecretSize
)

// KeyPairGenerate creates a fresh private key from system entropy.
func KeyPairGenerate() (*PrivateKey, error) {
	return jq255e.KeyPairGenerate()
}

// PrivateKeyFromSeed derives a private key from seed bytes (at least 128
// bits of entropy for a secret key).
func PrivateKeyFromSeed(seed []byte) *PrivateKey {
	return jq255e.PrivateKeyFromSeed(seed)
}

// PrivateKeyDecode decodes a 32-byte private key.
func PrivateKeyDecode(src []byte) (*PrivateKey, error) {
	return jq255e.PrivateKeyDecode(src)
}

// PublicKeyDecode decodes a 32-byte public key.
func PublicKeyDecode(src []byte) (*PublicKey, error) {
	return jq255e.PublicKeyDecode(src)
}

// KeyPairDecode decodes a 64-byte keypair (private || public).
func KeyPairDecode(src []byte) (*PrivateKey, error) {
	return jq255e.KeyPairDecode(src)
}

// Sign produces a 48-byte signature over a message value; see
// jq255e.Sign.
func Sign(priv *PrivateKey, hashName string, hv []byte, seed []byte) [SignatureSize]byte {
	return jq255e.Sign(priv, hashName, hv, seed)
}

// Verify checks a 48-byte signature; see jq255e.Verify.
func Verify(pub *PublicKey, hashName string, hv []byte, sig []byte) bool {
	return jq255e.Verify(pub, hashName, hv, sig)
}

// SignMessage hashes msg under the named hash and signs the digest.
func SignMessage(priv *PrivateKey, hashName string, msg []byte, seed []byte) ([SignatureSize]byte, error) {
	return jq255e.SignMessage(priv, hashName, msg, seed)
}

// VerifyMessage is the verification counterpart of SignMessage.
func VerifyMessage(pub *PublicKey, hashName string, msg []byte, sig []byte) (bool, error) {
	return jq255e.VerifyMessage(pub, hashName, msg, sig)
}

// ECDH computes the key-exchange output between priv and peer.
func ECDH(priv *PrivateKey, peer *PublicKey) ([SharedSecretSize]byte, bool) {
	return jq255e.ECDH(priv, peer)
}
