package jq255s

import (
	"crypto/subtle"

	"jq255.mleku.dev/hashes"
)

// Sign produces a 48-byte signature (16-byte challenge || 32-byte scalar)
// over a message value. In raw mode (empty hashName) hv is the message
// itself; otherwise hv is the digest of the message under the named hash
// and the name is bound into the signature. An empty seed yields
// deterministic signatures; extra seed bytes randomize the per-signature
// scalar without weakening the deterministic derivation.
func Sign(priv *PrivateKey, hashName string, hv []byte, seed []byte) [SignatureSize]byte {
	secEnc := priv.s.Bytes()
	var k Scalar
	deriveK(&k, &secEnc, &priv.pub.enc, hashName, hv, seed)

	var R Point
	R.MulGen(&k)
	rEnc := R.Bytes()

	var c [16]byte
	computeChallenge(&c, &rEnc, &priv.pub.enc, hashName, hv)

	// s = k + c*sec mod r
	var cs, s Scalar
	cs.d[0] = dec64le(c[0:8])
	cs.d[1] = dec64le(c[8:16])
	cs.Mul(&cs, &priv.s)
	s.Add(&k, &cs)

	var sig [SignatureSize]byte
	copy(sig[:16], c[:])
	s.Encode(sig[16:])

	k.clear()
	cs.clear()
	s.clear()
	wipe(secEnc[:])
	return sig
}

// Verify checks a 48-byte signature against a public key and message
// value. Verification is variable-time: all inputs are public.
func Verify(pub *PublicKey, hashName string, hv []byte, sig []byte) bool {
	if len(sig) != SignatureSize || pub == nil || !pub.IsValid() {
		return false
	}
	var s Scalar
	if s.Decode(sig[16:]) == 0 {
		return false
	}
	c0 := dec64le(sig[0:8])
	c1 := dec64le(sig[8:16])

	// R' = s*G - c*Q
	var R Point
	R.combinedMulVarTime(&pub.p, c0, c1, true, &s)
	rEnc := R.Bytes()

	var c [16]byte
	computeChallenge(&c, &rEnc, &pub.enc, hashName, hv)
	return subtle.ConstantTimeCompare(c[:], sig[:16]) == 1
}

// SignMessage hashes an arbitrary message with the named hash from the
// registry (or signs it raw when hashName is empty) and signs the result.
func SignMessage(priv *PrivateKey, hashName string, msg []byte, seed []byte) ([SignatureSize]byte, error) {
	if hashName == "" {
		return Sign(priv, "", msg, seed), nil
	}
	hv, err := hashes.Sum(hashName, msg)
	if err != nil {
		return [SignatureSize]byte{}, err
	}
	return Sign(priv, hashName, hv, seed), nil
}

// VerifyMessage is the verification counterpart of SignMessage.
func VerifyMessage(pub *PublicKey, hashName string, msg []byte, sig []byte) (bool, error) {
	if hashName == "" {
		return Verify(pub, "", msg, sig), nil
	}
	hv, err := hashes.Sum(hashName, msg)
	if err != nil {
		return false, err
	}
	return Verify(pub, hashName, hv, sig), nil
}
