package jq255e

import (
	"bytes"
	"testing"
)

// Known-answer values generated from an independent implementation.
const (
	katSec0      = "6e32a2a3462323174525bb457916893471cca3b96afbfbaac104bba4f9b97600"
	katPub0      = "c975c0b3185a7da3f2472e91a209f93a8bd7c39b2e19c94287b0ef53a8a7a214"
	katSigRaw    = "ce7ccbcef5b5796f36996658e842e789797685e077ff4d07b71a36a05f54f69af1d1d327ef186c3937cb8fce07190c0e"
	katSigSha256 = "a003446c6dcf49a3bf7008d56373865fc022c61f225ca8d339ce879a452f7d41a0646e6da3548009bab55b6639d9f616"
	katSigSeeded = "e5b6419d8a168943cdaa7747f3e11caf662d5ff5e22150863b714cdfdaaf68f1e4156c8c1fe5db09cf5f5f5766cfa419"
)

func katKey0(t *testing.T) *PrivateKey {
	t.Helper()
	priv, err := PrivateKeyDecode(hexToBytes(t, katSec0))
	if err != nil {
		t.Fatalf("decode private key: %v", err)
	}
	pb := priv.Public().Bytes()
	if !bytes.Equal(pb[:], hexToBytes(t, katPub0)) {
		t.Fatalf("derived public key %x", pb)
	}
	return priv
}

func TestPrivateKeyFromSeed(t *testing.T) {
	// Derivation is deterministic in the seed.
	a := PrivateKeyFromSeed([]byte("test-seed-0"))
	b := PrivateKeyFromSeed([]byte("test-seed-0"))
	if a.Bytes() != b.Bytes() {
		t.Fatal("seeded derivation not deterministic")
	}
	ab := a.Bytes()
	if !bytes.Equal(ab[:], hexToBytes(t, katSec0)) {
		t.Fatalf("seed derivation drifted: %x", ab)
	}
	c := PrivateKeyFromSeed([]byte("test-seed-1"))
	if a.Bytes() == c.Bytes() {
		t.Fatal("different seeds gave the same key")
	}
}

func TestSignKAT(t *testing.T) {
	priv := katKey0(t)

	sig := Sign(priv, "", []byte("hello"), nil)
	if !bytes.Equal(sig[:], hexToBytes(t, katSigRaw)) {
		t.Fatalf("raw signature drifted: %x", sig)
	}

	sig2, err := SignMessage(priv, "sha256", []byte("hello world"), nil)
	if err != nil {
		t.Fatalf("SignMessage: %v", err)
	}
	if !bytes.Equal(sig2[:], hexToBytes(t, katSigSha256)) {
		t.Fatalf("sha256 signature drifted: %x", sig2)
	}

	sig3 := Sign(priv, "", []byte("hello"), []byte("randomness"))
	if !bytes.Equal(sig3[:], hexToBytes(t, katSigSeeded)) {
		t.Fatalf("seeded signature drifted: %x", sig3)
	}
	if bytes.Equal(sig3[:], sig[:]) {
		t.Fatal("seed did not change the signature")
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	priv := katKey0(t)
	pub := priv.Public()
	msg := []byte("hello")

	sig := Sign(priv, "", msg, nil)
	if !Verify(pub, "", msg, sig[:]) {
		t.Fatal("valid signature rejected")
	}

	// Any flipped bit in the signature must break it.
	for _, pos := range []int{0, 7, 15, 16, 30, 47} {
		bad := sig
		bad[pos] ^= 0x40
		if Verify(pub, "", msg, bad[:]) {
			t.Fatalf("signature with bit flipped at byte %d accepted", pos)
		}
	}

	// Wrong message, wrong key, wrong hash label.
	if Verify(pub, "", []byte("hellp"), sig[:]) {
		t.Fatal("signature over different message accepted")
	}
	other := PrivateKeyFromSeed([]byte("other"))
	if Verify(other.Public(), "", msg, sig[:]) {
		t.Fatal("signature accepted under a different key")
	}
	if Verify(pub, "sha256", msg, sig[:]) {
		t.Fatal("raw-mode signature accepted under a hash label")
	}

	// Truncated input and bad scalar encoding.
	if Verify(pub, "", msg, sig[:47]) {
		t.Fatal("short signature accepted")
	}
	bad := sig
	for i := 16; i < 48; i++ {
		bad[i] = 0xFF
	}
	if Verify(pub, "", msg, bad[:]) {
		t.Fatal("non-canonical s accepted")
	}
}

func TestSignDeterministic(t *testing.T) {
	priv := katKey0(t)
	a := Sign(priv, "", []byte("msg"), nil)
	b := Sign(priv, "", []byte("msg"), nil)
	if a != b {
		t.Fatal("deterministic mode produced different signatures")
	}
	c := Sign(priv, "", []byte("msg"), []byte{1})
	if a == c {
		t.Fatal("seeded signature equals deterministic one")
	}
	if !Verify(priv.Public(), "", []byte("msg"), c[:]) {
		t.Fatal("seeded signature does not verify")
	}
}

func TestVerifyMessageBinding(t *testing.T) {
	priv := katKey0(t)
	msg := []byte("a message to be hashed")
	sig, err := SignMessage(priv, "blake2s", msg, nil)
	if err != nil {
		t.Fatalf("SignMessage: %v", err)
	}
	ok, err := VerifyMessage(priv.Public(), "blake2s", msg, sig[:])
	if err != nil || !ok {
		t.Fatalf("valid pre-hashed signature rejected (%v)", err)
	}
	ok, err = VerifyMessage(priv.Public(), "sha3256", msg, sig[:])
	if err != nil || ok {
		t.Fatal("signature accepted under a different hash name")
	}
	if _, err = SignMessage(priv, "no-such-hash", msg, nil); err == nil {
		t.Fatal("unknown hash name accepted")
	}
}

func TestVerifyInvalidKey(t *testing.T) {
	priv := katKey0(t)
	sig := Sign(priv, "", []byte("x"), nil)

	// The identity public key is flagged invalid and verifies nothing.
	idPub, err := PublicKeyDecode(make([]byte, 32))
	if err != nil {
		t.Fatalf("identity decode: %v", err)
	}
	if idPub.IsValid() {
		t.Fatal("identity key reports valid")
	}
	if Verify(idPub, "", []byte("x"), sig[:]) {
		t.Fatal("identity key verified a signature")
	}
}

func TestKeyPairEncoding(t *testing.T) {
	priv := katKey0(t)
	kp := priv.EncodeKeyPair()
	back, err := KeyPairDecode(kp[:])
	if err != nil {
		t.Fatalf("keypair decode: %v", err)
	}
	if back.Bytes() != priv.Bytes() {
		t.Fatal("keypair round trip lost the private key")
	}

	// Mismatched public half must be rejected.
	bad := kp
	bad[40] ^= 1
	if _, err := KeyPairDecode(bad[:]); err == nil {
		t.Fatal("keypair with wrong public half accepted")
	}

	// Zero private key is the invalid sentinel.
	if _, err := PrivateKeyDecode(make([]byte, 32)); err == nil {
		t.Fatal("zero private key accepted")
	}
}

func TestKeyPairGenerate(t *testing.T) {
	a, err := KeyPairGenerate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := KeyPairGenerate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a.Bytes() == b.Bytes() {
		t.Fatal("two generated keys are equal")
	}
	msg := []byte("fresh key test")
	sig := Sign(a, "", msg, nil)
	if !Verify(a.Public(), "", msg, sig[:]) {
		t.Fatal("signature under fresh key rejected")
	}
}
