package jq255e

import (
	"bytes"
	"testing"
)

const (
	katSecA     = "01adaca41c192fb8bb2a0aadd0032f0892737f8d6752c53fc021b30222faa31f"
	katPubA     = "1607b083c2c61f5a164698d5a5793a677efd56b6f9d85e1ee888b15244256667"
	katSecB     = "1f97fb69a1713bd941e8be3bd20abba057117cc98240d3202223235620c0be34"
	katPubB     = "7e3acd0bba7f02a38bcf20b83aaeabfdef1bf805286264693027e22899a43c01"
	katECDH     = "8f4f8afcd45ff3aff5b0b3c00dbbb79943a015a45792c610ed1133cb8184bf49"
	katECDHFail = "ef5f091a19cf632505d8a62ca38fb23dd6219b0df012eccdbbb7c92e249fd80c"
)

func TestECDHKAT(t *testing.T) {
	alice := PrivateKeyFromSeed([]byte("alice"))
	bob := PrivateKeyFromSeed([]byte("bob"))

	ab := alice.Bytes()
	if !bytes.Equal(ab[:], hexToBytes(t, katSecA)) {
		t.Fatalf("alice key drifted: %x", ab)
	}
	pa := alice.Public().Bytes()
	if !bytes.Equal(pa[:], hexToBytes(t, katPubA)) {
		t.Fatalf("alice pub drifted: %x", pa)
	}
	bb := bob.Bytes()
	if !bytes.Equal(bb[:], hexToBytes(t, katSecB)) {
		t.Fatalf("bob key drifted: %x", bb)
	}
	pb := bob.Public().Bytes()
	if !bytes.Equal(pb[:], hexToBytes(t, katPubB)) {
		t.Fatalf("bob pub drifted: %x", pb)
	}

	s1, ok := ECDH(alice, bob.Public())
	if !ok {
		t.Fatal("ECDH failed on a valid peer")
	}
	if !bytes.Equal(s1[:], hexToBytes(t, katECDH)) {
		t.Fatalf("shared secret drifted: %x", s1)
	}
}

func TestECDHSymmetry(t *testing.T) {
	for i := 0; i < 10; i++ {
		a, err := KeyPairGenerate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		b, err := KeyPairGenerate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		s1, ok1 := ECDH(a, b.Public())
		s2, ok2 := ECDH(b, a.Public())
		if !ok1 || !ok2 {
			t.Fatal("ECDH failed on valid peers")
		}
		if s1 != s2 {
			t.Fatalf("ECDH not symmetric (iter %d)", i)
		}
	}
}

func TestECDHInvalidPeer(t *testing.T) {
	alice := PrivateKeyFromSeed([]byte("alice"))
	idPub, err := PublicKeyDecode(make([]byte, 32))
	if err != nil {
		t.Fatalf("identity decode: %v", err)
	}

	out, ok := ECDH(alice, idPub)
	if ok {
		t.Fatal("ECDH reported success for the identity peer")
	}
	// The failure output is deterministic in (secret, peer bytes) and
	// unrelated to any legitimate shared secret.
	if !bytes.Equal(out[:], hexToBytes(t, katECDHFail)) {
		t.Fatalf("failure output drifted: %x", out)
	}
	out2, _ := ECDH(alice, idPub)
	if out != out2 {
		t.Fatal("failure output not deterministic")
	}
	if bytes.Equal(out[:], hexToBytes(t, katECDH)) {
		t.Fatal("failure output collides with a legitimate secret")
	}

	bob := PrivateKeyFromSeed([]byte("bob"))
	legit, _ := ECDH(alice, bob.Public())
	if out == legit {
		t.Fatal("failure output equals a valid shared secret")
	}
}
