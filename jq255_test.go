package jq255

import "testing"

func TestDefaultCurveRoundTrip(t *testing.T) {
	priv := PrivateKeyFromSeed([]byte("root package smoke test"))
	pub := priv.Public()

	msg := []byte("hello through the default curve")
	sig := Sign(priv, "", msg, nil)
	if !Verify(pub, "", msg, sig[:]) {
		t.Fatal("signature rejected")
	}

	sig2, err := SignMessage(priv, "sha256", msg, nil)
	if err != nil {
		t.Fatalf("SignMessage: %v", err)
	}
	ok, err := VerifyMessage(pub, "sha256", msg, sig2[:])
	if err != nil || !ok {
		t.Fatalf("VerifyMessage: ok=%v err=%v", ok, err)
	}

	peer := PrivateKeyFromSeed([]byte("peer"))
	s1, ok1 := ECDH(priv, peer.Public())
	s2, ok2 := ECDH(peer, pub)
	if !ok1 || !ok2 || s1 != s2 {
		t.Fatal("ECDH mismatch through root aliases")
	}

	enc := pub.Bytes()
	back, err := PublicKeyDecode(enc[:])
	if err != nil {
		t.Fatalf("PublicKeyDecode: %v", err)
	}
	if !back.Equal(pub) {
		t.Fatal("public key round trip mismatch")
	}
}
