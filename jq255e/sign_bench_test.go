package jq255e

import "testing"

func benchKey(b *testing.B) *PrivateKey {
	b.Helper()
	priv, err := PrivateKeyDecode(mustHex(benchSec))
	if err != nil {
		b.Fatalf("bench key: %v", err)
	}
	return priv
}

const benchSec = "6e32a2a3462323174525bb457916893471cca3b96afbfbaac104bba4f9b97600"

func mustHex(s string) []byte {
	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		out[i] = unhexNibble(s[2*i])<<4 | unhexNibble(s[2*i+1])
	}
	return out
}

func unhexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func BenchmarkSign(b *testing.B) {
	priv := benchKey(b)
	msg := []byte("benchmark message")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Sign(priv, "", msg, nil)
	}
}

func BenchmarkVerify(b *testing.B) {
	priv := benchKey(b)
	pub := priv.Public()
	msg := []byte("benchmark message")
	sig := Sign(priv, "", msg, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Verify(pub, "", msg, sig[:]) {
			b.Fatal("verification failed")
		}
	}
}

func BenchmarkECDH(b *testing.B) {
	priv := benchKey(b)
	peer := PrivateKeyFromSeed([]byte("peer")).Public()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := ECDH(priv, peer); !ok {
			b.Fatal("ECDH failed")
		}
	}
}

func BenchmarkMulGen(b *testing.B) {
	priv := benchKey(b)
	k := new(Scalar)
	kb := priv.Bytes()
	k.Decode(kb[:])
	var p Point
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.MulGen(k)
	}
}

func BenchmarkMul(b *testing.B) {
	priv := benchKey(b)
	k := new(Scalar)
	kb := priv.Bytes()
	k.Decode(kb[:])
	g := NewGeneratorPoint()
	var p Point
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Mul(k, g)
	}
}
