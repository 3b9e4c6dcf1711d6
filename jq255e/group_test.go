package jq255e

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func hexToBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	return b
}

func randomPoint(t *testing.T) Point {
	t.Helper()
	k := randomScalar(t)
	var P Point
	P.MulGen(&k)
	return P
}

func TestGeneratorEncoding(t *testing.T) {
	g := NewGeneratorPoint()
	enc := g.Bytes()
	want := make([]byte, 32)
	want[0] = 0x01
	if !bytes.Equal(enc[:], want) {
		t.Fatalf("generator encodes to %x", enc)
	}
}

func TestIdentityDecode(t *testing.T) {
	// The all-zero encoding is the identity: decoding succeeds, the
	// point reports as identity, and it re-encodes to all zeros.
	var p Point
	if p.Decode(make([]byte, 32)) != 1 {
		t.Fatal("identity encoding rejected")
	}
	if p.IsIdentity() != 1 {
		t.Fatal("decoded point is not the identity")
	}
	enc := p.Bytes()
	if enc != [32]byte{} {
		t.Fatalf("identity re-encodes to %x", enc)
	}
}

func TestDecodeRejects(t *testing.T) {
	// u = 3 is not on the curve (8*81+1 = 649 is a non-residue).
	var buf [32]byte
	buf[0] = 3
	var p Point
	if p.Decode(buf[:]) != 0 {
		t.Fatal("u=3 accepted")
	}
	if p.IsIdentity() != 1 {
		t.Fatal("failed decode must yield the identity")
	}

	// Non-canonical field element (value >= q).
	for i := range buf {
		buf[i] = 0xFF
	}
	buf[31] = 0x7F
	if p.Decode(buf[:]) != 0 {
		t.Fatal("non-canonical u accepted")
	}

	if p.Decode(buf[:31]) != 0 {
		t.Fatal("short encoding accepted")
	}
}

func TestPointRoundTrip(t *testing.T) {
	for i := 0; i < 30; i++ {
		P := randomPoint(t)
		enc := P.Bytes()
		var Q Point
		if Q.Decode(enc[:]) != 1 {
			t.Fatalf("valid encoding rejected (iter %d)", i)
		}
		if Q.Equal(&P) == 0 {
			t.Fatalf("round trip changed the element (iter %d)", i)
		}
		enc2 := Q.Bytes()
		if enc != enc2 {
			t.Fatalf("re-encoding changed bytes (iter %d)", i)
		}
	}
}

func TestGroupLaw(t *testing.T) {
	id := NewIdentityPoint()
	for i := 0; i < 20; i++ {
		P := randomPoint(t)
		Q := randomPoint(t)
		R := randomPoint(t)

		// Commutativity
		var pq, qp Point
		pq.Add(&P, &Q)
		qp.Add(&Q, &P)
		if pq.Equal(&qp) == 0 {
			t.Fatal("addition is not commutative")
		}

		// Associativity
		var l, rr Point
		l.Add(&pq, &R)
		var qr Point
		qr.Add(&Q, &R)
		rr.Add(&P, &qr)
		if l.Equal(&rr) == 0 {
			t.Fatal("addition is not associative")
		}

		// Identity and inverse
		var s Point
		s.Add(&P, id)
		if s.Equal(&P) == 0 {
			t.Fatal("P + 0 != P")
		}
		var nP Point
		nP.Neg(&P)
		s.Add(&P, &nP)
		if s.IsIdentity() != 1 {
			t.Fatal("P + (-P) != 0")
		}

		// Doubling agrees with addition
		var d, aa Point
		d.Double(&P)
		aa.Add(&P, &P)
		if d.Equal(&aa) == 0 {
			t.Fatal("double(P) != P+P")
		}
	}
}

func TestXDoubleChain(t *testing.T) {
	for _, n := range []uint{1, 2, 3, 5, 8} {
		P := randomPoint(t)
		var chain Point
		chain.xdouble(&P, n)
		ref := P
		for i := uint(0); i < n; i++ {
			ref.Double(&ref)
		}
		if chain.Equal(&ref) == 0 {
			t.Fatalf("xdouble(%d) mismatch", n)
		}
	}
	// Doubling the identity stays at the identity.
	var d Point
	d.xdouble(NewIdentityPoint(), 5)
	if d.IsIdentity() != 1 {
		t.Fatal("2^5 * 0 != 0")
	}
}

func TestWindowLookup(t *testing.T) {
	P := randomPoint(t)
	var win [16]Point
	buildWindow(&win, &P)

	// win[i] must hold (i+1)*P
	var acc Point
	acc = P
	for i := 0; i < 16; i++ {
		if win[i].Equal(&acc) == 0 {
			t.Fatalf("window entry %d is not %d*P", i, i+1)
		}
		acc.Add(&acc, &P)
	}

	var l Point
	l.lookupWindow(&win, 0)
	if l.IsIdentity() != 1 {
		t.Fatal("lookup(0) != identity")
	}
	for _, d := range []int8{1, 7, 16, -1, -5, -15} {
		l.lookupWindow(&win, d)
		mag := d
		if mag < 0 {
			mag = -mag
		}
		want := win[mag-1]
		if d < 0 {
			want.Neg(&want)
		}
		if l.Equal(&want) == 0 {
			t.Fatalf("lookup(%d) mismatch", d)
		}
	}
}
