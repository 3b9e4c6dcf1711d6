package jq255e

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

func orderRef() *uint256.Int {
	r := new(uint256.Int).Lsh(uint256.NewInt(1), 254)
	r0 := &uint256.Int{rr0lo, rr0hi, 0, 0}
	return r.Sub(r, r0)
}

func orderBig() *big.Int {
	return orderRef().ToBig()
}

func scToRef(s *Scalar) *uint256.Int {
	b := s.Bytes()
	var be [32]byte
	for i := 0; i < 32; i++ {
		be[i] = b[31-i]
	}
	return new(uint256.Int).SetBytes(be[:])
}

func randomScalar(t *testing.T) Scalar {
	t.Helper()
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		t.Fatalf("rand: %v", err)
	}
	var s Scalar
	s.DecodeReduce(b[:])
	return s
}

func TestScalarDecodeCanonical(t *testing.T) {
	r := orderRef()
	cases := []struct {
		v  *uint256.Int
		ok bool
	}{
		{new(uint256.Int), true},
		{uint256.NewInt(1), true},
		{new(uint256.Int).SubUint64(r, 1), true},
		{r.Clone(), false},
		{new(uint256.Int).AddUint64(r, 1), false},
		{new(uint256.Int).Not(new(uint256.Int)), false},
	}
	for i, tc := range cases {
		be := tc.v.Bytes32()
		var le [32]byte
		for j := 0; j < 32; j++ {
			le[j] = be[31-j]
		}
		var s Scalar
		m := s.Decode(le[:])
		if (m != 0) != tc.ok {
			t.Fatalf("case %d: mask %x want ok=%v", i, m, tc.ok)
		}
		if tc.ok {
			got := s.Bytes()
			if got != le {
				t.Fatalf("case %d: decode changed canonical value", i)
			}
		} else if s.IsZeroMask() == 0 {
			t.Fatalf("case %d: failed decode must zero the scalar", i)
		}
	}
	var s Scalar
	if s.Decode(make([]byte, 31)) != 0 {
		t.Fatal("short input accepted")
	}
}

func TestScalarDecodeReduce(t *testing.T) {
	rb := orderBig()
	for _, n := range []int{0, 1, 5, 16, 17, 31, 32, 33, 48, 64, 100} {
		buf := make([]byte, n)
		if _, err := rand.Read(buf); err != nil {
			t.Fatalf("rand: %v", err)
		}
		var s Scalar
		s.DecodeReduce(buf)

		// Little-endian reference value
		rev := make([]byte, n)
		for i := 0; i < n; i++ {
			rev[i] = buf[n-1-i]
		}
		want := new(big.Int).SetBytes(rev)
		want.Mod(want, rb)
		if scToRef(&s).ToBig().Cmp(want) != 0 {
			t.Fatalf("decodeReduce mismatch at length %d", n)
		}
	}
}

func TestScalarRefArithmetic(t *testing.T) {
	r := orderRef()
	for i := 0; i < 300; i++ {
		a := randomScalar(t)
		b := randomScalar(t)
		ra := scToRef(&a)
		rb := scToRef(&b)

		var sum Scalar
		sum.Add(&a, &b)
		want := new(uint256.Int).AddMod(ra, rb, r)
		if scToRef(&sum).Cmp(want) != 0 {
			t.Fatalf("add mismatch (iter %d)", i)
		}

		var prod Scalar
		prod.Mul(&a, &b)
		want = new(uint256.Int).MulMod(ra, rb, r)
		if scToRef(&prod).Cmp(want) != 0 {
			t.Fatalf("mul mismatch (iter %d)", i)
		}
	}
}

func TestScalarRecode5(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := randomScalar(t)
		var digits [51]int8
		s.recode5(&digits)

		acc := new(big.Int)
		w := new(big.Int)
		for j := 50; j >= 0; j-- {
			d := digits[j]
			if d < -15 || d > 16 {
				t.Fatalf("digit %d out of range: %d", j, d)
			}
			acc.Lsh(acc, 5)
			acc.Add(acc, w.SetInt64(int64(d)))
		}
		if digits[50] < 0 {
			t.Fatal("top digit negative")
		}
		if acc.Cmp(scToRef(&s).ToBig()) != 0 {
			t.Fatalf("recode5 reconstruction mismatch (iter %d)", i)
		}
	}
}

func TestScalarWNAF(t *testing.T) {
	for i := 0; i < 200; i++ {
		var b [16]byte
		if _, err := rand.Read(b[:]); err != nil {
			t.Fatalf("rand: %v", err)
		}
		x0 := dec64le(b[0:8])
		x1 := dec64le(b[8:16])
		var digits [131]int8
		recodeWNAF([]uint64{x0, x1}, digits[:])

		acc := new(big.Int)
		w := new(big.Int)
		last := -100
		for j := 130; j >= 0; j-- {
			d := digits[j]
			acc.Lsh(acc, 1)
			acc.Add(acc, w.SetInt64(int64(d)))
			if d != 0 {
				if d&1 == 0 || d < -15 || d > 15 {
					t.Fatalf("bad wNAF digit %d at %d", d, j)
				}
			}
		}
		for j := 0; j <= 130; j++ {
			if digits[j] != 0 {
				if last >= 0 && j-last < 5 {
					t.Fatalf("non-zero digits %d and %d too close", last, j)
				}
				last = j
			}
		}
		want := new(big.Int).SetUint64(x1)
		want.Lsh(want, 64)
		want.Add(want, new(big.Int).SetUint64(x0))
		if acc.Cmp(want) != 0 {
			t.Fatalf("wNAF reconstruction mismatch (iter %d)", i)
		}
	}
}
