package jq255e

import (
	"math/big"
	"testing"
)

func TestSplitMu(t *testing.T) {
	rb := orderBig()
	mu := scToRef(&muConstant).ToBig()

	// mu^2 == -1 mod r
	chk := new(big.Int).Mul(mu, mu)
	chk.Mod(chk, rb)
	chk.Add(chk, big.NewInt(1))
	chk.Mod(chk, rb)
	if chk.Sign() != 0 {
		t.Fatal("mu is not a square root of -1 mod r")
	}

	bound := new(big.Int).Lsh(big.NewInt(1), 127)
	for i := 0; i < 300; i++ {
		k := randomScalar(t)
		k0lo, k0hi, k1lo, k1hi, s0, s1 := k.splitMu()

		v0 := limbs2Big(k0lo, k0hi)
		v1 := limbs2Big(k1lo, k1hi)
		if v0.Cmp(bound) >= 0 || v1.Cmp(bound) >= 0 {
			t.Fatalf("split magnitude exceeds 2^127 (iter %d)", i)
		}
		if s0 != 0 {
			v0.Neg(v0)
		}
		if s1 != 0 {
			v1.Neg(v1)
		}
		// k0 + k1*mu == k (mod r)
		sum := new(big.Int).Mul(v1, mu)
		sum.Add(sum, v0)
		sum.Sub(sum, scToRef(&k).ToBig())
		sum.Mod(sum, rb)
		if sum.Sign() != 0 {
			t.Fatalf("split does not reconstruct the scalar (iter %d)", i)
		}
	}
}

func limbs2Big(lo, hi uint64) *big.Int {
	v := new(big.Int).SetUint64(hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(lo))
}

func TestEndomorphism(t *testing.T) {
	// zeta(P) must equal mu*P for random points.
	for i := 0; i < 20; i++ {
		k := randomScalar(t)
		var P Point
		P.MulGen(&k)

		zeta := P
		zeta.applyEndo(&etaConstant)

		var muP Point
		muP.Mul(&muConstant, &P)
		if zeta.Equal(&muP) == 0 {
			t.Fatalf("zeta(P) != mu*P (iter %d)", i)
		}
	}
}
