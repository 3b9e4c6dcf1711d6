package jq255e

import "math/bits"

// mul computes r = a * b. Output may alias either input.
func (r *fieldElement) mul(a, b *fieldElement) {
	var z [8]uint64

	// Schoolbook 256x256 -> 512 product.
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a.n[i], b.n[j])
			lo, c1 := bits.Add64(lo, z[i+j], 0)
			lo, c2 := bits.Add64(lo, carry, 0)
			z[i+j] = lo
			carry = hi + c1 + c2
		}
		z[i+4] = carry
	}

	r.reduceWide(&z)
}

// sqr computes r = a^2. Squaring has a dedicated entry point so callers
// express intent; the cross-product savings are left to the compiler.
func (r *fieldElement) sqr(a *fieldElement) {
	r.mul(a, a)
}

// xsqr computes r = a^(2^n) by repeated squaring.
func (r *fieldElement) xsqr(a *fieldElement, n uint) {
	r.sqr(a)
	for i := uint(1); i < n; i++ {
		r.sqr(r)
	}
}

// reduceWide folds a 512-bit product into a partially reduced element:
// z = zl + 2^256*zh == zl + field2C*zh (mod q).
func (r *fieldElement) reduceWide(z *[8]uint64) {
	// t = field2C * zh (five limbs; the top limb is tiny).
	var t [5]uint64
	var carry uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(z[4+i], field2C)
		lo, c1 := bits.Add64(lo, carry, 0)
		t[i] = lo
		carry = hi + c1
	}
	t[4] = carry

	d0, cc := bits.Add64(z[0], t[0], 0)
	d1, cc := bits.Add64(z[1], t[1], cc)
	d2, cc := bits.Add64(z[2], t[2], cc)
	d3, cc := bits.Add64(z[3], t[3], cc)
	top := t[4] + cc

	// Fold top*2^256 = top*field2C, then a final possible carry.
	d0, cc = bits.Add64(d0, top*field2C, 0)
	d1, cc = bits.Add64(d1, 0, cc)
	d2, cc = bits.Add64(d2, 0, cc)
	d3, cc = bits.Add64(d3, 0, cc)
	d0, cc = bits.Add64(d0, cc*field2C, 0)
	d1, cc = bits.Add64(d1, 0, cc)
	d2, cc = bits.Add64(d2, 0, cc)
	d3, _ = bits.Add64(d3, 0, cc)

	r.n[0], r.n[1], r.n[2], r.n[3] = d0, d1, d2, d3
}

// powSmall computes r = a^e for a small public exponent e (e > 0).
func (r *fieldElement) powSmall(a *fieldElement, e uint32) {
	x := *a
	nb := 31 - uint(bits.LeadingZeros32(e))
	t := x
	for i := int(nb) - 1; i >= 0; i-- {
		t.sqr(&t)
		if (e>>uint(i))&1 != 0 {
			t.mul(&t, &x)
		}
	}
	*r = t
}

// pow240 computes r = a^(2^240 - 1), the shared ladder for inversion and
// square roots.
func (r *fieldElement) pow240(a *fieldElement) {
	var x2, x4, x5, x10, x20, x40, x80, x120, t fieldElement
	t.sqr(a)
	x2.mul(&t, a)
	t.xsqr(&x2, 2)
	x4.mul(&t, &x2)
	t.sqr(&x4)
	x5.mul(&t, a)
	t.xsqr(&x5, 5)
	x10.mul(&t, &x5)
	t.xsqr(&x10, 10)
	x20.mul(&t, &x10)
	t.xsqr(&x20, 20)
	x40.mul(&t, &x20)
	t.xsqr(&x40, 40)
	x80.mul(&t, &x40)
	t.xsqr(&x80, 40)
	x120.mul(&t, &x40)
	t.xsqr(&x120, 120)
	r.mul(&t, &x120)
}

// inv computes r = 1/a (and 0 for a = 0), as a^(q-2).
// q - 2 = (2^240 - 1)*2^15 + 14115.
func (r *fieldElement) inv(a *fieldElement) {
	var w, tail fieldElement
	w.pow240(a)
	w.xsqr(&w, 15)
	tail.powSmall(a, 14115)
	r.mul(&w, &tail)
}

// sqrt computes the square root of a into r, using Atkin's formulas for
// q = 5 mod 8. On success the non-negative root is produced and all-ones
// is returned; if a is not a square, r is set to zero and 0 is returned.
func (r *fieldElement) sqrt(a *fieldElement) uint64 {
	// b = (2a)^((q-5)/8), with (q-5)/8 = (2^240 - 1)*2^12 + 1764.
	var y, b, tail fieldElement
	y.mul2(a)
	b.pow240(&y)
	b.xsqr(&b, 12)
	tail.powSmall(&y, 1764)
	b.mul(&b, &tail)

	// c = 2a*b^2; x = a*b*(c - 1).
	var c, x fieldElement
	c.sqr(&b)
	c.mul(&c, &y)
	x.sub(&c, &feOne)
	x.mul(&x, &b)
	x.mul(&x, a)

	// Pick the non-negative root.
	x.condNegate(x.isNegativeMask())

	// Verify; on mismatch output zero.
	var chk fieldElement
	chk.sqr(&x)
	ok := chk.equals(a)
	x.cmov(&feZero, ^ok)
	*r = x
	return ok
}
