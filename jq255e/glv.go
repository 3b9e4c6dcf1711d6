package jq255e

import "math/bits"

// Endomorphism constants. zeta(E:Z:U:T) = (E:Z:eta*U:-T) computes mu*P,
// where eta^2 = -1 in the field and mu^2 = -1 modulo the group order.

// eta = sqrt(-1) mod q, paired with mu below.
var etaConstant = fieldElement{[4]uint64{
	0xD99E0F1BAA938AEE, 0xA60D864FB30E6336,
	0xE414983FE53688E3, 0x10ED2DB33C69B85F,
}}

// mu = sqrt(-1) mod r (used by tests; the multiplier only needs eta).
var muConstant = Scalar{d: [4]uint64{
	0x9C46EF0C23DF370D, 0xB153382D88E2CF39,
	0x37382C8933C3F6D9, 0x3304A73398CAEADB,
}}

// Short lattice vector (U, V) with U == mu*V (mod r); both halves of the
// split stay below 2^127 in absolute value.
const (
	glvU0 = 0x2ACCF9DEC93F6111
	glvU1 = 0x1A509F7A53C2C6E6
	glvV0 = 0x0B7A31305466F77E
	glvV1 = 0x7D440C6AFFBB3A93

	// r >> 1, for the rounding offset
	halfR0 = 0x8FA964573A6C2292
	halfR1 = 0xCE864987AA03C629
	halfR2 = 0xFFFFFFFFFFFFFFFF
	halfR3 = 0x1FFFFFFFFFFFFFFF
)

// mul256x128 computes the 384-bit product a(4 limbs) * m(2 limbs).
func mul256x128(z *[6]uint64, a *[4]uint64, m0, m1 uint64) {
	var carry uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(a[i], m0)
		lo, c1 := bits.Add64(lo, z[i], 0)
		lo, c2 := bits.Add64(lo, carry, 0)
		z[i] = lo
		carry = hi + c1 + c2
	}
	z[4] = carry
	carry = 0
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(a[i], m1)
		lo, c1 := bits.Add64(lo, z[i+1], 0)
		lo, c2 := bits.Add64(lo, carry, 0)
		z[i+1] = lo
		carry = hi + c1 + c2
	}
	z[5] = carry
}

// divRoundR computes round(y / r) for y < 2^382, given over six limbs.
// Exact and constant-time: the quotient is recovered by peeling the
// 2^254 component twice (r = 2^254 - rr0) and a final compare against r.
func divRoundR(y *[6]uint64) (q0, q1 uint64) {
	// y += r/2 for rounding
	var cc uint64
	y[0], cc = bits.Add64(y[0], halfR0, 0)
	y[1], cc = bits.Add64(y[1], halfR1, cc)
	y[2], cc = bits.Add64(y[2], halfR2, cc)
	y[3], cc = bits.Add64(y[3], halfR3, cc)
	y[4], cc = bits.Add64(y[4], 0, cc)
	y[5], _ = bits.Add64(y[5], 0, cc)

	// y = y1*2^254 + y0; floor(y/r) = y1 + floor((y0 + y1*rr0)/r)
	y1a := (y[3] >> 62) | (y[4] << 2)
	y1b := (y[4] >> 62) | (y[5] << 2)
	z0 := y[0]
	z1 := y[1]
	z2 := y[2]
	z3 := y[3] & 0x3FFFFFFFFFFFFFFF

	// z += y1 * rr0  (y1 < 2^128, rr0 < 2^127, z stays below 2^256)
	var t [4]uint64
	hi, lo := bits.Mul64(y1a, rr0lo)
	t[0] = lo
	carry := hi
	hi, lo = bits.Mul64(y1a, rr0hi)
	lo, c1 := bits.Add64(lo, carry, 0)
	t[1] = lo
	t[2] = hi + c1
	hi, lo = bits.Mul64(y1b, rr0lo)
	t[1], c1 = bits.Add64(t[1], lo, 0)
	carry = hi + c1
	hi, lo = bits.Mul64(y1b, rr0hi)
	lo, c1 = bits.Add64(lo, t[2], 0)
	lo, c2 := bits.Add64(lo, carry, 0)
	t[2] = lo
	t[3] = hi + c1 + c2

	z0, cc = bits.Add64(z0, t[0], 0)
	z1, cc = bits.Add64(z1, t[1], cc)
	z2, cc = bits.Add64(z2, t[2], cc)
	z3, _ = bits.Add64(z3, t[3], cc)

	// Second peel: z = z1'*2^254 + z0', z1' <= 3.
	zh := z3 >> 62
	z3 &= 0x3FFFFFFFFFFFFFFF
	hiA, loA := bits.Mul64(zh, rr0lo)
	hiB, loB := bits.Mul64(zh, rr0hi)
	m1, cx := bits.Add64(hiA, loB, 0)
	m2 := hiB + cx
	z0, cc = bits.Add64(z0, loA, 0)
	z1, cc = bits.Add64(z1, m1, cc)
	z2, cc = bits.Add64(z2, m2, cc)
	z3, _ = bits.Add64(z3, 0, cc)

	// Final unit: one more if the remainder candidate reached r.
	_, bb := bits.Sub64(z0, orderR0, 0)
	_, bb = bits.Sub64(z1, orderR1, bb)
	_, bb = bits.Sub64(z2, orderR2, bb)
	_, bb = bits.Sub64(z3, orderR3, bb)
	ge := 1 - bb

	q0, cc = bits.Add64(y1a, zh+ge, 0)
	q1, _ = bits.Add64(y1b, 0, cc)
	return
}

// splitMu splits a canonical scalar k as k = k0 + k1*mu (mod r) with
// |k0|, |k1| < 2^127. It returns the two magnitudes over two limbs each
// plus their sign masks (all-ones for negative).
func (k *Scalar) splitMu() (k0lo, k0hi, k1lo, k1hi, s0, s1 uint64) {
	var yv, yu [6]uint64
	mul256x128(&yv, &k.d, glvV0, glvV1)
	mul256x128(&yu, &k.d, glvU0, glvU1)
	c0, c1 := divRoundR(&yv) // c = round(k*V / r)
	d0, d1 := divRoundR(&yu) // d = round(k*U / r)

	// k0 = k - d*U - c*V (mod 2^128, two's complement)
	duLo, duHi := mul128lo(d0, d1, glvU0, glvU1)
	cvLo, cvHi := mul128lo(c0, c1, glvV0, glvV1)
	t0, bb := bits.Sub64(k.d[0], duLo, 0)
	t1, _ := bits.Sub64(k.d[1], duHi, bb)
	t0, bb = bits.Sub64(t0, cvLo, 0)
	t1, _ = bits.Sub64(t1, cvHi, bb)
	s0 = -(t1 >> 63)
	k0lo, k0hi = condNeg128(t0, t1, s0)

	// k1 = d*V - c*U (mod 2^128)
	dvLo, dvHi := mul128lo(d0, d1, glvV0, glvV1)
	cuLo, cuHi := mul128lo(c0, c1, glvU0, glvU1)
	t0, bb = bits.Sub64(dvLo, cuLo, 0)
	t1, _ = bits.Sub64(dvHi, cuHi, bb)
	s1 = -(t1 >> 63)
	k1lo, k1hi = condNeg128(t0, t1, s1)
	return
}

// mul128lo returns the low 128 bits of (a1:a0) * (b1:b0).
func mul128lo(a0, a1, b0, b1 uint64) (lo, hi uint64) {
	h, l := bits.Mul64(a0, b0)
	lo = l
	hi = h + a0*b1 + a1*b0
	return
}

// condNeg128 negates the 128-bit value (hi:lo) when ctl is all-ones.
func condNeg128(lo, hi, ctl uint64) (uint64, uint64) {
	lo ^= ctl
	hi ^= ctl
	lo, cc := bits.Add64(lo, ctl&1, 0)
	hi, _ = bits.Add64(hi, 0, cc)
	return lo, hi
}

// recode5x26 rewrites a 127-bit magnitude (two limbs) into 26 signed
// digits in [-15, +16].
func recode5x26(lo, hi uint64, digits *[26]int8) {
	var cb uint64
	for i := 0; i < 26; i++ {
		off := uint(5 * i)
		var v uint64
		if off < 64 {
			v = lo >> off
			if off > 59 {
				v |= hi << (64 - off)
			}
		} else {
			v = hi >> (off - 64)
		}
		b := (v & 31) + cb
		cb = (b + 15) >> 5
		digits[i] = int8(int64(b) - int64(cb<<5))
	}
}
