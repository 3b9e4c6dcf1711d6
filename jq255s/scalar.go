package jq255s

import "math/bits"

// Scalar is an integer modulo the group order
// r = 2^254 + 56904135270672826811114353017034461895, over four 64-bit
// little-endian limbs. Exposed values are canonical (fully reduced);
// intermediate values may be only partially reduced (below 2^255).
type Scalar struct {
	d [4]uint64
}

const (
	orderR0 = 0xDCF2AC65396152C7
	orderR1 = 0x2ACF567A912B7F03
	orderR2 = 0x0000000000000000
	orderR3 = 0x4000000000000000

	// r = 2^254 + rr0, with rr0 < 2^127
	rr0lo = 0xDCF2AC65396152C7
	rr0hi = 0x2ACF567A912B7F03

	// 4*rr0 (two limbs; 4*rr0 < 2^128)
	fourRR0a = 0x73CAB194E5854B1C
	fourRR0b = 0xAB3D59EA44ADFC0F
)

var scZero = Scalar{}
var scOne = Scalar{d: [4]uint64{1, 0, 0, 0}}

// condAddR adds r to the scalar when bb is 1 (as produced by a borrow).
func (r *Scalar) condAddR(bb uint64) {
	m := -bb
	var cc uint64
	r.d[0], cc = bits.Add64(r.d[0], orderR0&m, 0)
	r.d[1], cc = bits.Add64(r.d[1], orderR1&m, cc)
	r.d[2], cc = bits.Add64(r.d[2], orderR2&m, cc)
	r.d[3], _ = bits.Add64(r.d[3], orderR3&m, cc)
}

// reducePartial folds bits 254+ of a 256-bit value:
// x = low254 + h*2^254 == low254 - h*rr0 (mod r), with a conditional
// add-back of r when the subtraction goes negative. Result below 2^255.
func (r *Scalar) reducePartial(a *[4]uint64) {
	h := a[3] >> 62
	d3 := a[3] & 0x3FFFFFFFFFFFFFFF

	hi0, lo0 := bits.Mul64(h, rr0lo)
	hi1, lo1 := bits.Mul64(h, rr0hi)
	t1, c := bits.Add64(lo1, hi0, 0)
	t2 := hi1 + c

	d0, bb := bits.Sub64(a[0], lo0, 0)
	d1, bb := bits.Sub64(a[1], t1, bb)
	d2, bb := bits.Sub64(a[2], t2, bb)
	d3, bb = bits.Sub64(d3, 0, bb)

	r.d[0], r.d[1], r.d[2], r.d[3] = d0, d1, d2, d3
	r.condAddR(bb)
}

// reduceBlock384 folds x = lo(256 bits) + 2^256*hi(128 bits) into a
// partially reduced value, using 2^256 == -4*rr0 (mod r): the product is
// subtracted under a 4r guard that keeps the value non-negative. hi must
// be below 2^127, which holds for all callers.
func (r *Scalar) reduceBlock384(l0, l1, l2, l3, h0, h1 uint64) {
	// t = hi * 4*rr0 (four limbs; hi < 2^127, 4*rr0 < 2^128).
	var t [4]uint64
	hi, lo := bits.Mul64(h0, fourRR0a)
	t[0] = lo
	carry := hi
	hi, lo = bits.Mul64(h0, fourRR0b)
	lo, c1 := bits.Add64(lo, carry, 0)
	t[1] = lo
	t[2] = hi + c1
	hi, lo = bits.Mul64(h1, fourRR0a)
	t[1], c1 = bits.Add64(t[1], lo, 0)
	carry = hi + c1
	hi, lo = bits.Mul64(h1, fourRR0b)
	lo, c1 = bits.Add64(lo, t[2], 0)
	lo, c2 := bits.Add64(lo, carry, 0)
	t[2] = lo
	t[3] = hi + c1 + c2

	// s = 4r - t, with 4r = 2^256 + 4*rr0 (five limbs); s >= 0.
	s0, bb := bits.Sub64(fourRR0a, t[0], 0)
	s1, bb := bits.Sub64(fourRR0b, t[1], bb)
	s2, bb := bits.Sub64(0, t[2], bb)
	s3, bb := bits.Sub64(0, t[3], bb)
	s4 := 1 - bb

	// d = lo + s  (x == d + top*2^256 mod r, top <= 2)
	d0, cc := bits.Add64(l0, s0, 0)
	d1, cc := bits.Add64(l1, s1, cc)
	d2, cc := bits.Add64(l2, s2, cc)
	d3, cc := bits.Add64(l3, s3, cc)
	top := s4 + cc

	// Fold top: top*2^256 == -top*4*rr0 (mod r).
	hi0, lo0 := bits.Mul64(top, fourRR0a)
	hi1, lo1 := bits.Mul64(top, fourRR0b)
	u1, c := bits.Add64(hi0, lo1, 0)
	u2 := hi1 + c
	d0, bb = bits.Sub64(d0, lo0, 0)
	d1, bb = bits.Sub64(d1, u1, bb)
	d2, bb = bits.Sub64(d2, u2, bb)
	d3, bb = bits.Sub64(d3, 0, bb)

	var acc [4]uint64
	acc[0], acc[1], acc[2], acc[3] = d0, d1, d2, d3
	var tmp Scalar
	tmp.d = acc
	tmp.condAddR(bb)
	r.reducePartial(&tmp.d)
}

// finishReduce brings a partially reduced scalar into [0, r).
func (r *Scalar) finishReduce() {
	for i := 0; i < 2; i++ {
		t0, bb := bits.Sub64(r.d[0], orderR0, 0)
		t1, bb := bits.Sub64(r.d[1], orderR1, bb)
		t2, bb := bits.Sub64(r.d[2], orderR2, bb)
		t3, bb := bits.Sub64(r.d[3], orderR3, bb)
		m := bb - 1
		r.d[0] ^= m & (r.d[0] ^ t0)
		r.d[1] ^= m & (r.d[1] ^ t1)
		r.d[2] ^= m & (r.d[2] ^ t2)
		r.d[3] ^= m & (r.d[3] ^ t3)
	}
}

// Decode sets r from a canonical 32-byte little-endian encoding. Returns
// all-ones on success; on failure (value >= r or wrong length) r is set
// to zero and 0 is returned. Constant-time in the data.
func (r *Scalar) Decode(src []byte) uint64 {
	if len(src) != 32 {
		r.d = [4]uint64{}
		return 0
	}
	d0 := dec64le(src[0:8])
	d1 := dec64le(src[8:16])
	d2 := dec64le(src[16:24])
	d3 := dec64le(src[24:32])

	_, bb := bits.Sub64(d0, orderR0, 0)
	_, bb = bits.Sub64(d1, orderR1, bb)
	_, bb = bits.Sub64(d2, orderR2, bb)
	_, bb = bits.Sub64(d3, orderR3, bb)
	m := -bb

	r.d[0] = d0 & m
	r.d[1] = d1 & m
	r.d[2] = d2 & m
	r.d[3] = d3 & m
	return m
}

// DecodeReduce sets r from an arbitrary-length little-endian byte string,
// reduced modulo r.
func (r *Scalar) DecodeReduce(src []byte) {
	var buf []byte
	if len(src)%16 != 0 {
		buf = make([]byte, (len(src)+15)&^15)
		copy(buf, src)
	} else {
		buf = src
	}
	r.d = [4]uint64{}
	for i := len(buf)/16 - 1; i >= 0; i-- {
		b0 := dec64le(buf[16*i : 16*i+8])
		b1 := dec64le(buf[16*i+8 : 16*i+16])
		acc := *r
		r.reduceBlock384(b0, b1, acc.d[0], acc.d[1], acc.d[2], acc.d[3])
	}
	r.finishReduce()
}

// Encode writes the canonical 32-byte encoding of r into dst.
func (r *Scalar) Encode(dst []byte) {
	if len(dst) != 32 {
		panic("scalar encoding must be 32 bytes")
	}
	t := *r
	t.finishReduce()
	enc64le(dst[0:8], t.d[0])
	enc64le(dst[8:16], t.d[1])
	enc64le(dst[16:24], t.d[2])
	enc64le(dst[24:32], t.d[3])
}

// Bytes returns the canonical 32-byte encoding of r.
func (r *Scalar) Bytes() [32]byte {
	var out [32]byte
	r.Encode(out[:])
	return out
}

// Add computes r = a + b mod r (canonical output).
func (r *Scalar) Add(a, b *Scalar) {
	d0, cc := bits.Add64(a.d[0], b.d[0], 0)
	d1, cc := bits.Add64(a.d[1], b.d[1], cc)
	d2, cc := bits.Add64(a.d[2], b.d[2], cc)
	d3, _ := bits.Add64(a.d[3], b.d[3], cc)
	var acc [4]uint64
	acc[0], acc[1], acc[2], acc[3] = d0, d1, d2, d3
	r.reducePartial(&acc)
	r.finishReduce()
}

// Mul computes r = a * b mod r (canonical output).
func (r *Scalar) Mul(a, b *Scalar) {
	var z [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a.d[i], b.d[j])
			lo, c1 := bits.Add64(lo, z[i+j], 0)
			lo, c2 := bits.Add64(lo, carry, 0)
			z[i+j] = lo
			carry = hi + c1 + c2
		}
		z[i+4] = carry
	}
	var acc Scalar
	var top [4]uint64
	top[0], top[1], top[2], top[3] = z[4], z[5], z[6], z[7]
	acc.reducePartial(&top)
	acc.reduceBlock384(z[2], z[3], acc.d[0], acc.d[1], acc.d[2], acc.d[3])
	acc.reduceBlock384(z[0], z[1], acc.d[0], acc.d[1], acc.d[2], acc.d[3])
	acc.finishReduce()
	*r = acc
}

// IsZeroMask returns all-ones if r == 0, else 0.
func (r *Scalar) IsZeroMask() uint64 {
	t := *r
	t.finishReduce()
	return subIsZero(t.d[0] | t.d[1] | t.d[2] | t.d[3])
}

// Equal returns 1 if r == a, else 0.
func (r *Scalar) Equal(a *Scalar) int {
	x := *r
	y := *a
	x.finishReduce()
	y.finishReduce()
	v := (x.d[0] ^ y.d[0]) | (x.d[1] ^ y.d[1]) | (x.d[2] ^ y.d[2]) | (x.d[3] ^ y.d[3])
	return int(subIsZero(v) & 1)
}

// Select sets r to a0 if ctl is 0, a1 if ctl is all-ones.
func (r *Scalar) Select(a0, a1 *Scalar, ctl uint64) {
	for i := 0; i < 4; i++ {
		r.d[i] = a0.d[i] ^ (ctl & (a0.d[i] ^ a1.d[i]))
	}
}

// clear wipes the scalar value.
func (r *Scalar) clear() {
	r.d = [4]uint64{}
}

// recode5 rewrites a canonical scalar (below 2^255) into 52 signed digits
// in [-15, +16], such that sum(d_i * 32^i) equals the scalar. The top
// digit is non-negative.
func (r *Scalar) recode5(digits *[52]int8) {
	var cb uint64
	for i := 0; i < 52; i++ {
		b := r.bits5(uint(5*i)) + cb
		cb = (b + 15) >> 5
		digits[i] = int8(int64(b) - int64(cb<<5))
	}
	// cb == 0 by the range bound on the input
}

// bits5 extracts the 5-bit chunk at bit offset off.
func (r *Scalar) bits5(off uint) uint64 {
	li := off >> 6
	if li > 3 {
		return 0
	}
	bo := off & 63
	v := r.d[li] >> bo
	if bo > 59 && li < 3 {
		v |= r.d[li+1] << (64 - bo)
	}
	return v & 31
}

// recodeWNAF rewrites x (little-endian limbs) into window-5 NAF digits:
// each digit is 0 or odd in [-15, +15], and two non-zero digits are at
// least 5 positions apart. Variable-time; used only on public values.
func recodeWNAF(x []uint64, digits []int8) {
	n := len(digits)
	var w [5]uint64
	copy(w[:], x)
	for i := 0; i < n; i++ {
		digits[i] = 0
	}
	i := 0
	for i < n {
		if w[0]&1 == 0 {
			i++
			wnafShr1(&w)
			continue
		}
		d := int64(w[0] & 31)
		if d >= 16 {
			d -= 32
			wnafAddSmall(&w, uint64(-d))
		} else {
			wnafSubSmall(&w, uint64(d))
		}
		digits[i] = int8(d)
		i++
		wnafShr1(&w)
	}
}

func wnafShr1(w *[5]uint64) {
	for i := 0; i < 4; i++ {
		w[i] = (w[i] >> 1) | (w[i+1] << 63)
	}
	w[4] >>= 1
}

func wnafAddSmall(w *[5]uint64, v uint64) {
	var cc uint64
	w[0], cc = bits.Add64(w[0], v, 0)
	for i := 1; i < 5 && cc != 0; i++ {
		w[i], cc = bits.Add64(w[i], 0, cc)
	}
}

func wnafSubSmall(w *[5]uint64, v uint64) {
	var bb uint64
	w[0], bb = bits.Sub64(w[0], v, 0)
	for i := 1; i < 5 && bb != 0; i++ {
		w[i], bb = bits.Sub64(w[i], 0, bb)
	}
}
