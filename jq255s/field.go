package jq255s

import "math/bits"

// fieldElement is an integer modulo q = 2^255 - 3957, held over four 64-bit
// little-endian limbs. Values are kept partially reduced: any 256-bit value
// is a valid representation of its residue. normalize brings an element to
// the canonical range [0, q).
type fieldElement struct {
	n [4]uint64
}

const (
	// q = 2^255 - fieldC
	fieldC = 3957
	// 2^256 = 2*q + field2C, so a carry out of the top limb folds back in
	// as an addition of field2C.
	field2C = 2 * fieldC

	fieldQ0 = 0xFFFFFFFFFFFFF08B
	fieldQ1 = 0xFFFFFFFFFFFFFFFF
	fieldQ2 = 0xFFFFFFFFFFFFFFFF
	fieldQ3 = 0x7FFFFFFFFFFFFFFF

	// (q+1)/2, used for halving
	fieldHalf0 = 0xFFFFFFFFFFFFF846
	fieldHalf1 = 0xFFFFFFFFFFFFFFFF
	fieldHalf2 = 0xFFFFFFFFFFFFFFFF
	fieldHalf3 = 0x3FFFFFFFFFFFFFFF
)

var feZero = fieldElement{[4]uint64{0, 0, 0, 0}}
var feOne = fieldElement{[4]uint64{1, 0, 0, 0}}

func (r *fieldElement) setZero() {
	r.n[0], r.n[1], r.n[2], r.n[3] = 0, 0, 0, 0
}

func (r *fieldElement) setOne() {
	r.n[0], r.n[1], r.n[2], r.n[3] = 1, 0, 0, 0
}

// setSmall sets r to the small integer v.
func (r *fieldElement) setSmall(v uint64) {
	r.n[0], r.n[1], r.n[2], r.n[3] = v, 0, 0, 0
}

// add computes r = a + b. Output may alias either input.
func (r *fieldElement) add(a, b *fieldElement) {
	d0, cc := bits.Add64(a.n[0], b.n[0], 0)
	d1, cc := bits.Add64(a.n[1], b.n[1], cc)
	d2, cc := bits.Add64(a.n[2], b.n[2], cc)
	d3, cc := bits.Add64(a.n[3], b.n[3], cc)

	// Fold the carry: 2^256 = field2C mod q. A second carry can appear
	// only when the first fold wraps, and cannot appear a third time.
	d0, cc = bits.Add64(d0, cc*field2C, 0)
	d1, cc = bits.Add64(d1, 0, cc)
	d2, cc = bits.Add64(d2, 0, cc)
	d3, cc = bits.Add64(d3, 0, cc)
	d0, cc = bits.Add64(d0, cc*field2C, 0)
	d1, cc = bits.Add64(d1, 0, cc)
	d2, cc = bits.Add64(d2, 0, cc)
	d3, _ = bits.Add64(d3, 0, cc)

	r.n[0], r.n[1], r.n[2], r.n[3] = d0, d1, d2, d3
}

// sub computes r = a - b. Output may alias either input.
func (r *fieldElement) sub(a, b *fieldElement) {
	d0, bb := bits.Sub64(a.n[0], b.n[0], 0)
	d1, bb := bits.Sub64(a.n[1], b.n[1], bb)
	d2, bb := bits.Sub64(a.n[2], b.n[2], bb)
	d3, bb := bits.Sub64(a.n[3], b.n[3], bb)

	// A borrow wrapped by 2^256; compensate by subtracting field2C, and
	// once more if that underflows again.
	d0, bb = bits.Sub64(d0, bb*field2C, 0)
	d1, bb = bits.Sub64(d1, 0, bb)
	d2, bb = bits.Sub64(d2, 0, bb)
	d3, bb = bits.Sub64(d3, 0, bb)
	d0, bb = bits.Sub64(d0, bb*field2C, 0)
	d1, bb = bits.Sub64(d1, 0, bb)
	d2, bb = bits.Sub64(d2, 0, bb)
	d3, _ = bits.Sub64(d3, 0, bb)

	r.n[0], r.n[1], r.n[2], r.n[3] = d0, d1, d2, d3
}

// negate computes r = -a.
func (r *fieldElement) negate(a *fieldElement) {
	z := feZero
	r.sub(&z, a)
}

// half computes r = a/2.
func (r *fieldElement) half(a *fieldElement) {
	odd := a.n[0] & 1
	d0 := (a.n[0] >> 1) | (a.n[1] << 63)
	d1 := (a.n[1] >> 1) | (a.n[2] << 63)
	d2 := (a.n[2] >> 1) | (a.n[3] << 63)
	d3 := a.n[3] >> 1

	// If the dropped bit was set, add (q+1)/2.
	m := -odd
	d0, cc := bits.Add64(d0, fieldHalf0&m, 0)
	d1, cc = bits.Add64(d1, fieldHalf1&m, cc)
	d2, cc = bits.Add64(d2, fieldHalf2&m, cc)
	d3, _ = bits.Add64(d3, fieldHalf3&m, cc)

	r.n[0], r.n[1], r.n[2], r.n[3] = d0, d1, d2, d3
}

// lsh computes r = a * 2^s for 1 <= s <= 15.
func (r *fieldElement) lsh(a *fieldElement, s uint) {
	hi := a.n[3] >> (64 - s)
	d3 := (a.n[3] << s) | (a.n[2] >> (64 - s))
	d2 := (a.n[2] << s) | (a.n[1] >> (64 - s))
	d1 := (a.n[1] << s) | (a.n[0] >> (64 - s))
	d0 := a.n[0] << s

	// hi < 2^15; fold hi*2^256 = hi*field2C.
	d0, cc := bits.Add64(d0, hi*field2C, 0)
	d1, cc = bits.Add64(d1, 0, cc)
	d2, cc = bits.Add64(d2, 0, cc)
	d3, cc = bits.Add64(d3, 0, cc)
	d0, cc = bits.Add64(d0, cc*field2C, 0)
	d1, cc = bits.Add64(d1, 0, cc)
	d2, cc = bits.Add64(d2, 0, cc)
	d3, _ = bits.Add64(d3, 0, cc)

	r.n[0], r.n[1], r.n[2], r.n[3] = d0, d1, d2, d3
}

// mul2 computes r = 2*a.
func (r *fieldElement) mul2(a *fieldElement) { r.lsh(a, 1) }

// normalize fully reduces r into [0, q).
func (r *fieldElement) normalize() {
	d0, d1, d2, d3 := r.n[0], r.n[1], r.n[2], r.n[3]

	// Fold bit 255 twice: value = low255 + b*2^255 = low255 + b*fieldC.
	for i := 0; i < 2; i++ {
		b := d3 >> 63
		d3 &= 0x7FFFFFFFFFFFFFFF
		var cc uint64
		d0, cc = bits.Add64(d0, b*fieldC, 0)
		d1, cc = bits.Add64(d1, 0, cc)
		d2, cc = bits.Add64(d2, 0, cc)
		d3, _ = bits.Add64(d3, 0, cc)
	}

	// Conditionally subtract q.
	t0, bb := bits.Sub64(d0, fieldQ0, 0)
	t1, bb := bits.Sub64(d1, fieldQ1, bb)
	t2, bb := bits.Sub64(d2, fieldQ2, bb)
	t3, bb := bits.Sub64(d3, fieldQ3, bb)
	m := bb - 1 // all-ones when d >= q
	d0 ^= m & (d0 ^ t0)
	d1 ^= m & (d1 ^ t1)
	d2 ^= m & (d2 ^ t2)
	d3 ^= m & (d3 ^ t3)

	r.n[0], r.n[1], r.n[2], r.n[3] = d0, d1, d2, d3
}

// isZeroMask returns all-ones if r is zero modulo q, else 0. The three
// 256-bit representations of zero (0, q and 2q) are all recognized.
func (r *fieldElement) isZeroMask() uint64 {
	t := *r
	t.normalize()
	v := t.n[0] | t.n[1] | t.n[2] | t.n[3]
	return subIsZero(v)
}

// equals returns all-ones if r == a modulo q, else 0.
func (r *fieldElement) equals(a *fieldElement) uint64 {
	var d fieldElement
	d.sub(r, a)
	return d.isZeroMask()
}

// isNegativeMask returns all-ones if the canonical value of r is odd
// ("negative" in the encoding convention), else 0.
func (r *fieldElement) isNegativeMask() uint64 {
	t := *r
	t.normalize()
	return -(t.n[0] & 1)
}

// cmov sets r to a if ctl is all-ones; ctl must be 0 or all-ones.
func (r *fieldElement) cmov(a *fieldElement, ctl uint64) {
	r.n[0] ^= ctl & (r.n[0] ^ a.n[0])
	r.n[1] ^= ctl & (r.n[1] ^ a.n[1])
	r.n[2] ^= ctl & (r.n[2] ^ a.n[2])
	r.n[3] ^= ctl & (r.n[3] ^ a.n[3])
}

// selectFE sets r to a0 if ctl is 0, to a1 if ctl is all-ones.
func (r *fieldElement) selectFE(a0, a1 *fieldElement, ctl uint64) {
	r.n[0] = a0.n[0] ^ (ctl & (a0.n[0] ^ a1.n[0]))
	r.n[1] = a0.n[1] ^ (ctl & (a0.n[1] ^ a1.n[1]))
	r.n[2] = a0.n[2] ^ (ctl & (a0.n[2] ^ a1.n[2]))
	r.n[3] = a0.n[3] ^ (ctl & (a0.n[3] ^ a1.n[3]))
}

// condNegate negates r if ctl is all-ones; ctl must be 0 or all-ones.
func (r *fieldElement) condNegate(ctl uint64) {
	var t fieldElement
	t.negate(r)
	r.cmov(&t, ctl)
}

// setB32 decodes a 32-byte little-endian encoding. The encoding must be
// canonical (value < q); otherwise r is set to zero and 0 is returned.
// Returns all-ones on success. Constant-time.
func (r *fieldElement) setB32(src []byte) uint64 {
	if len(src) != 32 {
		panic("field element encoding must be 32 bytes")
	}
	d0 := dec64le(src[0:8])
	d1 := dec64le(src[8:16])
	d2 := dec64le(src[16:24])
	d3 := dec64le(src[24:32])

	// Valid iff value < q, i.e. subtracting q borrows.
	_, bb := bits.Sub64(d0, fieldQ0, 0)
	_, bb = bits.Sub64(d1, fieldQ1, bb)
	_, bb = bits.Sub64(d2, fieldQ2, bb)
	_, bb = bits.Sub64(d3, fieldQ3, bb)
	m := -bb // all-ones when canonical

	r.n[0] = d0 & m
	r.n[1] = d1 & m
	r.n[2] = d2 & m
	r.n[3] = d3 & m
	return m
}

// getB32 writes the canonical 32-byte little-endian encoding of r.
func (r *fieldElement) getB32(dst []byte) {
	if len(dst) != 32 {
		panic("field element encoding must be 32 bytes")
	}
	t := *r
	t.normalize()
	enc64le(dst[0:8], t.n[0])
	enc64le(dst[8:16], t.n[1])
	enc64le(dst[16:24], t.n[2])
	enc64le(dst[24:32], t.n[3])
}

// subIsZero returns all-ones if v == 0, else 0.
func subIsZero(v uint64) uint64 {
	return ((v | -v) >> 63) - 1
}

func dec64le(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func enc64le(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
