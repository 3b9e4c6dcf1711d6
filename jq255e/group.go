package jq255e

// Point is a group element of jq255e, held in extended (E:Z:U:T)
// coordinates on the Jacobi quartic e^2 = 8*u^4 + 1 (curve constants
// a = 0, b = -2, so a^2-4b = 8). Z is never zero and U^2 = T*Z holds for
// every value the package constructs. The identity (and its 2-torsion
// partner, which represents the same group element) has U = 0.
type Point struct {
	e, z, u, t fieldElement
}

// affinePoint is a precomputed point with Z = 1 (e, u, t = u^2).
type affinePoint struct {
	e, u, t fieldElement
}

var identityAffine = affinePoint{e: feOne, u: feZero, t: feZero}

var identityPoint = Point{e: feOne, z: feOne, u: feZero, t: feZero}

// generator: the group element with u = 1 (image of the Weierstrass
// point (2, 2) on y^2 = x*(x^2 - 2)); e = -3 canonically, i.e. q-3.
var generatorAffine = affinePoint{
	e: fieldElement{[4]uint64{0xFFFFFFFFFFFFB722, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0x7FFFFFFFFFFFFFFF}},
	u: feOne,
	t: feOne,
}

var generatorPoint = Point{
	e: generatorAffine.e,
	z: feOne,
	u: feOne,
	t: feOne,
}

// NewIdentityPoint returns a new point set to the group identity.
func NewIdentityPoint() *Point {
	p := identityPoint
	return &p
}

// NewGeneratorPoint returns a new point set to the conventional generator.
func NewGeneratorPoint() *Point {
	p := generatorPoint
	return &p
}

// Set sets p to a and returns p.
func (p *Point) Set(a *Point) *Point {
	*p = *a
	return p
}

// setAffine sets p to the affine point a.
func (p *Point) setAffine(a *affinePoint) {
	p.e = a.e
	p.z = feOne
	p.u = a.u
	p.t = a.t
}

// Decode sets p from a 32-byte encoding. It returns 1 on success and 0
// otherwise; on failure p is the identity. The all-zero encoding decodes
// to the identity with success (callers that reject identity keys do so
// explicitly). Constant-time.
func (p *Point) Decode(src []byte) int {
	if len(src) != 32 {
		*p = identityPoint
		return 0
	}
	var u, t, v, e fieldElement
	m := u.setB32(src)

	// v = 8*u^4 + 1; the point exists iff v is a square.
	t.sqr(&u)
	v.sqr(&t)
	v.lsh(&v, 3)
	v.add(&v, &feOne)
	m &= e.sqrt(&v)

	p.e = e
	p.z = feOne
	p.u = u
	p.t = t
	p.cmov(&identityPoint, ^m)
	return int(m & 1)
}

// Encode writes the 32-byte encoding of p into dst: the u coordinate of
// the representative with non-negative e.
func (p *Point) Encode(dst []byte) {
	var zi, e, u fieldElement
	zi.inv(&p.z)
	e.mul(&p.e, &zi)
	u.mul(&p.u, &zi)
	u.condNegate(e.isNegativeMask())
	u.getB32(dst)
}

// Bytes returns the 32-byte encoding of p.
func (p *Point) Bytes() [32]byte {
	var out [32]byte
	p.Encode(out[:])
	return out
}

// cmov sets p to a if ctl is all-ones; ctl must be 0 or all-ones.
func (p *Point) cmov(a *Point, ctl uint64) {
	p.e.cmov(&a.e, ctl)
	p.z.cmov(&a.z, ctl)
	p.u.cmov(&a.u, ctl)
	p.t.cmov(&a.t, ctl)
}

// Neg sets p = -a and returns p.
func (p *Point) Neg(a *Point) *Point {
	p.e = a.e
	p.z = a.z
	p.u.negate(&a.u)
	p.t = a.t
	return p
}

// condNegate negates p when ctl is all-ones.
func (p *Point) condNegate(ctl uint64) {
	p.u.condNegate(ctl)
}

// Add sets p = a + b and returns p. The formulas are complete: any
// combination of inputs, including the identity, is handled.
func (p *Point) Add(a, b *Point) *Point {
	var e1e2, u1u2, z1z2, t1t2, eu, zt, bt, hd, tt fieldElement

	e1e2.mul(&a.e, &b.e)
	u1u2.mul(&a.u, &b.u)
	z1z2.mul(&a.z, &b.z)
	t1t2.mul(&a.t, &b.t)

	// eu = E1*U2 + E2*U1, zt = Z1*T2 + Z2*T1 (Karatsuba)
	eu.add(&a.e, &a.u)
	tt.add(&b.e, &b.u)
	eu.mul(&eu, &tt)
	eu.sub(&eu, &e1e2)
	eu.sub(&eu, &u1u2)
	zt.add(&a.z, &a.t)
	tt.add(&b.z, &b.t)
	zt.mul(&zt, &tt)
	zt.sub(&zt, &z1z2)
	zt.sub(&zt, &t1t2)

	// With a' = 0 and b' = 8:
	//   hd = Z1Z2 - 8*T1T2
	//   E3 = (Z1Z2 + 8*T1T2)*E1E2 + 16*U1U2*ZT
	bt.lsh(&t1t2, 3)
	hd.sub(&z1z2, &bt)
	var e3, z3, u3, t3 fieldElement
	e3.add(&z1z2, &bt)
	e3.mul(&e3, &e1e2)
	tt.mul(&u1u2, &zt)
	tt.lsh(&tt, 4)
	e3.add(&e3, &tt)
	z3.sqr(&hd)
	t3.sqr(&eu)
	u3.mul(&hd, &eu)

	p.e = e3
	p.z = z3
	p.u = u3
	p.t = t3
	return p
}

// addAffine sets p = a + b for an affine (Z = 1) second operand, saving
// one multiplication against the general formulas.
func (p *Point) addAffine(a *Point, b *affinePoint) {
	var e1e2, u1u2, t1t2, eu, zt, bt, hd, tt fieldElement

	e1e2.mul(&a.e, &b.e)
	u1u2.mul(&a.u, &b.u)
	t1t2.mul(&a.t, &b.t)

	eu.add(&a.e, &a.u)
	tt.add(&b.e, &b.u)
	eu.mul(&eu, &tt)
	eu.sub(&eu, &e1e2)
	eu.sub(&eu, &u1u2)
	zt.mul(&a.z, &b.t)
	zt.add(&zt, &a.t)

	bt.lsh(&t1t2, 3)
	hd.sub(&a.z, &bt)
	var e3, z3, u3, t3 fieldElement
	e3.add(&a.z, &bt)
	e3.mul(&e3, &e1e2)
	tt.mul(&u1u2, &zt)
	tt.lsh(&tt, 4)
	e3.add(&e3, &tt)
	z3.sqr(&hd)
	t3.sqr(&eu)
	u3.mul(&hd, &eu)

	p.e = e3
	p.z = z3
	p.u = u3
	p.t = t3
}

// Double sets p = 2*a and returns p.
func (p *Point) Double(a *Point) *Point {
	p.xdouble(a, 1)
	return p
}

// xdouble sets p = 2^n * a using the fused (X:W:J) doubling chain:
// one conversion at each end, cheap per-step cost in between.
func (p *Point) xdouble(a *Point, n uint) {
	if n == 0 {
		*p = *a
		return
	}
	var x, w, j, t1, t2, ww fieldElement

	// First doubling from (E:Z:U:T).
	t1.sqr(&a.e)
	x.sqr(&t1)
	w.sqr(&a.z)
	w.mul2(&w)
	w.sub(&w, &t1)
	j.mul(&a.e, &a.u)
	j.mul2(&j)

	// Each further doubling on (X:W:J).
	for i := uint(1); i < n; i++ {
		ww.sqr(&w)
		t1.sub(&ww, &x)
		t1.sub(&t1, &x)
		t2.sqr(&t1)
		j.mul(&j, &w)
		j.mul(&j, &t1)
		j.mul2(&j)
		ww.sqr(&ww)
		w.sub(&t2, &ww)
		w.sub(&w, &ww)
		x.sqr(&t2)
	}

	// Back to (E:Z:U:T).
	p.z.sqr(&w)
	p.t.sqr(&j)
	p.u.mul(&w, &j)
	p.e.mul2(&x)
	p.e.sub(&p.e, &p.z)
}

// IsIdentity returns 1 if p is the group identity.
func (p *Point) IsIdentity() int {
	return int(p.isIdentityMask() & 1)
}

func (p *Point) isIdentityMask() uint64 {
	return p.u.isZeroMask()
}

// Equal returns 1 if p and a represent the same group element: points P
// and P+N encode identically, and U1*E2 = U2*E1 decides equality.
func (p *Point) Equal(a *Point) int {
	return int(p.equalMask(a) & 1)
}

func (p *Point) equalMask(a *Point) uint64 {
	var l, r fieldElement
	l.mul(&p.u, &a.e)
	r.mul(&a.u, &p.e)
	return l.equals(&r)
}

// lookupWindow performs a constant-time signed lookup in a 16-entry
// window of extended points: win[i] holds (i+1)*P, and the digit is in
// [-16, +16]. Digit 0 yields the identity. Every entry is read.
func (p *Point) lookupWindow(win *[16]Point, digit int8) {
	d := uint64(uint8(digit))
	sign := -(d >> 7)                       // all-ones for negative digits
	mag := ((d ^ sign) + (sign & 1)) & 0xFF // |digit|
	*p = identityPoint
	for i := uint64(0); i < 16; i++ {
		m := subIsZero(mag ^ (i + 1))
		p.cmov(&win[i], m)
	}
	p.condNegate(sign)
}

// lookupWindowAffine is the affine-table variant of lookupWindow.
func lookupWindowAffine(r *affinePoint, win *[16]affinePoint, digit int8) {
	d := uint64(uint8(digit))
	sign := -(d >> 7)
	mag := ((d ^ sign) + (sign & 1)) & 0xFF
	*r = identityAffine
	for i := uint64(0); i < 16; i++ {
		m := subIsZero(mag ^ (i + 1))
		r.e.cmov(&win[i].e, m)
		r.u.cmov(&win[i].u, m)
		r.t.cmov(&win[i].t, m)
	}
	r.u.condNegate(sign)
}
