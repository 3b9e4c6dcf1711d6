package jq255e

// applyEndo applies the curve endomorphism to p in place, with the
// supplied eta (either +eta or -eta, matching the sign handling of the
// split): zeta(E:Z:U:T) = (E:Z:eta*U:-T), which computes mu*P.
func (p *Point) applyEndo(eta *fieldElement) {
	p.u.mul(&p.u, eta)
	p.t.negate(&p.t)
}

// buildWindow fills win[i] = (i+1)*a for i in 0..15.
func buildWindow(win *[16]Point, a *Point) {
	win[0] = *a
	win[1].xdouble(a, 1)
	for i := 3; i <= 16; i++ {
		if i&1 != 0 {
			win[i-1].Add(&win[i-2], a)
		} else {
			win[i-1].xdouble(&win[i/2-1], 1)
		}
	}
}

// Mul sets p = k*a and returns p. Constant-time: the scalar is split over
// the curve endomorphism into two halves below 2^127, both processed with
// signed 5-bit windows over a single shared table.
func (p *Point) Mul(k *Scalar, a *Point) *Point {
	sk := *k
	sk.finishReduce()
	k0lo, k0hi, k1lo, k1hi, s0, s1 := sk.splitMu()

	// Window over (-1)^s0 * a; the k1 contribution then needs
	// eta' = +eta when the two signs agree, -eta otherwise.
	base := *a
	base.condNegate(s0)
	var win [16]Point
	buildWindow(&win, &base)
	eta := etaConstant
	eta.condNegate(s0 ^ s1)

	var d0, d1 [26]int8
	recode5x26(k0lo, k0hi, &d0)
	recode5x26(k1lo, k1hi, &d1)

	var acc, t Point
	acc.lookupWindow(&win, d0[25])
	t.lookupWindow(&win, d1[25])
	t.applyEndo(&eta)
	acc.Add(&acc, &t)
	for i := 24; i >= 0; i-- {
		acc.xdouble(&acc, 5)
		t.lookupWindow(&win, d0[i])
		acc.Add(&acc, &t)
		t.lookupWindow(&win, d1[i])
		t.applyEndo(&eta)
		acc.Add(&acc, &t)
	}
	*p = acc
	return p
}
