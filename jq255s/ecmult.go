package jq255s

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

// Mul sets p = k*a and returns p. Constant-time: a single 16-entry
// window over a, consumed by the 52 signed 5-bit digits of the scalar
// with a fused 5-fold doubling between digits. (jq255s has no fast
// endomorphism, so no scalar splitting here.)
func (p *Point) Mul(k *Scalar, a *Point) *Point {
	sk := *k
	sk.finishReduce()
	var win [16]Point
	buildWindow(&win, a)

	var digits [52]int8
	sk.recode5(&digits)

	var acc, t Point
	acc.lookupWindow(&win, digits[51])
	for i := 50; i >= 0; i-- {
		acc.xdouble(&acc, 5)
		t.lookupWindow(&win, digits[i])
		acc.Add(&acc, &t)
	}
	*p = acc
	return p
}
