package jq255s

// MulGen sets p = k*G for the conventional generator G, using the four
// precomputed affine windows over G, 2^65*G, 2^130*G and 2^195*G. The
// 52 signed digits of the scalar are consumed four at a time, with one
// 5-fold doubling cluster per iteration. Constant-time.
func (p *Point) MulGen(k *Scalar) *Point {
	sk := *k
	sk.finishReduce()
	var digits [52]int8
	sk.recode5(&digits)

	var acc Point
	var t affinePoint
	lookupWindowAffine(&t, &mulgenWinG, digits[12])
	acc.setAffine(&t)
	lookupWindowAffine(&t, &mulgenWinG65, digits[25])
	acc.addAffine(&acc, &t)
	lookupWindowAffine(&t, &mulgenWinG130, digits[38])
	acc.addAffine(&acc, &t)
	lookupWindowAffine(&t, &mulgenWinG195, digits[51])
	acc.addAffine(&acc, &t)

	for i := 11; i >= 0; i-- {
		acc.xdouble(&acc, 5)
		lookupWindowAffine(&t, &mulgenWinG, digits[i])
		acc.addAffine(&acc, &t)
		lookupWindowAffine(&t, &mulgenWinG65, digits[13+i])
		acc.addAffine(&acc, &t)
		lookupWindowAffine(&t, &mulgenWinG130, digits[26+i])
		acc.addAffine(&acc, &t)
		lookupWindowAffine(&t, &mulgenWinG195, digits[39+i])
		acc.addAffine(&acc, &t)
	}
	*p = acc
	return p
}
