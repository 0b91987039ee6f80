package testutil

import "math/big"

// Reference predicates evaluated in exact rational arithmetic. Every finite
// float converts to a big.Rat without loss, and big.Rat operations are
// exact, so the returned signs are ground truth.

// Orient2DSign returns the exact sign (-1, 0, +1) of the orientation
// determinant of the 2D points a, b, c.
func Orient2DSign[T Float](pa, pb, pc [2]T) int {
	acx := subRat(rat(pa[0]), rat(pc[0]))
	bcx := subRat(rat(pb[0]), rat(pc[0]))
	acy := subRat(rat(pa[1]), rat(pc[1]))
	bcy := subRat(rat(pb[1]), rat(pc[1]))
	det := subRat(mulRat(acx, bcy), mulRat(acy, bcx))
	return det.Sign()
}

// Orient3DSign returns the exact sign of the signed volume of the
// tetrahedron a, b, c, d.
func Orient3DSign[T Float](pa, pb, pc, pd [3]T) int {
	adx := subRat(rat(pa[0]), rat(pd[0]))
	bdx := subRat(rat(pb[0]), rat(pd[0]))
	cdx := subRat(rat(pc[0]), rat(pd[0]))
	ady := subRat(rat(pa[1]), rat(pd[1]))
	bdy := subRat(rat(pb[1]), rat(pd[1]))
	cdy := subRat(rat(pc[1]), rat(pd[1]))
	adz := subRat(rat(pa[2]), rat(pd[2]))
	bdz := subRat(rat(pb[2]), rat(pd[2]))
	cdz := subRat(rat(pc[2]), rat(pd[2]))

	det := addRat(
		addRat(
			mulRat(adz, subRat(mulRat(bdx, cdy), mulRat(cdx, bdy))),
			mulRat(bdz, subRat(mulRat(cdx, ady), mulRat(adx, cdy))),
		),
		mulRat(cdz, subRat(mulRat(adx, bdy), mulRat(bdx, ady))),
	)
	return det.Sign()
}

// InCircleSign returns the exact sign of the incircle determinant: positive
// if d is inside the circle through the counter-clockwise points a, b, c.
func InCircleSign[T Float](pa, pb, pc, pd [2]T) int {
	adx := subRat(rat(pa[0]), rat(pd[0]))
	bdx := subRat(rat(pb[0]), rat(pd[0]))
	cdx := subRat(rat(pc[0]), rat(pd[0]))
	ady := subRat(rat(pa[1]), rat(pd[1]))
	bdy := subRat(rat(pb[1]), rat(pd[1]))
	cdy := subRat(rat(pc[1]), rat(pd[1]))

	alift := addRat(mulRat(adx, adx), mulRat(ady, ady))
	blift := addRat(mulRat(bdx, bdx), mulRat(bdy, bdy))
	clift := addRat(mulRat(cdx, cdx), mulRat(cdy, cdy))

	det := addRat(
		addRat(
			mulRat(alift, subRat(mulRat(bdx, cdy), mulRat(cdx, bdy))),
			mulRat(blift, subRat(mulRat(cdx, ady), mulRat(adx, cdy))),
		),
		mulRat(clift, subRat(mulRat(adx, bdy), mulRat(bdx, ady))),
	)
	return det.Sign()
}

// InSphereSign returns the exact sign of the insphere determinant: positive
// if e is inside the sphere through the positively oriented points
// a, b, c, d.
func InSphereSign[T Float](pa, pb, pc, pd, pe [3]T) int {
	aex := subRat(rat(pa[0]), rat(pe[0]))
	bex := subRat(rat(pb[0]), rat(pe[0]))
	cex := subRat(rat(pc[0]), rat(pe[0]))
	dex := subRat(rat(pd[0]), rat(pe[0]))
	aey := subRat(rat(pa[1]), rat(pe[1]))
	bey := subRat(rat(pb[1]), rat(pe[1]))
	cey := subRat(rat(pc[1]), rat(pe[1]))
	dey := subRat(rat(pd[1]), rat(pe[1]))
	aez := subRat(rat(pa[2]), rat(pe[2]))
	bez := subRat(rat(pb[2]), rat(pe[2]))
	cez := subRat(rat(pc[2]), rat(pe[2]))
	dez := subRat(rat(pd[2]), rat(pe[2]))

	ab := subRat(mulRat(aex, bey), mulRat(bex, aey))
	bc := subRat(mulRat(bex, cey), mulRat(cex, bey))
	cd := subRat(mulRat(cex, dey), mulRat(dex, cey))
	da := subRat(mulRat(dex, aey), mulRat(aex, dey))
	ac := subRat(mulRat(aex, cey), mulRat(cex, aey))
	bd := subRat(mulRat(bex, dey), mulRat(dex, bey))

	abc := addRat(subRat(mulRat(aez, bc), mulRat(bez, ac)), mulRat(cez, ab))
	bcd := addRat(subRat(mulRat(bez, cd), mulRat(cez, bd)), mulRat(dez, bc))
	cda := addRat(addRat(mulRat(cez, da), mulRat(dez, ac)), mulRat(aez, cd))
	dab := addRat(addRat(mulRat(dez, ab), mulRat(aez, bd)), mulRat(bez, da))

	alift := addRat(addRat(mulRat(aex, aex), mulRat(aey, aey)), mulRat(aez, aez))
	blift := addRat(addRat(mulRat(bex, bex), mulRat(bey, bey)), mulRat(bez, bez))
	clift := addRat(addRat(mulRat(cex, cex), mulRat(cey, cey)), mulRat(cez, cez))
	dlift := addRat(addRat(mulRat(dex, dex), mulRat(dey, dey)), mulRat(dez, dez))

	det := addRat(
		subRat(mulRat(dlift, abc), mulRat(clift, dab)),
		subRat(mulRat(blift, cda), mulRat(alift, bcd)),
	)
	return det.Sign()
}

func rat[T Float](v T) *big.Rat {
	return new(big.Rat).SetFloat64(float64(v))
}

func addRat(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Add(x, y)
}

func subRat(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Sub(x, y)
}

func mulRat(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Mul(x, y)
}
