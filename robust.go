package robust

import (
	"math"

	"github.com/zwl995/robust/exact"
	"github.com/zwl995/robust/internal/efa"
	"github.com/zwl995/robust/internal/expansion"
)

// Float is the set of coordinate types the predicates accept.
type Float interface {
	float32 | float64
}

// Orient2D returns a value whose sign matches the exact 2x2 determinant of
// the edge vectors (a-c) and (b-c): positive if a, b, c wind counter-
// clockwise, negative if clockwise, and exactly zero if they are collinear.
// The magnitude is proportional to twice the signed triangle area but is not
// otherwise meaningful.
func Orient2D[T Float](pa, pb, pc [2]T) T {
	eb := boundsFor[T]()

	acx := pa[0] - pc[0]
	bcx := pb[0] - pc[0]
	acy := pa[1] - pc[1]
	bcy := pb[1] - pc[1]
	detLeft := acx * bcy
	detRight := acy * bcx
	det := detLeft - detRight

	// Opposite signs, or an exact zero product: the subtraction cannot
	// cancel, so det is already exact.
	if math.Signbit(float64(detLeft)) != math.Signbit(float64(detRight)) {
		return det
	}
	if detLeft == 0 || detRight == 0 {
		return det
	}

	detSum := abs(detLeft + detRight)
	errBound := eb.ccwA * detSum
	if abs(det) >= errBound {
		return det
	}

	b := expansion.TwoTwoDiff(acx, bcy, acy, bcx)
	det = b.Estimate()
	errBound = eb.ccwB * detSum
	if abs(det) >= errBound {
		return det
	}

	acxTail := efa.MinusTail(pa[0], pc[0], acx)
	bcxTail := efa.MinusTail(pb[0], pc[0], bcx)
	acyTail := efa.MinusTail(pa[1], pc[1], acy)
	bcyTail := efa.MinusTail(pb[1], pc[1], bcy)
	if acxTail == 0 && bcxTail == 0 && acyTail == 0 && bcyTail == 0 {
		return det
	}

	errBound = eb.ccwC*detSum + eb.resultErr*abs(det)
	det += (acx*bcyTail + bcy*acxTail) - (acy*bcxTail + bcx*acyTail)
	if abs(det) >= errBound {
		return det
	}

	d := b.
		Add(expansion.TwoTwoDiff(acxTail, bcy, acyTail, bcx)).
		Add(expansion.TwoTwoDiff(acx, bcyTail, acy, bcxTail)).
		Add(expansion.TwoTwoDiff(acxTail, bcyTail, acyTail, bcxTail))
	return d.MostSignificant()
}

// Orient3D returns a value whose sign matches the exact 3x3 determinant
// (signed volume) of the edge vectors (a-d), (b-d), (c-d): positive if d
// lies below the plane through a, b, c (with a, b, c counter-clockwise seen
// from above), and exactly zero if the four points are coplanar.
func Orient3D[T Float](pa, pb, pc, pd [3]T) T {
	eb := boundsFor[T]()

	adx := pa[0] - pd[0]
	bdx := pb[0] - pd[0]
	cdx := pc[0] - pd[0]
	ady := pa[1] - pd[1]
	bdy := pb[1] - pd[1]
	cdy := pc[1] - pd[1]
	adz := pa[2] - pd[2]
	bdz := pb[2] - pd[2]
	cdz := pc[2] - pd[2]

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	cdxady := cdx * ady
	adxcdy := adx * cdy
	adxbdy := adx * bdy
	bdxady := bdx * ady

	det := adz*(bdxcdy-cdxbdy) + bdz*(cdxady-adxcdy) + cdz*(adxbdy-bdxady)
	permanent := (abs(bdxcdy)+abs(cdxbdy))*abs(adz) +
		(abs(cdxady)+abs(adxcdy))*abs(bdz) +
		(abs(adxbdy)+abs(bdxady))*abs(cdz)
	errBound := eb.o3dA * permanent
	if abs(det) >= errBound {
		return det
	}

	bc := expansion.TwoTwoDiff(bdx, cdy, cdx, bdy)
	ca := expansion.TwoTwoDiff(cdx, ady, adx, cdy)
	ab := expansion.TwoTwoDiff(adx, bdy, bdx, ady)
	fin1 := bc.Scale(adz).Add(ca.Scale(bdz)).Add(ab.Scale(cdz))
	det = fin1.Estimate()
	errBound = eb.o3dB * permanent
	if abs(det) >= errBound {
		return det
	}

	adxTail := efa.MinusTail(pa[0], pd[0], adx)
	bdxTail := efa.MinusTail(pb[0], pd[0], bdx)
	cdxTail := efa.MinusTail(pc[0], pd[0], cdx)
	adyTail := efa.MinusTail(pa[1], pd[1], ady)
	bdyTail := efa.MinusTail(pb[1], pd[1], bdy)
	cdyTail := efa.MinusTail(pc[1], pd[1], cdy)
	adzTail := efa.MinusTail(pa[2], pd[2], adz)
	bdzTail := efa.MinusTail(pb[2], pd[2], bdz)
	cdzTail := efa.MinusTail(pc[2], pd[2], cdz)
	if adxTail == 0 && adyTail == 0 && adzTail == 0 &&
		bdxTail == 0 && bdyTail == 0 && bdzTail == 0 &&
		cdxTail == 0 && cdyTail == 0 && cdzTail == 0 {
		return det
	}

	errBound = eb.o3dC*permanent + eb.resultErr*abs(det)
	det += (adz*((bdx*cdyTail+cdy*bdxTail)-(bdy*cdxTail+cdx*bdyTail)) + adzTail*(bdx*cdy-bdy*cdx)) +
		(bdz*((cdx*adyTail+ady*cdxTail)-(cdy*adxTail+adx*cdyTail)) + bdzTail*(cdx*ady-cdy*adx)) +
		(cdz*((adx*bdyTail+bdy*adxTail)-(ady*bdxTail+bdx*adyTail)) + cdzTail*(adx*bdy-ady*bdx))
	if abs(det) >= errBound {
		return det
	}

	bct := expansion.TwoTwoDiffZeroCheck(bdxTail, cdy, bdyTail, cdx).
		Add(expansion.TwoTwoDiffZeroCheck(cdyTail, bdx, cdxTail, bdy))
	cat := expansion.TwoTwoDiffZeroCheck(cdxTail, ady, cdyTail, adx).
		Add(expansion.TwoTwoDiffZeroCheck(adyTail, cdx, adxTail, cdy))
	abt := expansion.TwoTwoDiffZeroCheck(adxTail, bdy, adyTail, bdx).
		Add(expansion.TwoTwoDiffZeroCheck(bdyTail, adx, bdxTail, ady))

	fin2 := fin1.
		Add(bct.Scale(adz)).Add(cat.Scale(bdz)).Add(abt.Scale(cdz)).
		Add(bc.Scale(adzTail)).Add(ca.Scale(bdzTail)).Add(ab.Scale(cdzTail)).
		Add(expansion.ThreeProduct(adxTail, bdyTail, cdz)).
		Add(expansion.ThreeProduct(adxTail, bdyTail, cdzTail)).
		Add(expansion.ThreeProduct(-adxTail, cdyTail, bdz)).
		Add(expansion.ThreeProduct(-adxTail, cdyTail, bdzTail)).
		Add(expansion.ThreeProduct(bdxTail, cdyTail, adz)).
		Add(expansion.ThreeProduct(bdxTail, cdyTail, adzTail)).
		Add(expansion.ThreeProduct(-bdxTail, adyTail, cdz)).
		Add(expansion.ThreeProduct(-bdxTail, adyTail, cdzTail)).
		Add(expansion.ThreeProduct(cdxTail, adyTail, bdz)).
		Add(expansion.ThreeProduct(cdxTail, adyTail, bdzTail)).
		Add(expansion.ThreeProduct(-cdxTail, bdyTail, adz)).
		Add(expansion.ThreeProduct(-cdxTail, bdyTail, adzTail)).
		Add(bct.Scale(adzTail)).Add(cat.Scale(bdzTail)).Add(abt.Scale(cdzTail))
	return fin2.MostSignificant()
}

// InCircle returns a value whose sign matches the exact 4x4 determinant that
// lifts the 2D points onto a paraboloid: positive if d lies inside the
// circle through a, b, c (which must wind counter-clockwise), negative if
// outside, and exactly zero if the four points are cocircular.
func InCircle[T Float](pa, pb, pc, pd [2]T) T {
	eb := boundsFor[T]()

	adx := pa[0] - pd[0]
	bdx := pb[0] - pd[0]
	cdx := pc[0] - pd[0]
	ady := pa[1] - pd[1]
	bdy := pb[1] - pd[1]
	cdy := pc[1] - pd[1]

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	cdxady := cdx * ady
	adxcdy := adx * cdy
	adxbdy := adx * bdy
	bdxady := bdx * ady
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent := (abs(bdxcdy)+abs(cdxbdy))*alift +
		(abs(cdxady)+abs(adxcdy))*blift +
		(abs(adxbdy)+abs(bdxady))*clift
	errBound := eb.iccA * permanent
	if abs(det) >= errBound {
		return det
	}

	bc := expansion.TwoTwoDiff(bdx, cdy, cdx, bdy)
	ca := expansion.TwoTwoDiff(cdx, ady, adx, cdy)
	ab := expansion.TwoTwoDiff(adx, bdy, bdx, ady)
	adet := bc.Scale(adx).Scale(adx).Add(bc.Scale(ady).Scale(ady))
	bdet := ca.Scale(bdx).Scale(bdx).Add(ca.Scale(bdy).Scale(bdy))
	cdet := ab.Scale(cdx).Scale(cdx).Add(ab.Scale(cdy).Scale(cdy))
	fin1 := adet.Add(bdet).Add(cdet)
	det = fin1.Estimate()
	errBound = eb.iccB * permanent
	if abs(det) >= errBound {
		return det
	}

	adxTail := efa.MinusTail(pa[0], pd[0], adx)
	adyTail := efa.MinusTail(pa[1], pd[1], ady)
	bdxTail := efa.MinusTail(pb[0], pd[0], bdx)
	bdyTail := efa.MinusTail(pb[1], pd[1], bdy)
	cdxTail := efa.MinusTail(pc[0], pd[0], cdx)
	cdyTail := efa.MinusTail(pc[1], pd[1], cdy)
	if adxTail == 0 && bdxTail == 0 && cdxTail == 0 &&
		adyTail == 0 && bdyTail == 0 && cdyTail == 0 {
		return det
	}

	errBound = eb.iccC*permanent + eb.resultErr*abs(det)
	det += ((adx*adx+ady*ady)*((bdx*cdyTail+cdy*bdxTail)-(bdy*cdxTail+cdx*bdyTail)) +
		(bdx*cdy-bdy*cdx)*(adx*adxTail+ady*adyTail)*2) +
		((bdx*bdx+bdy*bdy)*((cdx*adyTail+ady*cdxTail)-(cdy*adxTail+adx*cdyTail)) +
			(cdx*ady-cdy*adx)*(bdx*bdxTail+bdy*bdyTail)*2) +
		((cdx*cdx+cdy*cdy)*((adx*bdyTail+bdy*adxTail)-(ady*bdxTail+bdx*adyTail)) +
			(adx*bdy-ady*bdx)*(cdx*cdxTail+cdy*cdyTail)*2)
	if abs(det) >= errBound {
		return det
	}

	return exact.InCircle(pa, pb, pc, pd)
}

// InSphere returns a value whose sign matches the exact 5x5 determinant that
// lifts the 3D points onto a hyperparaboloid: positive if e lies inside the
// sphere through a, b, c, d (which must be positively oriented), negative if
// outside, and exactly zero if the five points are cospherical.
func InSphere[T Float](pa, pb, pc, pd, pe [3]T) T {
	eb := boundsFor[T]()

	aex := pa[0] - pe[0]
	bex := pb[0] - pe[0]
	cex := pc[0] - pe[0]
	dex := pd[0] - pe[0]
	aey := pa[1] - pe[1]
	bey := pb[1] - pe[1]
	cey := pc[1] - pe[1]
	dey := pd[1] - pe[1]
	aez := pa[2] - pe[2]
	bez := pb[2] - pe[2]
	cez := pc[2] - pe[2]
	dez := pd[2] - pe[2]

	var permanent T
	{
		aexbey := aex * bey
		bexaey := bex * aey
		bexcey := bex * cey
		cexbey := cex * bey
		cexdey := cex * dey
		dexcey := dex * cey
		dexaey := dex * aey
		aexdey := aex * dey
		aexcey := aex * cey
		cexaey := cex * aey
		bexdey := bex * dey
		dexbey := dex * bey

		ab := aexbey - bexaey
		bc := bexcey - cexbey
		cd := cexdey - dexcey
		da := dexaey - aexdey
		ac := aexcey - cexaey
		bd := bexdey - dexbey

		abc := aez*bc - bez*ac + cez*ab
		bcd := bez*cd - cez*bd + dez*bc
		cda := cez*da + dez*ac + aez*cd
		dab := dez*ab + aez*bd + bez*da

		alift := aex*aex + aey*aey + aez*aez
		blift := bex*bex + bey*bey + bez*bez
		clift := cex*cex + cey*cey + cez*cez
		dlift := dex*dex + dey*dey + dez*dez

		det := (dlift*abc - clift*dab) + (blift*cda - alift*bcd)

		aezPlus := abs(aez)
		bezPlus := abs(bez)
		cezPlus := abs(cez)
		dezPlus := abs(dez)
		aexbeyPlus := abs(aexbey)
		bexaeyPlus := abs(bexaey)
		bexceyPlus := abs(bexcey)
		cexbeyPlus := abs(cexbey)
		cexdeyPlus := abs(cexdey)
		dexceyPlus := abs(dexcey)
		dexaeyPlus := abs(dexaey)
		aexdeyPlus := abs(aexdey)
		aexceyPlus := abs(aexcey)
		cexaeyPlus := abs(cexaey)
		bexdeyPlus := abs(bexdey)
		dexbeyPlus := abs(dexbey)
		permanent = ((cexdeyPlus+dexceyPlus)*bezPlus+(dexbeyPlus+bexdeyPlus)*cezPlus+(bexceyPlus+cexbeyPlus)*dezPlus)*alift +
			((dexaeyPlus+aexdeyPlus)*cezPlus+(aexceyPlus+cexaeyPlus)*dezPlus+(cexdeyPlus+dexceyPlus)*aezPlus)*blift +
			((aexbeyPlus+bexaeyPlus)*dezPlus+(bexdeyPlus+dexbeyPlus)*aezPlus+(dexaeyPlus+aexdeyPlus)*bezPlus)*clift +
			((bexceyPlus+cexbeyPlus)*aezPlus+(cexaeyPlus+aexceyPlus)*bezPlus+(aexbeyPlus+bexaeyPlus)*cezPlus)*dlift

		errBound := eb.ispA * permanent
		if abs(det) >= errBound {
			return det
		}
	}

	ab := expansion.TwoTwoDiff(aex, bey, bex, aey)
	bc := expansion.TwoTwoDiff(bex, cey, cex, bey)
	cd := expansion.TwoTwoDiff(cex, dey, dex, cey)
	da := expansion.TwoTwoDiff(dex, aey, aex, dey)
	ac := expansion.TwoTwoDiff(aex, cey, cex, aey)
	bd := expansion.TwoTwoDiff(bex, dey, dex, bey)

	temp24a := bc.Scale(dez).Add(cd.Scale(bez).Add(bd.Scale(-cez)))
	temp24b := cd.Scale(aez).Add(da.Scale(cez).Add(ac.Scale(dez)))
	temp24c := da.Scale(bez).Add(ab.Scale(dez).Add(bd.Scale(aez)))
	temp24d := ab.Scale(cez).Add(bc.Scale(aez).Add(ac.Scale(-bez)))

	adet := temp24a.Scale(aex).Scale(-aex).
		Add(temp24a.Scale(aey).Scale(-aey)).
		Add(temp24a.Scale(aez).Scale(-aez))
	bdet := temp24b.Scale(bex).Scale(bex).
		Add(temp24b.Scale(bey).Scale(bey)).
		Add(temp24b.Scale(bez).Scale(bez))
	cdet := temp24c.Scale(cex).Scale(-cex).
		Add(temp24c.Scale(cey).Scale(-cey)).
		Add(temp24c.Scale(cez).Scale(-cez))
	ddet := temp24d.Scale(dex).Scale(dex).
		Add(temp24d.Scale(dey).Scale(dey)).
		Add(temp24d.Scale(dez).Scale(dez))
	fin1 := adet.Add(bdet).Add(cdet.Add(ddet))

	det := fin1.Estimate()
	errBound := eb.ispB * permanent
	if abs(det) >= errBound {
		return det
	}

	aexTail := efa.MinusTail(pa[0], pe[0], aex)
	aeyTail := efa.MinusTail(pa[1], pe[1], aey)
	aezTail := efa.MinusTail(pa[2], pe[2], aez)
	bexTail := efa.MinusTail(pb[0], pe[0], bex)
	beyTail := efa.MinusTail(pb[1], pe[1], bey)
	bezTail := efa.MinusTail(pb[2], pe[2], bez)
	cexTail := efa.MinusTail(pc[0], pe[0], cex)
	ceyTail := efa.MinusTail(pc[1], pe[1], cey)
	cezTail := efa.MinusTail(pc[2], pe[2], cez)
	dexTail := efa.MinusTail(pd[0], pe[0], dex)
	deyTail := efa.MinusTail(pd[1], pe[1], dey)
	dezTail := efa.MinusTail(pd[2], pe[2], dez)
	if aexTail == 0 && aeyTail == 0 && aezTail == 0 &&
		bexTail == 0 && beyTail == 0 && bezTail == 0 &&
		cexTail == 0 && ceyTail == 0 && cezTail == 0 &&
		dexTail == 0 && deyTail == 0 && dezTail == 0 {
		return det
	}

	errBound = eb.ispC*permanent + eb.resultErr*abs(det)

	abeps := (aex*beyTail + bey*aexTail) - (aey*bexTail + bex*aeyTail)
	bceps := (bex*ceyTail + cey*bexTail) - (bey*cexTail + cex*beyTail)
	cdeps := (cex*deyTail + dey*cexTail) - (cey*dexTail + dex*ceyTail)
	daeps := (dex*aeyTail + aey*dexTail) - (dey*aexTail + aex*deyTail)
	aceps := (aex*ceyTail + cey*aexTail) - (aey*cexTail + cex*aeyTail)
	bdeps := (bex*deyTail + dey*bexTail) - (bey*dexTail + dex*beyTail)

	// The correction reuses only the most significant component of each
	// small determinant expansion; the exact fallback below covers
	// whatever this approximation cannot certify.
	ab3 := ab.MostSignificant()
	bc3 := bc.MostSignificant()
	cd3 := cd.MostSignificant()
	da3 := da.MostSignificant()
	ac3 := ac.MostSignificant()
	bd3 := bd.MostSignificant()

	det += (((bex*bex+bey*bey+bez*bez)*((cez*daeps+dez*aceps+aez*cdeps)+(cezTail*da3+dezTail*ac3+aezTail*cd3)) +
		(dex*dex+dey*dey+dez*dez)*((aez*bceps-bez*aceps+cez*abeps)+(aezTail*bc3-bezTail*ac3+cezTail*ab3))) -
		((aex*aex+aey*aey+aez*aez)*((bez*cdeps-cez*bdeps+dez*bceps)+(bezTail*cd3-cezTail*bd3+dezTail*bc3)) +
			(cex*cex+cey*cey+cez*cez)*((dez*abeps+aez*bdeps+bez*daeps)+(dezTail*ab3+aezTail*bd3+bezTail*da3)))) +
		2*(((bex*bexTail+bey*beyTail+bez*bezTail)*(cez*da3+dez*ac3+aez*cd3) +
			(dex*dexTail+dey*deyTail+dez*dezTail)*(aez*bc3-bez*ac3+cez*ab3)) -
			((aex*aexTail+aey*aeyTail+aez*aezTail)*(bez*cd3-cez*bd3+dez*bc3) +
				(cex*cexTail+cey*ceyTail+cez*cezTail)*(dez*ab3+aez*bd3+bez*da3)))
	if abs(det) >= errBound {
		return det
	}

	return exact.InSphere(pa, pb, pc, pd, pe)
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
