// Package exact provides full-precision geometric sign predicates. Every
// function computes its determinant as an exact floating-point expansion and
// returns the most significant component, so the sign of the result is always
// mathematically correct, including an exact zero for degenerate inputs.
//
// These evaluators cost a fixed several hundred to several thousand scalar
// operations per call. The adaptive evaluators in the root package reach the
// same answer far cheaper for non-degenerate inputs and fall back to this
// package only when every faster stage fails to certify a sign; call this
// package directly only when the always-exact slow path is wanted, e.g. as a
// validation oracle.
package exact

import "github.com/zwl995/robust/internal/expansion"

// Float is the set of coordinate types the predicates accept.
type Float interface {
	float32 | float64
}

// Orient2D returns a value whose sign matches the exact 2x2 determinant of
// the edge vectors (a-c) and (b-c): positive if a, b, c wind counter-
// clockwise, negative if clockwise, and exactly zero if they are collinear.
func Orient2D[T Float](pa, pb, pc [2]T) T {
	aterms := expansion.TwoTwoDiff(pa[0], pb[1], pa[0], pc[1])
	bterms := expansion.TwoTwoDiff(pb[0], pc[1], pb[0], pa[1])
	cterms := expansion.TwoTwoDiff(pc[0], pa[1], pc[0], pb[1])
	w := aterms.Add(bterms).Add(cterms)
	return w.MostSignificant()
}

// Orient3D returns a value whose sign matches the exact 3x3 determinant
// (signed volume) of the edge vectors (a-d), (b-d), (c-d): positive if d
// lies below the plane through a, b, c (with a, b, c counter-clockwise seen
// from above), and exactly zero if the four points are coplanar.
func Orient3D[T Float](pa, pb, pc, pd [3]T) T {
	ab := expansion.TwoTwoDiff(pa[0], pb[1], pb[0], pa[1])
	bc := expansion.TwoTwoDiff(pb[0], pc[1], pc[0], pb[1])
	cd := expansion.TwoTwoDiff(pc[0], pd[1], pd[0], pc[1])
	da := expansion.TwoTwoDiff(pd[0], pa[1], pa[0], pd[1])
	ac := expansion.TwoTwoDiff(pa[0], pc[1], pc[0], pa[1])
	bd := expansion.TwoTwoDiff(pb[0], pd[1], pd[0], pb[1])

	abc := ab.Add(bc).Sub(ac)
	bcd := bc.Add(cd).Sub(bd)
	cda := cd.Add(da).Add(ac)
	dab := da.Add(ab).Add(bd)

	adet := bcd.Scale(pa[2])
	bdet := cda.Scale(-pb[2])
	cdet := dab.Scale(pc[2])
	ddet := abc.Scale(-pd[2])

	deter := adet.Add(bdet).Add(cdet.Add(ddet))
	return deter.MostSignificant()
}

// InCircle returns a value whose sign matches the exact 4x4 determinant that
// lifts the 2D points onto a paraboloid: positive if d lies inside the
// circle through a, b, c (which must wind counter-clockwise), negative if
// outside, and exactly zero if the four points are cocircular.
func InCircle[T Float](pa, pb, pc, pd [2]T) T {
	ab := expansion.TwoTwoDiff(pa[0], pb[1], pb[0], pa[1])
	bc := expansion.TwoTwoDiff(pb[0], pc[1], pc[0], pb[1])
	cd := expansion.TwoTwoDiff(pc[0], pd[1], pd[0], pc[1])
	da := expansion.TwoTwoDiff(pd[0], pa[1], pa[0], pd[1])
	ac := expansion.TwoTwoDiff(pa[0], pc[1], pc[0], pa[1])
	bd := expansion.TwoTwoDiff(pb[0], pd[1], pd[0], pb[1])

	abc := ab.Add(bc).Sub(ac)
	bcd := bc.Add(cd).Sub(bd)
	cda := cd.Add(da).Add(ac)
	dab := da.Add(ab).Add(bd)

	adet := bcd.Scale(pa[0]).Scale(pa[0]).Add(bcd.Scale(pa[1]).Scale(pa[1]))
	bdet := cda.Scale(pb[0]).Scale(-pb[0]).Add(cda.Scale(pb[1]).Scale(-pb[1]))
	cdet := dab.Scale(pc[0]).Scale(pc[0]).Add(dab.Scale(pc[1]).Scale(pc[1]))
	ddet := abc.Scale(pd[0]).Scale(-pd[0]).Add(abc.Scale(pd[1]).Scale(-pd[1]))

	deter := adet.Add(bdet).Add(cdet.Add(ddet))
	return deter.MostSignificant()
}

// InSphere returns a value whose sign matches the exact 5x5 determinant that
// lifts the 3D points onto a hyperparaboloid: positive if e lies inside the
// sphere through a, b, c, d (which must be positively oriented), negative if
// outside, and exactly zero if the five points are cospherical.
func InSphere[T Float](pa, pb, pc, pd, pe [3]T) T {
	ab := expansion.TwoTwoDiff(pa[0], pb[1], pb[0], pa[1])
	bc := expansion.TwoTwoDiff(pb[0], pc[1], pc[0], pb[1])
	cd := expansion.TwoTwoDiff(pc[0], pd[1], pd[0], pc[1])
	de := expansion.TwoTwoDiff(pd[0], pe[1], pe[0], pd[1])
	ea := expansion.TwoTwoDiff(pe[0], pa[1], pa[0], pe[1])
	ac := expansion.TwoTwoDiff(pa[0], pc[1], pc[0], pa[1])
	bd := expansion.TwoTwoDiff(pb[0], pd[1], pd[0], pb[1])
	ce := expansion.TwoTwoDiff(pc[0], pe[1], pe[0], pc[1])
	da := expansion.TwoTwoDiff(pd[0], pa[1], pa[0], pd[1])
	eb := expansion.TwoTwoDiff(pe[0], pb[1], pb[0], pe[1])

	abc := bc.Scale(pa[2]).Add(ac.Scale(-pb[2])).Add(ab.Scale(pc[2]))
	bcd := cd.Scale(pb[2]).Add(bd.Scale(-pc[2])).Add(bc.Scale(pd[2]))
	cde := de.Scale(pc[2]).Add(ce.Scale(-pd[2])).Add(cd.Scale(pe[2]))
	dea := ea.Scale(pd[2]).Add(da.Scale(-pe[2])).Add(de.Scale(pa[2]))
	eab := ab.Scale(pe[2]).Add(eb.Scale(-pa[2])).Add(ea.Scale(pb[2]))
	abd := bd.Scale(pa[2]).Add(da.Scale(pb[2])).Add(ab.Scale(pd[2]))
	bce := ce.Scale(pb[2]).Add(eb.Scale(pc[2])).Add(bc.Scale(pe[2]))
	cda := da.Scale(pc[2]).Add(ac.Scale(pd[2])).Add(cd.Scale(pa[2]))
	deb := eb.Scale(pd[2]).Add(bd.Scale(pe[2])).Add(de.Scale(pb[2]))
	eac := ac.Scale(pe[2]).Add(ce.Scale(pa[2])).Add(ea.Scale(pc[2]))

	bcde := cde.Add(bce).Sub(deb.Add(bcd))
	cdea := dea.Add(cda).Sub(eac.Add(cde))
	deab := eab.Add(deb).Sub(abd.Add(dea))
	eabc := abc.Add(eac).Sub(bce.Add(eab))
	abcd := bcd.Add(abd).Sub(cda.Add(abc))

	adet := bcde.Scale(pa[0]).Scale(pa[0]).
		Add(bcde.Scale(pa[1]).Scale(pa[1])).
		Add(bcde.Scale(pa[2]).Scale(pa[2]))
	bdet := cdea.Scale(pb[0]).Scale(pb[0]).
		Add(cdea.Scale(pb[1]).Scale(pb[1])).
		Add(cdea.Scale(pb[2]).Scale(pb[2]))
	cdet := deab.Scale(pc[0]).Scale(pc[0]).
		Add(deab.Scale(pc[1]).Scale(pc[1])).
		Add(deab.Scale(pc[2]).Scale(pc[2]))
	ddet := eabc.Scale(pd[0]).Scale(pd[0]).
		Add(eabc.Scale(pd[1]).Scale(pd[1])).
		Add(eabc.Scale(pd[2]).Scale(pd[2]))
	edet := abcd.Scale(pe[0]).Scale(pe[0]).
		Add(abcd.Scale(pe[1]).Scale(pe[1])).
		Add(abcd.Scale(pe[2]).Scale(pe[2]))

	deter := adet.Add(bdet).Add(cdet.Add(ddet).Add(edet))
	return deter.MostSignificant()
}
