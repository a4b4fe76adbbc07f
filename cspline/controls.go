package cspline

import (
	"math/cmplx"

	"github.com/npillmayer/splinefit"
)

// Controls returns the cubic Bézier control points equivalent to the
// segments of a fitted spline. Segment i runs from knot i over
// PostControl(i) and PreControl(i+1) to knot i+1.
func (sp *Spline) Controls() (*Controls, error) {
	if !sp.IsFitted() {
		return nil, ErrNotFitted
	}
	ctrls := &Controls{}
	for i := 0; i < sp.N()-1; i++ {
		dx := sp.xs[i+1] - sp.xs[i]
		dy := sp.ys[i+1] - sp.ys[i]
		k0 := (sp.a[i] + dy) / dx // tangent at knot i
		k1 := (dy - sp.b[i]) / dx // tangent at knot i+1
		third := dx / 3
		ctrls.SetPostControl(i, sp.knot(i)+splinefit.P(third, k0*third))
		ctrls.SetPreControl(i+1, sp.knot(i+1)-splinefit.P(third, k1*third))
	}
	return ctrls, nil
}

// SetPreControl sets the control point before knot i.
func (ctrls *Controls) SetPreControl(i int, c splinefit.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, splinefit.Pair(cmplx.NaN()))
	ctrls.prec[i] = c
}

// SetPostControl sets the control point after knot i.
func (ctrls *Controls) SetPostControl(i int, c splinefit.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, splinefit.Pair(cmplx.NaN()))
	ctrls.postc[i] = c
}

// PreControl is the control point before knot i. It is NaN for the first knot.
func (ctrls *Controls) PreControl(i int) splinefit.Pair {
	return getC(ctrls.prec, i, splinefit.Pair(cmplx.NaN()))
}

// PostControl is the control point after knot i. It is NaN for the last knot.
func (ctrls *Controls) PostControl(i int) splinefit.Pair {
	return getC(ctrls.postc, i, splinefit.Pair(cmplx.NaN()))
}
