package cspline

import (
	"fmt"
)

// Eval evaluates the spline at every position in xs. Positions must be
// sorted in ascending order, otherwise ErrOutOfOrder is returned.
// Positions outside of the knot range are not meaningful.
func (sp *Spline) Eval(xs []float64) ([]float64, error) {
	return sp.evalAll(xs, sp.evalSegment)
}

// EvalSlope evaluates the first derivative of the spline at every position
// in xs. Positions must be sorted in ascending order, otherwise
// ErrOutOfOrder is returned.
func (sp *Spline) EvalSlope(xs []float64) ([]float64, error) {
	return sp.evalAll(xs, sp.slopeSegment)
}

// FitAndEval fits the spline to knots (x.i,y.i) and evaluates it at every
// position in xs. See Fit and Eval.
func (sp *Spline) FitAndEval(x, y, xs []float64, start, end Slope) ([]float64, error) {
	if err := sp.Fit(x, y, start, end); err != nil {
		return nil, err
	}
	return sp.Eval(xs)
}

// Compute fits a throw-away spline to knots (x.i,y.i) and evaluates it
// at every position in xs.
func Compute(x, y, xs []float64, start, end Slope) ([]float64, error) {
	return New().FitAndEval(x, y, xs, start, end)
}

func (sp *Spline) evalAll(xs []float64, f func(float64, int) float64) ([]float64, error) {
	if !sp.IsFitted() {
		return nil, ErrNotFitted
	}
	r := make([]float64, len(xs))
	sp.lastIndex = 0 // reset cursor for this batch
	for i, x := range xs {
		j, err := sp.segmentFor(x)
		if err != nil {
			return nil, fmt.Errorf("%w: x[%d] = %g", err, i, x)
		}
		r[i] = f(x, j)
		tracer().Debugf("xs.%d = %g, j = %d, q = %g", i, x, j, r[i])
	}
	return r, nil
}

// Find the segment for position x, moving the cursor forward as needed.
// The cursor never moves backwards.
func (sp *Spline) segmentFor(x float64) (int, error) {
	if x < sp.xs[sp.lastIndex] {
		return 0, ErrOutOfOrder
	}
	for sp.lastIndex < len(sp.xs)-2 && x > sp.xs[sp.lastIndex+1] {
		sp.lastIndex++
	}
	return sp.lastIndex, nil
}

// Value of segment j at position x.
func (sp *Spline) evalSegment(x float64, j int) float64 {
	dx := sp.xs[j+1] - sp.xs[j]
	t := (x - sp.xs[j]) / dx
	a, b := sp.a[j], sp.b[j]
	return (1-t)*sp.ys[j] + t*sp.ys[j+1] + t*(1-t)*(a*(1-t)+b*t)
}

// Slope of segment j at position x.
func (sp *Spline) slopeSegment(x float64, j int) float64 {
	dx := sp.xs[j+1] - sp.xs[j]
	dy := sp.ys[j+1] - sp.ys[j]
	t := (x - sp.xs[j]) / dx
	a, b := sp.a[j], sp.b[j]
	return dy/dx + (1-2*t)*(a*(1-t)+b*t)/dx + t*(1-t)*(b-a)/dx
}
