package cspline

import (
	"fmt"

	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/tridiag"
)

// New creates an empty spline, to be fitted by calling Fit.
func New() *Spline {
	return &Spline{}
}

// NewFitted creates a spline and fits it to knots (x.i,y.i).
// See Fit.
func NewFitted(x, y []float64, start, end Slope) (*Spline, error) {
	sp := New()
	if err := sp.Fit(x, y, start, end); err != nil {
		return nil, err
	}
	return sp, nil
}

// Fit fits the spline to knots (x.i,y.i), replacing any previous fit.
// x must be strictly increasing; this is not checked. start and end
// optionally fix the slope of the spline at the first and last knot.
//
// The spline keeps a reference to x and y. Clients must not modify them
// as long as the spline is in use.
func (sp *Spline) Fit(x, y []float64, start, end Slope) error {
	if isInf(start.value) || isInf(end.value) {
		tracer().Errorf("spline fit with infinite slope: start=%s, end=%s", start, end)
		return ErrInfiniteSlope
	}
	if len(x) != len(y) {
		tracer().Errorf("spline fit with len(x)=%d, len(y)=%d", len(x), len(y))
		return fmt.Errorf("%w: len(x) = %d, len(y) = %d", ErrSampleSize, len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewKnots, len(x))
	}
	m, r := buildEqs(x, y, start, end)
	tracer().Debugf("tridiagonal matrix:\n%s", m.DisplayString("  "))
	tracer().Debugf("r = %v", r)
	k, err := m.Solve(r) // k.i is the tangent at knot i
	if err != nil {
		return err
	}
	tracer().Debugf("k = %v", k)
	sp.xs, sp.ys = x, y
	sp.a, sp.b = hermiteCoeffs(x, y, k)
	sp.lastIndex = 0
	tracer().Debugf("a = %v", sp.a)
	tracer().Debugf("b = %v", sp.b)
	tracer().Infof("fitted spline through %d knots, start=%s, end=%s", len(x), start, end)
	return nil
}

// IsFitted is a predicate: has Fit been called successfully?
func (sp *Spline) IsFitted() bool {
	return sp != nil && sp.a != nil
}

// N returns the number of knots of a fitted spline, 0 otherwise.
func (sp *Spline) N() int {
	if !sp.IsFitted() {
		return 0
	}
	return len(sp.xs)
}

// Coefficients returns the Hermite coefficients a.i and b.i of every segment.
// The slices are copies.
func (sp *Spline) Coefficients() ([]float64, []float64, error) {
	if !sp.IsFitted() {
		return nil, nil, ErrNotFitted
	}
	return append([]float64(nil), sp.a...), append([]float64(nil), sp.b...), nil
}

// knot i as a pair.
func (sp *Spline) knot(i int) splinefit.Pair {
	return splinefit.P(sp.xs[i], sp.ys[i])
}

// Build the tridiagonal system for the knot tangents. Every inner row states
// equal second derivatives of the segments left and right of a knot.
// End rows either pin the tangent or are "natural".
func buildEqs(x, y []float64, start, end Slope) (*tridiag.Matrix, []float64) {
	n := len(x)
	m := tridiag.New(n)
	r := make([]float64, n)
	if s, ok := start.Value(); ok {
		m.B[0] = 1
		r[0] = s
	} else {
		dx1 := x[1] - x[0]
		m.C[0] = 1 / dx1
		m.B[0] = 2 * m.C[0]
		r[0] = 3 * (y[1] - y[0]) / square(dx1)
	}
	for i := 1; i < n-1; i++ {
		dx1, dx2 := x[i]-x[i-1], x[i+1]-x[i]
		dy1, dy2 := y[i]-y[i-1], y[i+1]-y[i]
		m.A[i] = 1 / dx1
		m.C[i] = 1 / dx2
		m.B[i] = 2 * (m.A[i] + m.C[i])
		r[i] = 3 * (dy1/square(dx1) + dy2/square(dx2))
	}
	if s, ok := end.Value(); ok {
		m.B[n-1] = 1
		r[n-1] = s
	} else {
		dx1 := x[n-1] - x[n-2]
		dy1 := y[n-1] - y[n-2]
		m.A[n-1] = 1 / dx1
		m.B[n-1] = 2 * m.A[n-1]
		r[n-1] = 3 * dy1 / square(dx1)
	}
	return m, r
}

// From the knot tangents k, calculate the Hermite coefficients of every segment.
func hermiteCoeffs(x, y, k []float64) ([]float64, []float64) {
	n := len(x)
	a, b := make([]float64, n-1), make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dx := x[i+1] - x[i]
		dy := y[i+1] - y[i]
		a[i] = k[i]*dx - dy
		b[i] = -k[i+1]*dx + dy
	}
	return a, b
}
