package cspline

import (
	"fmt"
	"math"

	"github.com/npillmayer/splinefit"
	"gonum.org/v1/gonum/floats"
)

// tangentEpsilon is the minimum length of a tangent vector to be normalized.
const tangentEpsilon = 2.220446049250313e-16

// FitParametric fits a smooth curve through the points (x.i,y.i), taken in
// the order given, and samples it at m points evenly spaced along the
// curve parameter. The parameter is the cumulative length of the polyline
// through the points. Separate splines are fitted for the x- and the
// y-coordinates.
//
// start and end optionally fix the direction of the curve at its first and
// last point. Directions are normalized, a zero-length direction results in
// ErrDegenerateTangent.
//
// Consecutive duplicate points make the arc length stall; the result will
// contain NaN values in this case.
func FitParametric(x, y []float64, m int, start, end Tangent) (*Curve, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x) = %d, len(y) = %d", ErrSampleSize, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewKnots, len(x))
	}
	if m < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrOutputCount, m)
	}
	dists := ArcLength(x, y)
	total := dists[len(dists)-1]
	times := floats.Span(make([]float64, m), 0, total)
	dt := total / float64(m-1)
	tracer().Debugf("parametric fit: %d points, arc length %g, dt = %g", len(x), total, dt)
	xStart, yStart, err := tangentSlopes(start, dt)
	if err != nil {
		return nil, err
	}
	xEnd, yEnd, err := tangentSlopes(end, dt)
	if err != nil {
		return nil, err
	}
	curve := &Curve{}
	if curve.X, err = Compute(dists, x, times, xStart, xEnd); err != nil {
		return nil, err
	}
	if curve.Y, err = Compute(dists, y, times, yStart, yEnd); err != nil {
		return nil, err
	}
	tracer().Infof("fitted parametric curve through %d points, %d samples", len(x), m)
	return curve, nil
}

// FitParametricPoints is a variant of FitParametric for a slice of pairs.
func FitParametricPoints(pts []splinefit.Pair, m int, start, end Tangent) (*Curve, error) {
	x, y := splinefit.Unzip(pts)
	return FitParametric(x, y, m, start, end)
}

// ArcLength returns the cumulative length of the polyline through the
// points (x.i,y.i), starting with 0 for the first point.
// x and y must have the same length.
func ArcLength(x, y []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}
	steps := make([]float64, n)
	for i := 1; i < n; i++ {
		steps[i] = math.Hypot(x[i]-x[i-1], y[i]-y[i-1])
	}
	return floats.CumSum(steps, steps)
}

// NormalizeTangent returns the direction (dx,dy) scaled to unit length.
// Vectors of (almost) zero length cannot be normalized and result in
// ErrDegenerateTangent.
func NormalizeTangent(dx, dy float64) (splinefit.Pair, error) {
	d := math.Hypot(dx, dy)
	if !(d > tangentEpsilon) {
		tracer().Errorf("cannot normalize tangent (%g,%g)", dx, dy)
		return splinefit.Origin, fmt.Errorf("%w: (%g,%g)", ErrDegenerateTangent, dx, dy)
	}
	return splinefit.P(dx/d, dy/d), nil
}

// Convert a tangent direction into slopes for the x- and y-spline.
// Slopes against arc length are rescaled to the parameter step dt.
func tangentSlopes(t Tangent, dt float64) (Slope, Slope, error) {
	dir, ok := t.Direction()
	if !ok {
		return Natural, Natural, nil
	}
	u, err := NormalizeTangent(dir.X(), dir.Y())
	if err != nil {
		return Natural, Natural, err
	}
	return Pinned(u.X() / dt), Pinned(u.Y() / dt), nil
}

// Len returns the number of points of a curve.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}
	return min(len(c.X), len(c.Y))
}

// Point returns point i of a curve.
func (c *Curve) Point(i int) splinefit.Pair {
	return splinefit.P(c.X[i], c.Y[i])
}

// Points returns the points of a curve as pairs.
func (c *Curve) Points() []splinefit.Pair {
	if c == nil {
		return nil
	}
	return splinefit.Pairs(c.X, c.Y)
}

// Transform applies an affine transform to every point of a curve and
// returns the result as a new curve.
func (c *Curve) Transform(at splinefit.AT) *Curve {
	x, y := splinefit.Unzip(at.TransformAll(c.Points()))
	return &Curve{X: x, Y: y}
}

// Length is the length of the polyline through the points of a curve.
func (c *Curve) Length() float64 {
	if c.Len() == 0 {
		return 0
	}
	dists := ArcLength(c.X[:c.Len()], c.Y[:c.Len()])
	return dists[len(dists)-1]
}
