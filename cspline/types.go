package cspline

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrNotFitted indicates evaluation before a successful call to Fit.
	ErrNotFitted = fmt.Errorf("%w: Fit must be called before evaluation", splinefit.ErrNotFitted)
	// ErrOutOfOrder indicates query values which are not sorted in ascending order.
	ErrOutOfOrder = splinefit.ErrOutOfOrder
	// ErrInfiniteSlope indicates a boundary slope of ±Inf.
	ErrInfiniteSlope = fmt.Errorf("%w: start and end slope cannot be infinity", splinefit.ErrInvalidArgument)
	// ErrTooFewKnots indicates a sample set of less than 2 knots.
	ErrTooFewKnots = fmt.Errorf("%w: a spline needs at least 2 knots", splinefit.ErrInvalidArgument)
	// ErrSampleSize indicates x- and y-values of different length.
	ErrSampleSize = fmt.Errorf("%w: x and y differ in length", splinefit.ErrSizeMismatch)
	// ErrDegenerateTangent indicates a tangent vector too short to be normalized.
	ErrDegenerateTangent = fmt.Errorf("%w: cannot normalize a degenerate tangent", splinefit.ErrInvalidArgument)
	// ErrOutputCount indicates a request for less than 2 output points.
	ErrOutputCount = fmt.Errorf("%w: need at least 2 output points", splinefit.ErrInvalidArgument)
)

// Spline is a cubic spline through a set of knots.
// Create one with New() and fit it to sample data with Fit().
type Spline struct {
	xs, ys    []float64 // knots, as given to Fit
	a, b      []float64 // Hermite coefficients a.i and b.i of segment i
	lastIndex int       // evaluation cursor: segment of the most recent query
}

// Slope is an optional boundary slope of a spline. The zero value is Natural.
type Slope struct {
	value  float64
	pinned bool
}

// Natural leaves an end of a spline un-pinned.
var Natural = Slope{}

// Pinned creates a boundary condition fixing the slope at an end of a spline.
// A NaN value is the same as Natural.
func Pinned(slope float64) Slope {
	if math.IsNaN(slope) {
		return Natural
	}
	return Slope{value: slope, pinned: true}
}

// IsPinned is a predicate: does s fix the slope?
func (s Slope) IsPinned() bool {
	return s.pinned
}

// Value returns the slope value and whether it is set.
func (s Slope) Value() (float64, bool) {
	return s.value, s.pinned
}

func (s Slope) String() string {
	if !s.pinned {
		return "natural"
	}
	return fmt.Sprintf("%g", s.value)
}

// Tangent is an optional direction at an end of a parametric curve.
// The zero value is NoTangent.
type Tangent struct {
	dir splinefit.Pair
	set bool
}

// NoTangent leaves an end of a parametric curve un-pinned.
var NoTangent = Tangent{}

// Dir creates a tangent direction (dx,dy). The length of the vector does
// not matter. If either component is NaN the result is NoTangent.
func Dir(dx, dy float64) Tangent {
	if math.IsNaN(dx) || math.IsNaN(dy) {
		return NoTangent
	}
	return Tangent{dir: splinefit.P(dx, dy), set: true}
}

// IsSet is a predicate: does t specify a direction?
func (t Tangent) IsSet() bool {
	return t.set
}

// Direction returns the (unnormalized) direction and whether it is set.
func (t Tangent) Direction() (splinefit.Pair, bool) {
	return t.dir, t.set
}

// Curve is a sequence of points, the result of a parametric fit.
type Curve struct {
	X []float64 // x-coordinates
	Y []float64 // y-coordinates
}

// Controls collects Bézier control points of the segments of a spline.
type Controls struct {
	prec  []splinefit.Pair // control point i-, before knot i
	postc []splinefit.Pair // control point i+, after knot i
}
