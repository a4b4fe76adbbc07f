// Package cspline fits interpolating cubic splines through sample points and
// evaluates them.
/*

A cubic spline through knots (x.0,y.0) … (x.n-1,y.n-1) is a chain of cubic
segments, one per pair of neighbouring knots. The curve passes through every
knot exactly, and first and second derivatives are continuous at the inner
knots. These conditions couple the tangent k.i at every knot to the tangents
of its neighbours only, resulting in a tridiagonal system of linear equations
(see package tridiag). Every segment is then expressed in Hermite form

	q(t) = (1-t)⋅y.i + t⋅y.i+1 + t(1-t)⋅(a.i(1-t) + b.i⋅t)

with t running from 0 to 1 between x.i and x.i+1.

The notation follows

	Cubic Spline Interpolation -- Wikipedia
	https://en.wikipedia.org/wiki/Spline_interpolation

Usage

Clients fit a spline to a sample set and evaluate it in batches:

	sp := cspline.New()
	err := sp.Fit(xs, ys, cspline.Natural, cspline.Pinned(0))
	...
	ys, err := sp.Eval([]float64{0.5, 1.0, 1.5})
	slopes, err := sp.EvalSlope([]float64{0.5, 1.0, 1.5})

Query values of a batch must be sorted in ascending order. The spline walks
its segments with a cursor, which never moves backwards within a batch.

Un-pinned ends are "natural" ends: the end tangent is derived from the
neighbouring segment alone.

For 2-D curves through a sequence of points, FitParametric fits two splines,
one for each coordinate, against the cumulative arc length of the polyline
through the points:

	curve, err := cspline.FitParametric(xs, ys, 100, cspline.NoTangent, cspline.Dir(1, 0))
	for _, pt := range curve.Points() {
		...
	}

Caveats

x-values must be strictly increasing. This is not checked; unsorted or
duplicate x-values result in Inf or NaN values rather than in errors.

A Spline is not safe for concurrent use.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package cspline

import (
	"fmt"
	"strings"
)

// AsString returns a spline -- including Bézier control points -- as a
// (debugging) string, one segment per line. An unfitted spline is
// rendered as "<unfitted>".
//
// Example, the straight line through (0,0), (1,1), (2,2):
//
//	(0,0) .. controls (0.3333,0.3333) and (0.6667,0.6667)
//	  .. (1,1) .. controls (1.3333,1.3333) and (1.6667,1.6667)
//	  .. (2,2)
func AsString(sp *Spline) string {
	contr, err := sp.Controls()
	if err != nil {
		return "<unfitted>"
	}
	var s strings.Builder
	for i := 0; i < sp.N(); i++ {
		if i > 0 {
			s.WriteString(fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true)))
		}
		s.WriteString(ptstring(sp.knot(i), false))
		if i < sp.N()-1 {
			s.WriteString(fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true)))
		}
	}
	return s.String()
}
