package cspline

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/splinefit"
)

// Extend an array/slice of pairs to make room for index i.
// Will do nothing if the array is already large enough.
func extendC(arr []splinefit.Pair, i int, deflt splinefit.Pair) []splinefit.Pair {
	l := len(arr)
	if i >= l {
		arr = append(arr, make([]splinefit.Pair, i-l+1)...)
		for ; i >= l; i-- {
			arr[i] = deflt
		}
	}
	return arr
}

// Get a value from an array/slice if present, default value deflt otherwise.
func getC(arr []splinefit.Pair, i int, deflt splinefit.Pair) splinefit.Pair {
	if i < 0 || i >= len(arr) {
		return deflt
	}
	return arr[i]
}

// Return a^2 for a.
func square(a float64) float64 {
	return a * a
}

func isInf(a float64) bool {
	return math.IsInf(a, 0)
}

func ptstring(p splinefit.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}

// OrderByProximity orders points into a path by repeatedly stepping to the
// nearest point not yet visited, starting with the first point. Useful for
// point clouds collected without a travel order, before fitting a parametric
// curve through them. The argument is left unchanged.
func OrderByProximity(pts []splinefit.Pair) []splinefit.Pair {
	if len(pts) == 0 {
		return nil
	}
	rest := make([]splinefit.Pair, len(pts)-1)
	copy(rest, pts[1:])
	path := make([]splinefit.Pair, 0, len(pts))
	current := pts[0]
	path = append(path, current)
	for len(rest) > 0 {
		nearest, dist := 0, math.Inf(1)
		for i, p := range rest {
			if d := current.Dist(p); d < dist {
				nearest, dist = i, d
			}
		}
		current = rest[nearest]
		path = append(path, current)
		rest = append(rest[:nearest], rest[nearest+1:]...)
	}
	tracer().Debugf("ordered %d points by proximity", len(path))
	return path
}
