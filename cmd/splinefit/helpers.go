package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/cspline"
	"gonum.org/v1/gonum/floats"
)

// curveOptions configure a parametric fit.
type curveOptions struct {
	count      int
	start, end cspline.Tangent
	order      bool
	transform  splinefit.AT // nil for none
}

// functionOptions configure a fit of samples y = f(x).
type functionOptions struct {
	count      int
	start, end cspline.Slope
	withSlope  bool
}

// readPoints reads rows of two numbers. Empty lines and lines starting with
// '#' are skipped. A first row which does not parse is taken as a header.
func readPoints(r io.Reader) ([]splinefit.Pair, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var pts []splinefit.Pair
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: expected 2 columns, got %d", row, len(rec))
		}
		x, errx := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, erry := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errx != nil || erry != nil {
			if row == 1 {
				continue // header
			}
			return nil, fmt.Errorf("row %d: %w", row, errors.Join(errx, erry))
		}
		pts = append(pts, splinefit.P(x, y))
	}
	return pts, nil
}

// parseTangent parses a direction "dx,dy". An empty string is NoTangent.
func parseTangent(s string) (cspline.Tangent, error) {
	if strings.TrimSpace(s) == "" {
		return cspline.NoTangent, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return cspline.NoTangent, fmt.Errorf("tangent must be dx,dy, is %q", s)
	}
	dx, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return cspline.NoTangent, err
	}
	dy, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return cspline.NoTangent, err
	}
	return cspline.Dir(dx, dy), nil
}

// parseSlope parses a slope value. An empty string is a natural end.
func parseSlope(s string) (cspline.Slope, error) {
	if strings.TrimSpace(s) == "" {
		return cspline.Natural, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return cspline.Natural, err
	}
	return cspline.Pinned(v), nil
}

// runCurve fits a parametric curve through pts and writes the samples.
func runCurve(w *csv.Writer, pts []splinefit.Pair, opts curveOptions) error {
	if opts.order {
		pts = cspline.OrderByProximity(pts)
	}
	curve, err := cspline.FitParametricPoints(pts, opts.count, opts.start, opts.end)
	if err != nil {
		return err
	}
	if opts.transform != nil {
		curve = curve.Transform(opts.transform)
	}
	tracer().Infof("curve of length %g with %d samples", curve.Length(), curve.Len())
	for i := 0; i < curve.Len(); i++ {
		if err := w.Write(formatRow(curve.X[i], curve.Y[i])); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// runFunction fits a spline to samples y = f(x) and writes it evaluated on
// an evenly spaced grid over the sample range.
func runFunction(w *csv.Writer, pts []splinefit.Pair, opts functionOptions) error {
	if opts.count < 2 {
		return fmt.Errorf("%w: need at least 2 output points", splinefit.ErrInvalidArgument)
	}
	x, y := splinefit.Unzip(pts)
	sp, err := cspline.NewFitted(x, y, opts.start, opts.end)
	if err != nil {
		return err
	}
	grid := floats.Span(make([]float64, opts.count), x[0], x[len(x)-1])
	ys, err := sp.Eval(grid)
	if err != nil {
		return err
	}
	var slopes []float64
	if opts.withSlope {
		if slopes, err = sp.EvalSlope(grid); err != nil {
			return err
		}
	}
	for i, gx := range grid {
		row := formatRow(gx, ys[i])
		if slopes != nil {
			row = append(row, formatFloat(slopes[i]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatRow(x, y float64) []string {
	return []string{formatFloat(x), formatFloat(y)}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', outputPrecision, 64)
}
