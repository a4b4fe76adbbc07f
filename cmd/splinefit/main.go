// Command splinefit fits a cubic spline through sample points read as CSV
// and writes the sampled curve as CSV.
//
// By default the input rows are points (x,y) in travel order, and a smooth
// parametric curve is fitted through them. With -function the rows are
// samples y = f(x) with increasing x, and the spline is evaluated on an
// evenly spaced grid of x-values.
//
//	splinefit -in points.csv -n 500 -start 1,0 > curve.csv
//	splinefit -function -slope -in samples.csv > f.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
)

func tracer() tracing.Trace {
	return tracing.Select("splinefit")
}

func main() {
	var (
		input    = flag.String("in", "-", "Input CSV file with one x,y pair per row ('-' for stdin)")
		count    = flag.Int("n", defaultOutputCount, "Number of output points")
		start    = flag.String("start", "", "Start tangent dx,dy (parametric) or start slope (function)")
		end      = flag.String("end", "", "End tangent dx,dy (parametric) or end slope (function)")
		order    = flag.Bool("order", false, "Order input points by proximity before fitting")
		function = flag.Bool("function", false, "Treat input as samples y=f(x) instead of points of a curve")
		slope    = flag.Bool("slope", false, "With -function: add a column with the slope")
		rotate   = flag.Float64("rotate", 0, "Rotate the output curve counter-clockwise by degrees")
	)
	flag.Parse()

	r, closer, err := openInput(*input)
	if err != nil {
		log.Fatalf("Cannot open input: %v", err)
	}
	defer closer()
	pts, err := readPoints(r)
	if err != nil {
		log.Fatalf("Cannot read input: %v", err)
	}
	tracer().Infof("read %d points from %s", len(pts), *input)

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if *function {
		opts := functionOptions{count: *count, withSlope: *slope}
		if opts.start, err = parseSlope(*start); err != nil {
			log.Fatalf("Invalid -start: %v", err)
		}
		if opts.end, err = parseSlope(*end); err != nil {
			log.Fatalf("Invalid -end: %v", err)
		}
		if err = runFunction(w, pts, opts); err != nil {
			log.Fatalf("Fitting failed: %v", err)
		}
		return
	}
	opts := curveOptions{count: *count, order: *order}
	if opts.start, err = parseTangent(*start); err != nil {
		log.Fatalf("Invalid -start: %v", err)
	}
	if opts.end, err = parseTangent(*end); err != nil {
		log.Fatalf("Invalid -end: %v", err)
	}
	if *rotate != 0 {
		opts.transform = splinefit.Rotation(*rotate * splinefit.Deg2Rad)
	}
	if err = runCurve(w, pts, opts); err != nil {
		log.Fatalf("Fitting failed: %v", err)
	}
}

func openInput(name string) (io.Reader, func(), error) {
	if name == "-" || name == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, func() { _ = f.Close() }, nil
}
