package main

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/cspline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOutput(t *testing.T, out string) [][]float64 {
	t.Helper()
	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	rows := make([][]float64, len(recs))
	for i, rec := range recs {
		for _, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			require.NoError(t, err)
			rows[i] = append(rows[i], v)
		}
	}
	return rows
}

func TestReadPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	in := "x,y\n# a comment\n0,0\n1, 2.5\n\n3,-1\n"
	pts, err := readPoints(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []splinefit.Pair{splinefit.P(0, 0), splinefit.P(1, 2.5), splinefit.P(3, -1)}, pts)
	_, err = readPoints(strings.NewReader("0,0\n1,x\n"))
	assert.Error(t, err)
	_, err = readPoints(strings.NewReader("0,0\n1\n"))
	assert.Error(t, err)
}

func TestParseTangent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tan, err := parseTangent("")
	require.NoError(t, err)
	assert.False(t, tan.IsSet())
	tan, err = parseTangent(" 1, -2 ")
	require.NoError(t, err)
	dir, ok := tan.Direction()
	assert.True(t, ok)
	assert.Equal(t, splinefit.P(1, -2), dir)
	_, err = parseTangent("1")
	assert.Error(t, err)
	_, err = parseTangent("a,b")
	assert.Error(t, err)
}

func TestParseSlope(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := parseSlope("")
	require.NoError(t, err)
	assert.False(t, s.IsPinned())
	s, err = parseSlope("0.5")
	require.NoError(t, err)
	v, ok := s.Value()
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)
	_, err = parseSlope("steep")
	assert.Error(t, err)
}

func TestRunCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []splinefit.Pair{splinefit.P(0, 0), splinefit.P(1, 1), splinefit.P(1, 0), splinefit.P(0, 1)}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := runCurve(w, pts, curveOptions{count: 4, order: false, transform: splinefit.Translation(splinefit.P(10, 0))})
	require.NoError(t, err)
	rows := parseOutput(t, buf.String())
	require.Len(t, rows, 4)
	assert.InDelta(t, 10.0, rows[0][0], 1e-9)
	assert.InDelta(t, 0.0, rows[0][1], 1e-9)
	assert.InDelta(t, 10.0, rows[3][0], 1e-9)
	assert.InDelta(t, 1.0, rows[3][1], 1e-9)
	buf.Reset()
	err = runCurve(w, pts, curveOptions{count: 1})
	assert.ErrorIs(t, err, splinefit.ErrInvalidArgument)
}

func TestRunFunction(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []splinefit.Pair{splinefit.P(0, 0), splinefit.P(1, 1), splinefit.P(2, 2)}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := runFunction(w, pts, functionOptions{count: 5, start: cspline.Natural, end: cspline.Natural, withSlope: true})
	require.NoError(t, err)
	rows := parseOutput(t, buf.String())
	require.Len(t, rows, 5)
	for i, row := range rows {
		require.Len(t, row, 3)
		assert.InDelta(t, float64(i)/2, row[0], 1e-12)
		assert.InDelta(t, row[0], row[1], 1e-9)
		assert.InDelta(t, 1.0, row[2], 1e-9)
	}
	err = runFunction(w, pts[:1], functionOptions{count: 5})
	assert.ErrorIs(t, err, cspline.ErrTooFewKnots)
	err = runFunction(w, pts, functionOptions{count: 0})
	assert.ErrorIs(t, err, splinefit.ErrInvalidArgument)
}
