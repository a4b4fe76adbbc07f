package tridiag

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinefit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// 3x3 system with solution x = (1, 2, 3).
func threeByThree(t *testing.T) (*Matrix, []float64) {
	t.Helper()
	m := New(3)
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Set(i, i, 2))
	}
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 1))
	require.NoError(t, m.Set(1, 2, 1))
	require.NoError(t, m.Set(2, 1, 1))
	return m, []float64{4, 8, 8}
}

func TestSetAndGet(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m, _ := threeByThree(t)
	assert.Equal(t, 3, m.N())
	assert.Equal(t, 2.0, m.At(1, 1))
	assert.Equal(t, 1.0, m.At(1, 0))
	assert.Equal(t, 1.0, m.At(1, 2))
	assert.Equal(t, 0.0, m.At(0, 2))
	assert.Equal(t, 0.0, m.At(5, 5))
	assert.Equal(t, 1.0, m.A[1])
	assert.Equal(t, 1.0, m.C[1])
}

func TestSetOffDiagonal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := New(4)
	err := m.Set(0, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidDiagonal)
	assert.ErrorIs(t, err, splinefit.ErrInvalidArgument)
	assert.ErrorIs(t, m.Set(3, 0, 1), ErrInvalidDiagonal)
	assert.ErrorIs(t, m.Set(0, -1, 1), ErrInvalidDiagonal)
	assert.ErrorIs(t, m.Set(3, 4, 1), ErrInvalidDiagonal)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, m.A[i])
		assert.Equal(t, 0.0, m.B[i])
		assert.Equal(t, 0.0, m.C[i])
	}
}

func TestSolveThreeByThree(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m, d := threeByThree(t)
	x, err := m.Solve(d)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, 2, 3}, x, approx); diff != "" {
		t.Errorf("unexpected solution (-want +got):\n%s", diff)
	}
	assert.Equal(t, []float64{4, 8, 8}, d, "rhs must not be modified")
}

func TestSolveSizeMismatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m, _ := threeByThree(t)
	_, err := m.Solve([]float64{1, 2})
	assert.ErrorIs(t, err, ErrSizeMismatch)
	assert.True(t, errors.Is(err, splinefit.ErrSizeMismatch))
}

func TestSolveEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := New(0)
	x, err := m.Solve(nil)
	require.NoError(t, err)
	assert.Empty(t, x)
	assert.Nil(t, m.Dense())
	assert.Equal(t, "0x0 matrix", m.DisplayString(""))
	assert.Equal(t, 0, New(-3).N())
}

func TestSolveSingle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := New(1)
	require.NoError(t, m.Set(0, 0, 4))
	x, err := m.Solve([]float64{2})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, x[0], 1e-15)
}

func TestSolveZeroPivotPropagates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := New(2)
	x, err := m.Solve([]float64{1, 1})
	require.NoError(t, err)
	for _, v := range x {
		assert.True(t, math.IsNaN(v) || math.IsInf(v, 0), "expected Inf or NaN, got %g", v)
	}
}

func TestSolveAgreesWithDense(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewPCG(4711, 42))
	for _, n := range []int{2, 5, 17, 64} {
		m := New(n)
		d := make([]float64, n)
		for i := 0; i < n; i++ {
			if i > 0 {
				m.A[i] = rnd.Float64()*2 - 1
			}
			if i < n-1 {
				m.C[i] = rnd.Float64()*2 - 1
			}
			m.B[i] = 2.5 + rnd.Float64() // diagonally dominant
			d[i] = rnd.Float64()*10 - 5
		}
		x, err := m.Solve(d)
		require.NoError(t, err)
		var want mat.VecDense
		require.NoError(t, want.SolveVec(m.Dense(), mat.NewVecDense(n, d)))
		if diff := cmp.Diff(want.RawVector().Data, x, approx); diff != "" {
			t.Errorf("n=%d: solution differs from dense solve (-want +got):\n%s", n, diff)
		}
	}
}

func TestDense(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m, _ := threeByThree(t)
	m.A[0], m.C[2] = 99, 99 // outside of the matrix, must not show up
	want := mat.NewDense(3, 3, []float64{
		2, 1, 0,
		1, 2, 1,
		0, 1, 2,
	})
	assert.True(t, mat.Equal(want, m.Dense()))
	s := m.DisplayString("  ")
	t.Logf("matrix:\n%s", s)
	assert.Equal(t, 3, strings.Count(s, "\n")+1)
	assert.True(t, strings.HasPrefix(s, "  "))
}
