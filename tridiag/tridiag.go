// Package tridiag represents and solves linear systems with a tridiagonal
// coefficient matrix.
/*
A tridiagonal matrix has non-zero entries on the main diagonal and on the
two diagonals directly next to it only:

	| b.0 c.0                 |
	| a.1 b.1 c.1             |
	|     a.2 b.2 c.2         |
	|         ..  ..  ..      |
	|             a.n b.n     |

Systems of this shape arise when fitting interpolating splines, where every
knot is coupled to its immediate neighbours only. They are solved in linear
time by the Thomas algorithm, a forward sweep followed by back substitution.

No pivoting is performed. The solver relies on the system being diagonally
dominant, which is the case for the spline systems of package cspline. A zero
denominator is not intercepted: it shows up as Inf or NaN in the solution.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package tridiag

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinefit"
	"gonum.org/v1/gonum/mat"
)

// T traces to the equations tracer.
func T() tracing.Trace {
	return tracing.Select("equations")
}

var (
	// ErrInvalidDiagonal indicates an element access off the three diagonals.
	ErrInvalidDiagonal = fmt.Errorf("%w: only the main, super and sub diagonal can be set",
		splinefit.ErrInvalidArgument)
	// ErrSizeMismatch indicates a right hand side of wrong length.
	ErrSizeMismatch = fmt.Errorf("%w: right hand side does not match matrix size",
		splinefit.ErrSizeMismatch)
)

// Matrix is a square tridiagonal matrix of size n.
//
// A is the sub-diagonal, B the main diagonal and C the super-diagonal.
// A[0] and C[n-1] lie outside of the matrix and are never used.
type Matrix struct {
	A []float64 // A[i] is element (i, i-1)
	B []float64 // B[i] is element (i, i)
	C []float64 // C[i] is element (i, i+1)
}

// New creates a tridiagonal matrix of size n with all elements set to 0.
func New(n int) *Matrix {
	n = max(n, 0)
	return &Matrix{
		A: make([]float64, n),
		B: make([]float64, n),
		C: make([]float64, n),
	}
}

// N returns the size of the matrix.
func (m *Matrix) N() int {
	if m == nil {
		return 0
	}
	return len(m.B)
}

// At returns element (row, col). Elements off the three diagonals are 0.
func (m *Matrix) At(row, col int) float64 {
	if !m.inside(row, col) {
		return 0
	}
	switch row - col {
	case 0:
		return m.B[row]
	case -1:
		return m.C[row]
	case 1:
		return m.A[row]
	}
	return 0
}

// Set sets element (row, col). Only elements on the main, sub and super
// diagonal may be set; for any other position ErrInvalidDiagonal is returned.
func (m *Matrix) Set(row, col int, value float64) error {
	if !m.inside(row, col) {
		return fmt.Errorf("%w: (%d,%d) outside of %dx%d matrix", ErrInvalidDiagonal,
			row, col, m.N(), m.N())
	}
	switch row - col {
	case 0:
		m.B[row] = value
	case -1:
		m.C[row] = value
	case 1:
		m.A[row] = value
	default:
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidDiagonal, row, col)
	}
	return nil
}

func (m *Matrix) inside(row, col int) bool {
	n := m.N()
	return row >= 0 && row < n && col >= 0 && col < n
}

// Solve solves the system M·x = d for x, using the Thomas algorithm.
// d must have length N, otherwise ErrSizeMismatch is returned.
//
// The matrix is not modified. Solve does not guard against zero pivots;
// for singular or badly conditioned systems the result will contain Inf or NaN.
func (m *Matrix) Solve(d []float64) ([]float64, error) {
	n := m.N()
	if len(d) != n {
		T().Errorf("tridiagonal solve: rhs has length %d, matrix has size %d", len(d), n)
		return nil, fmt.Errorf("%w: len(d) = %d, n = %d", ErrSizeMismatch, len(d), n)
	}
	x := make([]float64, n)
	if n == 0 {
		return x, nil
	}
	cPrime := make([]float64, n)
	dPrime := make([]float64, n)
	cPrime[0] = m.C[0] / m.B[0]
	dPrime[0] = d[0] / m.B[0]
	for i := 1; i < n; i++ { // forward sweep
		denom := m.B[i] - cPrime[i-1]*m.A[i]
		cPrime[i] = m.C[i] / denom
		dPrime[i] = (d[i] - dPrime[i-1]*m.A[i]) / denom
	}
	x[n-1] = dPrime[n-1]
	for i := n - 2; i >= 0; i-- { // back substitution
		x[i] = dPrime[i] - cPrime[i]*x[i+1]
	}
	T().Debugf("tridiagonal solve: x = %v", x)
	return x, nil
}

// Dense returns a dense copy of the matrix. Returns nil for an empty matrix.
func (m *Matrix) Dense() *mat.Dense {
	n := m.N()
	if n == 0 {
		return nil
	}
	dense := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		dense.Set(i, i, m.B[i])
		if i > 0 {
			dense.Set(i, i-1, m.A[i])
		}
		if i < n-1 {
			dense.Set(i, i+1, m.C[i])
		}
	}
	return dense
}

// DisplayString returns the matrix in a multi-line format, suitable for
// debugging output. Every line starts with prefix.
func (m *Matrix) DisplayString(prefix string) string {
	if m.N() == 0 {
		return prefix + "0x0 matrix"
	}
	return fmt.Sprintf("%s%.4g", prefix, mat.Formatted(m.Dense(), mat.Prefix(prefix), mat.Squeeze()))
}

// String is a one-line debugging representation of the three diagonals.
func (m *Matrix) String() string {
	return fmt.Sprintf("tridiag{A=%v, B=%v, C=%v}", m.A, m.B, m.C)
}
