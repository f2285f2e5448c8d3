// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Diagonal extraction and cosine-style normalization of kernel matrices.
//
// Determinism & Performance:
//   - Fixed i→j loop order; one output allocation; O(r*c) time.

package matrix

import "math"

const (
	opDiagonal  = "Diagonal"
	opNormalize = "NormalizeByDiagonals"
)

// Diagonal returns a copy of the main diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity: O(n).
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}

	n := m.Rows()
	out := make([]float64, n)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			out[i] = d.data[i*d.c+i]
		}
		return out, nil
	}
	for i := 0; i < n; i++ {
		out[i], _ = m.At(i, i)
	}

	return out, nil
}

// NormalizeByDiagonals returns out[i,j] = m[i,j] / sqrt(rowDiag[i] * colDiag[j]).
//
// For a Gram matrix pass the same diagonal twice; for a query×fit matrix pass
// the query diagonal as rowDiag and the fit diagonal as colDiag.
// A zero (or negative) denominator product yields 0 for that cell.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (vector lengths vs shape).
//
// Complexity: O(r*c).
func NormalizeByDiagonals(m Matrix, rowDiag, colDiag []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	r, c := m.Rows(), m.Cols()
	if err := ValidateVecLen(rowDiag, r); err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	if err := ValidateVecLen(colDiag, c); err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}

	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	d, isDense := m.(*Dense)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var v float64
			if isDense {
				v = d.data[i*c+j]
			} else {
				v, _ = m.At(i, j)
			}
			den := rowDiag[i] * colDiag[j]
			if den <= 0 {
				continue // zero self-similarity: leave 0
			}
			out.data[i*c+j] = v / math.Sqrt(den)
		}
	}

	return out, nil
}
