// SPDX-License-Identifier: MIT

package wl

import (
	"github.com/katalvlaran/wlkernel/matrix"
	"github.com/pkg/errors"
)

// sumRounds adds the per-round matrices in round order into a fresh
// rows×cols accumulator.
func sumRounds(parts []*matrix.Dense, rows, cols int) (*matrix.Dense, error) {
	total, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for i, m := range parts {
		if err = matrix.AddInPlace(total, m); err != nil {
			return nil, errors.WithMessagef(err, "round %d: base kernel matrix", i)
		}
	}

	return total, nil
}

// sumDiagonals adds per-round diagonals of length n.
func sumDiagonals(parts [][]float64, n int) ([]float64, error) {
	out := make([]float64, n)
	for i, d := range parts {
		if err := matrix.ValidateVecLen(d, n); err != nil {
			return nil, errors.WithMessagef(err, "round %d", i)
		}
		for j, v := range d {
			out[j] += v
		}
	}

	return out, nil
}

// normalize divides K[a,b] by sqrt(rowDiag[a]*colDiag[b]).
func normalize(k *matrix.Dense, rowDiag, colDiag []float64) (*matrix.Dense, error) {
	n, err := matrix.NormalizeByDiagonals(k, rowDiag, colDiag)
	if err != nil {
		return nil, errors.WithMessage(err, "normalize")
	}

	return n, nil
}
