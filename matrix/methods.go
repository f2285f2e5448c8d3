// Package matrix provides element-wise accumulation over any Matrix
// implementation. All functions validate fail-fast and return sentinel
// errors on nil operands or shape mismatches.
package matrix

const (
	opAdd        = "Add"
	opAddInPlace = "AddInPlace"
)

// Add returns a new Matrix containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if da, ok := a.(*Dense); ok {
		copy(res.data, da.data)
	} else {
		for i := 0; i < res.r; i++ {
			for j := 0; j < res.c; j++ {
				v, _ := a.At(i, j) // safe: bounds ensured
				res.data[i*res.c+j] = v
			}
		}
	}
	if err = AddInPlace(res, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return res, nil
}

// AddInPlace accumulates src into dst (dst += src). It is the reduction step
// of multi-round kernel aggregation: the accumulator keeps its shape for the
// whole run.
// Complexity: O(r·c) time, O(1) extra memory.
func AddInPlace(dst *Dense, src Matrix) error {
	if dst == nil {
		return matrixErrorf(opAddInPlace, ErrNilMatrix)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}

	// Fast-path: flat buffers of identical layout.
	if ds, ok := src.(*Dense); ok {
		for idx := range dst.data {
			dst.data[idx] += ds.data[idx]
		}
		return nil
	}

	// Fallback: generic interface loop.
	for i := 0; i < dst.r; i++ {
		for j := 0; j < dst.c; j++ {
			v, _ := src.At(i, j) // safe: same shape
			dst.data[i*dst.c+j] += v
		}
	}

	return nil
}
