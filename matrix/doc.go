// Package matrix provides the dense numeric surface used by the graph
// kernels: a row-major float64 Dense matrix, element-wise accumulation, and
// diagonal-based kernel normalization.
//
// Kernel matrices flow through this package in three shapes:
//
//	Gram matrix   n×n       fit dataset against itself
//	Query matrix  m×n       m query graphs (rows) against n fitted graphs (cols)
//	Diagonal      []float64 per-graph self-similarity k(G,G)
//
// Operations:
//
//	NewDense(r, c)                        // zero matrix, r,c > 0
//	Add(a, b) / AddInPlace(dst, src)      // element-wise sum
//	Diagonal(m)                           // main diagonal of a square matrix
//	NormalizeByDiagonals(m, rows, cols)   // m[i,j] / sqrt(rows[i]*cols[j])
//	ValidateSymmetric(m, tol)             // Gram-matrix sanity check
//
// Numeric policy: Set rejects NaN/±Inf (ErrNaNInf). Normalization maps a
// zero denominator to 0 instead of producing NaN.
//
// Errors are package sentinels; test with errors.Is.
package matrix
