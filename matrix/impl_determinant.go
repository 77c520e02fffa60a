// SPDX-License-Identifier: MIT
// Package matrix: exact determinant and adjugate-based inverse.
//
// Purpose:
//   - Compute determinants by recursive Laplace (cofactor) expansion, exact in
//     the element type T (no pivoting, no floating-point reordering).
//   - Build the inverse as adjugate / determinant from the same minor kernel.
//
// Orientation:
//   - Both algorithms read the PHYSICAL storage and ignore the transposed flag.
//     This is sound because det(Aᵀ) = det(A); Inverse transposes its result
//     back when the receiver is in transposed view, so (Aᵀ)⁻¹ = (A⁻¹)ᵀ is
//     returned in the caller's logical orientation.
//
// Complexity:
//   - CompDeterm: O(n!) time, O(n) extra space (masks + recursion depth n).
//   - Inverse:    O(n²·(n-1)!) time. Intended for small transforms (≤ 4×4..6×6).

package matrix

// activeMask returns a mask of n entries, all active.
func activeMask(n int) []bool {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}

	return mask
}

// CompDeterm computes and caches the determinant.
// MAIN DESCRIPTION:
//   - No-op when the determinant is already cached (Identity pre-populates it).
//
// Errors:
//   - ErrNonSquareMatrix when the matrix is not square.
//
// Complexity:
//   - Time O(n!), Space O(n).
func (m *Matrix[T]) CompDeterm() error {
	if err := ValidateSquare(m.initial); err != nil {
		return matrixErrorf(opCompDeterm, err)
	}
	if m.hasDet {
		return nil
	}
	n := m.initial.Width
	m.setDeterm(m.minor(activeMask(n), activeMask(n)))

	return nil
}

// minor returns the determinant of the subsystem of still-active rows and
// columns, expanding along the first active row.
//
// Implementation:
//   - Stage 1: find the first active row; none left ⇒ empty system ⇒ one.
//   - Stage 2: deactivate it; for each active column (local position j),
//     deactivate the column, recurse, accumulate (-1)^j · a[row,col] · minor,
//     reactivate the column.
//   - Stage 3: reactivate the row; masks are restored on return.
//
// Notes:
//   - Zero entries are skipped (their term vanishes), j still advances.
//   - Recursion depth equals the number of active rows.
func (m *Matrix[T]) minor(rows, cols []bool) T {
	n := m.initial.Width
	row := 0
	for row < n && !rows[row] {
		row++
	}
	if row == n {
		return one[T]()
	}
	rows[row] = false

	acc := zero[T]()
	j := 0 // position of col among the active columns
	for col := 0; col < n; col++ {
		if !cols[col] {
			continue
		}
		if v := m.data[row*n+col]; v != zero[T]() {
			cols[col] = false
			acc += powMinus[T](j) * v * m.minor(rows, cols)
			cols[col] = true
		}
		j++
	}
	rows[row] = true

	return acc
}

// Inverse returns A⁻¹ = adj(A) / det(A) as a new Matrix.
// MAIN DESCRIPTION:
//   - Uses the cached determinant; does not compute it.
//
// Implementation:
//   - Stage 1: validate square; require a cached determinant that is not zero.
//   - Stage 2: for every (row, col): mask out row `col` and column `row`
//     (transposed cofactor indexing yields the adjugate directly), take the
//     minor, sign it with (-1)^(row+col), divide by det.
//   - Stage 3: transpose the result when the receiver is in transposed view.
//
// Errors:
//   - ErrNonSquareMatrix, ErrUnknownDeterminant, ErrZeroDeterminant.
//
// Complexity:
//   - Time O(n²·(n-1)!), Space O(n²).
//
// Notes:
//   - For integer T the division truncates; use a float T for exact rationals.
//   - The result carries the receiver's determinant policy, not its cache.
func (m *Matrix[T]) Inverse() (*Matrix[T], error) {
	if err := ValidateSquare(m.initial); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if !m.hasDet {
		return nil, matrixErrorf(opInverse, ErrUnknownDeterminant)
	}
	det := m.det
	if det == zero[T]() {
		return nil, matrixErrorf(opInverse, ErrZeroDeterminant)
	}

	n := m.initial.Width
	rows, cols := activeMask(n), activeMask(n)
	inv := newMatrix[T](m.initial, Options{trackDeterm: m.trackDeterm})
	var row, col int
	for row = 0; row < n; row++ {
		cols[row] = false
		for col = 0; col < n; col++ {
			rows[col] = false
			inv.data[row*n+col] = powMinus[T](row+col) * m.minor(rows, cols) / det
			rows[col] = true
		}
		cols[row] = true
	}

	if m.transposed {
		inv.Transpose()
	}

	return inv, nil
}
