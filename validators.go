// Package elmat: canonical index validation.
// Mutators and accessors delegate every bounds check here so that the
// accept/reject contract stays identical across the whole surface, and
// validation always precedes mutation (failed calls leave the matrix
// untouched).

package elmat

// checkIndex validates 0 <= i < total for operations that address an
// existing row or column. Returns a wrapped ErrOutOfRange otherwise.
// Complexity: O(1).
func checkIndex(op string, i, total int) error {
	if i < 0 || i >= total {
		return indexErrorf(op, i, total)
	}

	return nil
}

// checkInsertIndex validates 0 <= i <= total for insert-before
// operations, where i == total means "append".
// Complexity: O(1).
func checkInsertIndex(op string, i, total int) error {
	if i < 0 || i > total {
		return indexErrorf(op, i, total)
	}

	return nil
}

// checkCell validates that (x,y) addresses an existing cell.
// Complexity: O(1).
func (m *Matrix[T]) checkCell(op string, x, y int) error {
	if x < 0 || x >= len(m.cols) || y < 0 || y >= m.rows() {
		return coordErrorf(op, x, y)
	}

	return nil
}
