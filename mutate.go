// Package elmat: mutation engine.
// Insertion, removal and replacement of whole rows and columns. The
// engine owns the stretch algorithm (growing the orthogonal dimension
// before a splice so that every existing vector receives its padding
// cell) and the empty-matrix bootstrap (a placeholder vector that is
// spliced against and then discarded, so the observable history is one
// clean insertion).

package elmat

import "slices"

// AddRow appends a row at the bottom of the matrix.
// Missing values (fewer than Cols) become absent cells; extra values
// stretch the matrix by appending columns. On an empty matrix the
// result is (1,1) with an absent cell when no values are given, or
// (len(values),1) otherwise.
// Complexity: O(x*y) worst case (splice per column).
func (m *Matrix[T]) AddRow(values ...T) {
	// Appending at rows() always passes the insert-index check.
	_ = m.AddRowBefore(m.rows(), values...)
}

// AddRowBefore inserts a row at index y, shifting subsequent rows down
// by one; y may equal Rows(), which appends. Values follow the same
// padding and stretch contract as AddRow. Returns ErrOutOfRange for a
// negative y or y > Rows(), leaving the matrix unchanged.
//
// Stage 1: validate the insertion index.
// Stage 2: bootstrap an empty matrix with a one-cell placeholder column.
// Stage 3: stretch by appending columns until len(values) fit.
// Stage 4: splice one cell into every column at index y.
// Stage 5: drop the placeholder row left over from the bootstrap.
//
// Complexity: O(x*y) worst case.
func (m *Matrix[T]) AddRowBefore(y int, values ...T) error {
	if err := checkInsertIndex(ctxAddRowBefore, y, m.rows()); err != nil {
		return err
	}
	wasEmpty := len(m.cols) == 0
	if wasEmpty {
		// Placeholder column: gives the splice a one-row lattice to land on.
		m.cols = append(m.cols, make([]Cell[T], 1))
	}
	for len(m.cols) < len(values) {
		m.AddColumn()
	}
	var c Cell[T]
	for x := range m.cols {
		c = None[T]()
		if x < len(values) {
			c = Some(values[x])
		}
		m.cols[x] = slices.Insert(m.cols[x], y, c)
	}
	if wasEmpty {
		// Two rows exist here, so the removal cannot fail or collapse.
		_, _ = m.RemoveRow(y + 1)
	}

	return nil
}

// AddRowAfter inserts a row immediately after index y, making the new
// one row y+1. Requires 0 <= y < Rows(); returns ErrOutOfRange
// otherwise (in particular, always, on an empty matrix).
// Complexity: O(x*y) worst case.
func (m *Matrix[T]) AddRowAfter(y int, values ...T) error {
	if err := checkIndex(ctxAddRowAfter, y, m.rows()); err != nil {
		return err
	}

	return m.AddRowBefore(y+1, values...)
}

// AddColumn appends a column at the right edge of the matrix.
// Missing values (fewer than Rows) become absent cells; extra values
// stretch the matrix by appending rows. On an empty matrix the result
// is (1,1) with an absent cell when no values are given, or
// (1,len(values)) otherwise.
// Complexity: O(x + y) amortized; O(x*y) when stretching.
func (m *Matrix[T]) AddColumn(values ...T) {
	_ = m.AddColumnBefore(len(m.cols), values...)
}

// AddColumnBefore inserts a column at index x, shifting subsequent
// columns right by one; x may equal Cols(), which appends. Values
// follow the same padding and stretch contract as AddColumn. Returns
// ErrOutOfRange for a negative x or x > Cols(), leaving the matrix
// unchanged.
//
// Stage 1: validate the insertion index.
// Stage 2: stretch by appending rows until len(values) fit (this also
// bootstraps an empty matrix with a placeholder column).
// Stage 3: build the new column, padded with absent cells.
// Stage 4: splice it into the arena; discard the bootstrap placeholder.
//
// Complexity: O(x + y); O(x*y) when stretching.
func (m *Matrix[T]) AddColumnBefore(x int, values ...T) error {
	if err := checkInsertIndex(ctxAddColumnBefore, x, len(m.cols)); err != nil {
		return err
	}
	wasEmpty := len(m.cols) == 0
	for m.rows() < len(values) {
		m.AddRow()
	}
	// max(rows,1): on a still-empty matrix the new column is its first row too.
	col := make([]Cell[T], max(m.rows(), 1))
	for y := 0; y < len(values) && y < len(col); y++ {
		col[y] = Some(values[y])
	}
	m.cols = slices.Insert(m.cols, x, col)
	if wasEmpty && len(values) > 0 {
		// The row stretch above bootstrapped a placeholder column; drop it.
		_, _ = m.RemoveColumn(x + 1)
	}

	return nil
}

// AddColumnAfter inserts a column immediately after index x, making the
// new one column x+1. Requires 0 <= x < Cols(); returns ErrOutOfRange
// otherwise (in particular, always, on an empty matrix).
// Complexity: O(x + y); O(x*y) when stretching.
func (m *Matrix[T]) AddColumnAfter(x int, values ...T) error {
	if err := checkIndex(ctxAddColumnAfter, x, len(m.cols)); err != nil {
		return err
	}

	return m.AddColumnBefore(x+1, values...)
}

// RemoveRow removes the row at index y and returns it as an independent
// copy. When the last row is removed the matrix collapses to (0,0).
// Returns ErrOutOfRange for an invalid y, leaving the matrix unchanged.
// Complexity: O(x*y) worst case.
func (m *Matrix[T]) RemoveRow(y int) ([]Cell[T], error) {
	if err := checkIndex(ctxRemoveRow, y, m.rows()); err != nil {
		return nil, err
	}
	row := make([]Cell[T], len(m.cols))
	for x := range m.cols {
		row[x] = m.cols[x][y]
		m.cols[x] = slices.Delete(m.cols[x], y, y+1)
	}
	if m.rows() == 0 {
		// No half-empty state: zero rows means zero columns.
		m.Clear()
	}

	return row, nil
}

// RemoveFirstRow removes row 0; ErrOutOfRange on an empty matrix.
func (m *Matrix[T]) RemoveFirstRow() ([]Cell[T], error) {
	return m.RemoveRow(0)
}

// RemoveLastRow removes the bottom row; ErrOutOfRange on an empty matrix.
func (m *Matrix[T]) RemoveLastRow() ([]Cell[T], error) {
	return m.RemoveRow(m.rows() - 1)
}

// RemoveColumn removes the column at index x and returns it; the
// returned slice is no longer referenced by the matrix. Removing the
// last column empties the arena, which is the (0,0) state. Returns
// ErrOutOfRange for an invalid x, leaving the matrix unchanged.
// Complexity: O(x).
func (m *Matrix[T]) RemoveColumn(x int) ([]Cell[T], error) {
	if err := checkIndex(ctxRemoveColumn, x, len(m.cols)); err != nil {
		return nil, err
	}
	col := m.cols[x]
	m.cols = slices.Delete(m.cols, x, x+1)
	if len(m.cols) == 0 {
		m.cols = nil
	}

	return col, nil
}

// RemoveFirstColumn removes column 0; ErrOutOfRange on an empty matrix.
func (m *Matrix[T]) RemoveFirstColumn() ([]Cell[T], error) {
	return m.RemoveColumn(0)
}

// RemoveLastColumn removes the rightmost column; ErrOutOfRange on an
// empty matrix.
func (m *Matrix[T]) RemoveLastColumn() ([]Cell[T], error) {
	return m.RemoveColumn(len(m.cols) - 1)
}

// SetRow replaces the row at index y and returns the replaced row.
// The replacement follows AddRow padding and stretch semantics; if it
// is narrower than the replaced row, the matrix is padded back with
// absent columns so the column count never shrinks below its
// pre-replacement extent.
// Complexity: O(x*y) worst case.
func (m *Matrix[T]) SetRow(y int, values ...T) ([]Cell[T], error) {
	prev, err := m.RemoveRow(y)
	if err != nil {
		return nil, err
	}
	// y <= rows() holds after the removal, so the insert cannot fail.
	_ = m.AddRowBefore(y, values...)
	for len(m.cols) < len(prev) {
		m.AddColumn()
	}

	return prev, nil
}

// SetColumn replaces the column at index x and returns the replaced
// column, with the same padding, stretch and re-pad contract as SetRow
// along the orthogonal dimension.
// Complexity: O(x*y) worst case.
func (m *Matrix[T]) SetColumn(x int, values ...T) ([]Cell[T], error) {
	prev, err := m.RemoveColumn(x)
	if err != nil {
		return nil, err
	}
	_ = m.AddColumnBefore(x, values...)
	for m.rows() < len(prev) {
		m.AddRow()
	}

	return prev, nil
}
