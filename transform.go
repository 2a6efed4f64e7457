// Package elmat: whole-matrix transforms.
// Packing trims trailing all-absent rows and columns; the geometric
// transforms (swap, reverse, flip, turn) rearrange cells without ever
// changing the cell population.

package elmat

import "slices"

// Pack removes trailing rows and/or columns that consist entirely of
// absent cells, per the flags, until none remain. Packing both
// dimensions can cascade: a removed column may expose an all-absent
// row and vice versa, so the trim repeats until a fixpoint. A matrix
// of only absent cells packs down to (0,0).
// Complexity: O(x*y) worst case.
func (m *Matrix[T]) Pack(rows, cols bool) {
	for {
		trimmed := false
		if rows {
			trimmed = m.packRows() || trimmed
		}
		if cols {
			trimmed = m.packColumns() || trimmed
		}
		if !trimmed {
			return
		}
	}
}

// PackRows removes trailing all-absent rows.
func (m *Matrix[T]) PackRows() { m.packRows() }

// PackColumns removes trailing all-absent columns.
func (m *Matrix[T]) PackColumns() { m.packColumns() }

func (m *Matrix[T]) packRows() bool {
	trimmed := false
	for !m.IsEmpty() && m.rowAbsent(m.rows()-1) {
		_, _ = m.RemoveLastRow()
		trimmed = true
	}

	return trimmed
}

func (m *Matrix[T]) packColumns() bool {
	trimmed := false
	for !m.IsEmpty() && m.columnAbsent(len(m.cols)-1) {
		_, _ = m.RemoveLastColumn()
		trimmed = true
	}

	return trimmed
}

// rowAbsent reports whether every cell of row y is absent.
func (m *Matrix[T]) rowAbsent(y int) bool {
	for x := range m.cols {
		if m.cols[x][y].Present() {
			return false
		}
	}

	return true
}

// columnAbsent reports whether every cell of column x is absent.
func (m *Matrix[T]) columnAbsent(x int) bool {
	for y := range m.cols[x] {
		if m.cols[x][y].Present() {
			return false
		}
	}

	return true
}

// Swap exchanges the cells at (x1,y1) and (x2,y2), or returns
// ErrOutOfRange when either coordinate is invalid, leaving the matrix
// unchanged.
// Complexity: O(1).
func (m *Matrix[T]) Swap(x1, y1, x2, y2 int) error {
	if err := m.checkCell(ctxSwap, x1, y1); err != nil {
		return err
	}
	if err := m.checkCell(ctxSwap, x2, y2); err != nil {
		return err
	}
	m.cols[x1][y1], m.cols[x2][y2] = m.cols[x2][y2], m.cols[x1][y1]

	return nil
}

// SwapRows exchanges rows y1 and y2 in full, or returns ErrOutOfRange
// when either index is invalid, leaving the matrix unchanged.
// Complexity: O(x).
func (m *Matrix[T]) SwapRows(y1, y2 int) error {
	if err := checkIndex(ctxSwapRows, y1, m.rows()); err != nil {
		return err
	}
	if err := checkIndex(ctxSwapRows, y2, m.rows()); err != nil {
		return err
	}
	for x := range m.cols {
		m.cols[x][y1], m.cols[x][y2] = m.cols[x][y2], m.cols[x][y1]
	}

	return nil
}

// SwapColumns exchanges columns x1 and x2 in full, or returns
// ErrOutOfRange when either index is invalid, leaving the matrix
// unchanged.
// Complexity: O(1).
func (m *Matrix[T]) SwapColumns(x1, x2 int) error {
	if err := checkIndex(ctxSwapColumns, x1, len(m.cols)); err != nil {
		return err
	}
	if err := checkIndex(ctxSwapColumns, x2, len(m.cols)); err != nil {
		return err
	}
	m.cols[x1], m.cols[x2] = m.cols[x2], m.cols[x1]

	return nil
}

// ReverseX mirrors the matrix horizontally (column order reversed).
// Complexity: O(x).
func (m *Matrix[T]) ReverseX() { slices.Reverse(m.cols) }

// ReverseY mirrors the matrix vertically (row order reversed).
// Complexity: O(x*y).
func (m *Matrix[T]) ReverseY() {
	for x := range m.cols {
		slices.Reverse(m.cols[x])
	}
}

// Flip transposes the matrix across its main diagonal: cell (x,y)
// moves to (y,x) and the size swaps accordingly. Flip is its own
// inverse.
// Complexity: O(x*y).
func (m *Matrix[T]) Flip() { m.cols = m.AsRows() }

// TurnClockwise rotates the matrix 90 degrees clockwise.
// Complexity: O(x*y).
func (m *Matrix[T]) TurnClockwise() {
	m.Flip()
	m.ReverseX()
}

// TurnCounterClockwise rotates the matrix 90 degrees counterclockwise.
// Complexity: O(x*y).
func (m *Matrix[T]) TurnCounterClockwise() {
	m.Flip()
	m.ReverseY()
}
