package elmat

import "fmt"

// Coordinates addresses a single cell: X is the column index, Y the row
// index, both zero-based. Equality is value-based.
type Coordinates struct {
	X, Y int
}

// String renders the coordinates as "(x,y)".
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Range is a half-open integer index range [From, To).
type Range struct {
	From, To int
}

// Size returns the number of indexes in the range; never negative.
// Complexity: O(1).
func (r Range) Size() int {
	if r.To < r.From {
		return 0
	}

	return r.To - r.From
}

// ForEach calls fn for every index from From (inclusive) to To
// (exclusive), in ascending order. An empty range calls nothing.
// Complexity: O(n) for n = Size().
func (r Range) ForEach(fn func(i int)) {
	for i := r.From; i < r.To; i++ {
		fn(i)
	}
}

// Block is a rectangular range of coordinates: From (inclusive) to To
// (exclusive) in both dimensions.
type Block struct {
	From, To Coordinates
}

// Size returns the block extent as (columns, rows); never negative.
// Complexity: O(1).
func (b Block) Size() Coordinates {
	return Coordinates{X: b.XRange().Size(), Y: b.YRange().Size()}
}

// XRange returns the column index range of the block.
func (b Block) XRange() Range {
	return Range{From: b.From.X, To: b.To.X}
}

// YRange returns the row index range of the block.
func (b Block) YRange() Range {
	return Range{From: b.From.Y, To: b.To.Y}
}

// ForEach calls fn for every coordinate pair in the block, column-major:
// column From.X top to bottom, then the next column, and so on. If either
// range is empty, nothing is called.
// Complexity: O(columns*rows) of the block.
func (b Block) ForEach(fn func(x, y int)) {
	b.XRange().ForEach(func(x int) {
		b.YRange().ForEach(func(y int) {
			fn(x, y)
		})
	})
}
