// Package elmat: sentinel error set and context wrapping.
// Every indexed operation returns ErrOutOfRange instead of panicking;
// call sites attach the operation tag and the offending index via the
// helpers below, and callers match with errors.Is.

package elmat

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that an index, coordinate or requested size is
// outside valid bounds: a negative value, an index beyond the current
// dimension, a size with exactly one zero dimension, or a zero-length
// row in a literal. The matrix is left unchanged when it is returned.
var ErrOutOfRange = errors.New("elmat: index out of range")

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	ctxAt              = "At"
	ctxSet             = "Set"
	ctxUnset           = "Unset"
	ctxRow             = "Row"
	ctxColumn          = "Column"
	ctxAddRowBefore    = "AddRowBefore"
	ctxAddRowAfter     = "AddRowAfter"
	ctxAddColumnBefore = "AddColumnBefore"
	ctxAddColumnAfter  = "AddColumnAfter"
	ctxRemoveRow       = "RemoveRow"
	ctxRemoveColumn    = "RemoveColumn"
	ctxSwap            = "Swap"
	ctxSwapRows        = "SwapRows"
	ctxSwapColumns     = "SwapColumns"
	ctxNewSized        = "NewSized"
	ctxFromRows        = "FromRows"
)

// indexErrorf wraps ErrOutOfRange with the operation tag, the offending
// index and the current extent of the addressed dimension.
func indexErrorf(op string, index, total int) error {
	return fmt.Errorf("Matrix.%s: index %d, size %d: %w", op, index, total, ErrOutOfRange)
}

// coordErrorf wraps ErrOutOfRange with the operation tag and both
// coordinates for cell-addressed operations.
func coordErrorf(op string, x, y int) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", op, x, y, ErrOutOfRange)
}
