package grid

import "errors"

// Grid errors.
var (
	// ErrOutOfBounds indicates a position or rectangle outside the grid.
	ErrOutOfBounds = errors.New("outside of grid bounds")

	// ErrOverlap indicates a merge over cells that already belong to a merge.
	ErrOverlap = errors.New("range overlaps an existing merge")

	// ErrSingleCell indicates a merge of a 1x1 range.
	ErrSingleCell = errors.New("range covers a single cell")

	// ErrNotMerged indicates a split of a cell that is not a merge anchor.
	ErrNotMerged = errors.New("cell is not merged")

	// ErrTooLarge indicates imported dimensions beyond the size limits.
	ErrTooLarge = errors.New("table too large")
)
