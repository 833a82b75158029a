package block

import "errors"

// Block errors.
var (
	// ErrUnknownCommand indicates a command name no handler is registered for.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidData indicates saved block data that cannot be loaded.
	ErrInvalidData = errors.New("invalid block data")
)

// User-facing messages.
const (
	MsgConfirmMerge = "Some of the selected cells contain text. After merging only the top-left cell stays visible. Merge anyway?"
	MsgMergeOverlap = "The selection contains merged cells. Split them before merging again."
	MsgMergeSingle  = "Select at least two cells to merge."
	MsgMergeBounds  = "The selection is outside the table."
	MsgCannotSplit  = "This cell cannot be split."
	MsgNoRange      = "No cells selected to merge."
	MsgNoCell       = "No cell selected."
)
