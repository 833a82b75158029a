package block

import (
	"fmt"

	"github.com/dshills/gridblock/internal/grid"
)

// Outcome is how a command ended.
type Outcome int

const (
	// Applied means the command changed the block.
	Applied Outcome = iota
	// Cancelled means the user declined a confirmation; nothing changed.
	Cancelled
	// Rejected means the command was infeasible; nothing changed.
	Rejected
	// Skipped means a precondition such as a selection was missing.
	Skipped
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Cancelled:
		return "cancelled"
	case Rejected:
		return "rejected"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result reports the outcome of a command.
type Result struct {
	Outcome Outcome

	// Message is the user-facing reason for Cancelled, Rejected and Skipped.
	Message string

	// Range is the block a merge or unmerge affected.
	Range grid.Rect
}

// OK reports whether the command was applied.
func (r Result) OK() bool {
	return r.Outcome == Applied
}

func applied(r grid.Rect) Result {
	return Result{Outcome: Applied, Range: r}
}

func skipped(msg string) Result {
	return Result{Outcome: Skipped, Message: msg}
}

// ConfirmFunc asks the user a yes/no question and reports the answer.
type ConfirmFunc func(message string) bool

// AlertFunc tells the user why an operation did not happen.
type AlertFunc func(message string)

// AlwaysConfirm accepts every confirmation.
func AlwaysConfirm(string) bool { return true }

// NeverConfirm declines every confirmation.
func NeverConfirm(string) bool { return false }
