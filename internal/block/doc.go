// Package block implements the table content block a host editor embeds.
//
// An Editor owns one grid and its selection state. The host drives it with
// discrete input events (Click, ExtendSelection, FocusIn, HandleKey) and
// commands (InsertRowAfter, MergeCells, ...), mounts the element returned
// by Element, and persists the block through Save and Load.
//
// Operations with unmet preconditions are no-ops. Merge and unmerge report
// what happened through a Result instead of interrupting the caller:
//
//	switch res := ed.MergeCells(); res.Outcome {
//	case block.Applied:   // grid changed
//	case block.Cancelled: // user declined the confirmation, nothing changed
//	case block.Rejected:  // not feasible, the alert callback was told why
//	case block.Skipped:   // nothing selected
//	}
//
// Confirmation and alerts go through ConfirmFunc and AlertFunc so hosts
// without blocking dialogs, scripts and tests can supply a policy.
package block
