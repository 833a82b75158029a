// Package grid implements the row-major table model behind a table block.
//
// The grid is the single source of truth for a table: row and column counts,
// cell content, and merged blocks. Views (HTML, terminal, text) are
// projections of it and never hold state of their own.
//
// A cell is in exactly one of three shapes:
//
//   - normal: RowSpan and ColSpan are 1, not merged, visible
//   - anchor: the top-left cell of a merged block, Merged with a span > 1
//   - covered: Hidden because an anchor claims its position
//
// Covered cells stay in the grid so indices and counts never change when
// cells are merged or split.
package grid
