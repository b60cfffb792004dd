// Package report renders a roster snapshot as a spreadsheet.
//
// Two formats are supported. XLSX output carries live conditional formatting
// on the average column, so a spreadsheet application re-evaluates the
// low/high highlights when a value is edited. CSV has no notion of styling,
// so the same rules are applied once at render time and written out as an
// extra Highlight column.
package report
