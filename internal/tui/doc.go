// Package tui renders a record collection as a paged, sortable table.
//
// The interactive Model is a Bubble Tea program that starts in a loading
// state, shows a skeleton placeholder until the single fetch completes and
// then displays the table with a page control and expandable rows.
// RenderStatic produces the same table for non-interactive output.
package tui
