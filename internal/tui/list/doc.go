// Package listview provides a scrolling viewport over a list of items for
// Bubble Tea views.
//
// Only the rows inside the viewport are rendered, so tall content such as a
// fully expanded record stays cheap to redraw. Navigation covers line,
// page and home/end movement.
package listview
