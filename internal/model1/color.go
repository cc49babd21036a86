package model1

import "github.com/gdamore/tcell/v2"

var (
	// ErrColor is the failed-fetch banner color.
	ErrColor tcell.Color = tcell.ColorRed

	// StdColor is the default row color.
	StdColor tcell.Color = tcell.ColorWhite

	// HighlightColor marks selected rows.
	HighlightColor tcell.Color = tcell.ColorAqua

	// MutedColor marks folder/placeholder rows.
	MutedColor tcell.Color = tcell.ColorGray

	// PendingColor marks rows shown while a fetch is in flight.
	PendingColor tcell.Color = tcell.ColorDarkCyan
)

// ColorerFunc picks a display color for a row.
type ColorerFunc func(region string, h Header, r Row, selected bool) tcell.Color

// DefaultColorer highlights selected rows and leaves the rest standard.
func DefaultColorer(_ string, _ Header, _ Row, selected bool) tcell.Color {
	if selected {
		return HighlightColor
	}
	return StdColor
}
