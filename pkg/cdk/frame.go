package cdk

import (
	"time"

	"github.com/odvcencio/cdk/pkg/ui/backend"
)

// Frame describes what a widget looks like. Widgets build frames from their
// own state; the surface turns them into cells.
type Frame struct {
	Lines  []Line
	Box    bool
	Shadow bool
	Border Border

	// BoxStyle applies to border cells.
	BoxStyle backend.Style
	// Background applies to every cell of the widget.
	Background backend.Style
	// BackgroundColor is a color name resolved by the surface ("" keeps Background).
	BackgroundColor string

	// Cursor is relative to the first content cell; nil leaves the cursor alone.
	Cursor *Cursor
}

// Line is one row of widget content.
type Line struct {
	Text  string
	Style backend.Style
	Spans []Span
}

// Span restyles the runes [Start, End) of a line.
type Span struct {
	Start, End int
	Style      backend.Style
}

// Cursor is a cell offset inside a frame's content area.
type Cursor struct {
	X, Y int
}

// TextLine returns a line in the default style.
func TextLine(text string) Line {
	return Line{Text: text, Style: backend.DefaultStyle()}
}

// Border holds the characters used to draw a widget's box.
type Border struct {
	UL, UR, LL, LR rune
	Horizontal     rune
	Vertical       rune
}

// DefaultBorder uses the line-drawing characters terminals render as ACS.
func DefaultBorder() Border {
	return Border{
		UL:         '┌',
		UR:         '┐',
		LL:         '└',
		LR:         '┘',
		Horizontal: '─',
		Vertical:   '│',
	}
}

// Theme holds the defaults new widgets start from.
type Theme struct {
	Border     Border
	BoxStyle   backend.Style
	Highlight  backend.Style
	Filler     rune
	HiddenChar rune
	WeekStart  time.Weekday
	DayNames   [7]string
}

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme {
	return Theme{
		Border:     DefaultBorder(),
		BoxStyle:   backend.DefaultStyle(),
		Highlight:  backend.DefaultStyle().Reverse(true),
		Filler:     '.',
		HiddenChar: '*',
		WeekStart:  time.Sunday,
		DayNames:   [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	}
}
