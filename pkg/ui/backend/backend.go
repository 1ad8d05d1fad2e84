// Package backend defines the terminal backend interface used by the surface.
// This abstraction allows swapping between tcell (real terminals) and
// simulation backends (testing), enabling golden-frame tests.
package backend

import "github.com/odvcencio/cdk/pkg/ui/terminal"

// Backend is the terminal abstraction layer.
// Implementations handle terminal I/O, input events, and screen rendering.
type Backend interface {
	// Init initializes the backend (enters alt screen, raw mode, etc).
	Init() error

	// Fini cleans up the backend (restores terminal state).
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets a cell at position (x, y) with the given rune and style.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show synchronizes the internal buffer to the terminal.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// SetCursorPos moves the cursor and makes it visible.
	SetCursorPos(x, y int)

	// PollEvent blocks until an event is available and returns it.
	// Returns nil if the backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the event queue.
	PostEvent(ev terminal.Event) error

	// Beep emits an audible bell.
	Beep()

	// Sync forces a full redraw on next Show().
	Sync()
}

// RenderTarget is the subset of Backend used for painting cells.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
}

// SubTarget clips a RenderTarget to a rectangle and translates coordinates
// so (0, 0) is the rectangle's top-left cell.
type SubTarget struct {
	parent  RenderTarget
	offsetX int
	offsetY int
	width   int
	height  int
}

// NewSubTarget creates a sub-region of a RenderTarget.
func NewSubTarget(parent RenderTarget, x, y, w, h int) *SubTarget {
	return &SubTarget{
		parent:  parent,
		offsetX: x,
		offsetY: y,
		width:   w,
		height:  h,
	}
}

// Size returns the sub-target dimensions.
func (s *SubTarget) Size() (width, height int) {
	return s.width, s.height
}

// SetContent sets content with coordinates relative to the sub-target.
// Cells outside the sub-target or the parent are dropped.
func (s *SubTarget) SetContent(x, y int, mainc rune, comb []rune, style Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	px, py := s.offsetX+x, s.offsetY+y
	pw, ph := s.parent.Size()
	if px < 0 || py < 0 || px >= pw || py >= ph {
		return
	}
	s.parent.SetContent(px, py, mainc, comb, style)
}

// Fill paints every cell of the sub-target with ch.
func (s *SubTarget) Fill(ch rune, style Style) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

// SetString writes str starting at (x, y) and returns the number of cells used.
func (s *SubTarget) SetString(x, y int, str string, style Style) int {
	n := 0
	for _, r := range str {
		s.SetContent(x+n, y, r, nil, style)
		n++
	}
	return n
}
