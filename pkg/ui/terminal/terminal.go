// Package terminal provides the terminal event types consumed by widgets.
package terminal

import "unicode"

// Event represents a terminal input event.
type Event interface {
	eventMarker()
}

// KeyEvent represents a key press.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) eventMarker() {}

// ResizeEvent indicates terminal size changed.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) eventMarker() {}

// Key represents special keys.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // Regular character
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlF
	KeyCtrlL
	KeyCtrlP
	KeyCtrlR
	KeyCtrlU
	KeyCtrlZ
)

// Rune returns the event for typing r.
func Rune(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Press returns the event for a special key.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// Runes converts s into a sequence of typed characters.
func Runes(s string) []KeyEvent {
	events := make([]KeyEvent, 0, len(s))
	for _, r := range s {
		events = append(events, Rune(r))
	}
	return events
}

// IsPrintable reports whether the event inserts a visible character.
func (e KeyEvent) IsPrintable() bool {
	return e.Key == KeyRune && !e.Ctrl && !e.Alt && unicode.IsPrint(e.Rune)
}

// Is reports whether the event is the special key k.
func (e KeyEvent) Is(k Key) bool {
	return e.Key == k && k != KeyRune
}

// IsRune reports whether the event typed r.
func (e KeyEvent) IsRune(r rune) bool {
	return e.Key == KeyRune && e.Rune == r
}

// String returns a readable name for the event.
func (e KeyEvent) String() string {
	if e.Key == KeyRune {
		return string(e.Rune)
	}
	return e.Key.String()
}
