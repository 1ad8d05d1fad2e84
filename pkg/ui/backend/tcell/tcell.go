// Package tcell provides a Backend implementation using tcell.
package tcell

import (
	"errors"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/odvcencio/cdk/pkg/ui/backend"
	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

// ErrNotTerminal is returned by New when stdout is not attached to a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen  tcell.Screen
	profile termenv.Profile
}

// New creates a new tcell backend bound to the process terminal.
func New() (*Backend, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen, profile: termenv.EnvColorProfile()}, nil
}

// NewWithScreen creates a backend with an existing tcell screen (for testing).
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen, profile: termenv.TrueColor}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	return b.screen.Init()
}

// Fini cleans up the backend.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// SupportsColor reports whether colors should be emitted at all.
// NO_COLOR and dumb terminals yield false.
func (b *Backend) SupportsColor() bool {
	return b.profile != termenv.Ascii
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent sets a cell at position (x, y).
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, convertStyle(style))
}

// Show synchronizes the buffer to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// Clear clears the screen.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// HideCursor hides the cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// SetCursorPos sets the cursor position.
func (b *Backend) SetCursorPos(x, y int) {
	b.screen.ShowCursor(x, y)
}

// PollEvent blocks until a key or resize event is available.
// Returns nil once the screen has been finalized.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if converted := convertEvent(ev); converted != nil {
			return converted
		}
	}
}

// PostEvent injects an event into the queue.
func (b *Backend) PostEvent(ev terminal.Event) error {
	tev := reverseConvertEvent(ev)
	if tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

// Beep emits an audible bell.
func (b *Backend) Beep() {
	_ = b.screen.Beep()
}

// Sync forces a full redraw.
func (b *Backend) Sync() {
	b.screen.Sync()
}

// ParseColor resolves a color name ("red", "darkblue") or hex value ("#ff8800")
// into a backend color. Unknown names resolve to ColorDefault.
func ParseColor(name string) backend.Color {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault || !c.Valid() {
		return backend.ColorDefault
	}
	if c.IsRGB() {
		r, g, bl := c.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(bl))
	}
	return backend.Color(c - tcell.ColorValid)
}

// convertStyle converts backend.Style to tcell.Style.
func convertStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))

	if attrs&backend.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&backend.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&backend.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&backend.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&backend.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&backend.AttrStrikeThrough != 0 {
		style = style.StrikeThrough(true)
	}

	return style
}

// convertColor converts backend.Color to tcell.Color.
func convertColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

// convertEvent converts a tcell event to terminal.Event.
func convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		mods := e.Modifiers()
		key := convertKey(e.Key())
		if key == terminal.KeyNone {
			return nil
		}
		return terminal.KeyEvent{
			Key:   key,
			Rune:  e.Rune(),
			Alt:   mods&tcell.ModAlt != 0,
			Ctrl:  mods&tcell.ModCtrl != 0,
			Shift: mods&tcell.ModShift != 0 || e.Key() == tcell.KeyBacktab,
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	default:
		return nil
	}
}

var keyTable = []struct {
	tk tcell.Key
	k  terminal.Key
}{
	{tcell.KeyRune, terminal.KeyRune},
	{tcell.KeyUp, terminal.KeyUp},
	{tcell.KeyDown, terminal.KeyDown},
	{tcell.KeyRight, terminal.KeyRight},
	{tcell.KeyLeft, terminal.KeyLeft},
	{tcell.KeyPgUp, terminal.KeyPageUp},
	{tcell.KeyPgDn, terminal.KeyPageDown},
	{tcell.KeyHome, terminal.KeyHome},
	{tcell.KeyEnd, terminal.KeyEnd},
	{tcell.KeyInsert, terminal.KeyInsert},
	{tcell.KeyDelete, terminal.KeyDelete},
	{tcell.KeyBackspace2, terminal.KeyBackspace},
	{tcell.KeyBackspace, terminal.KeyBackspace},
	{tcell.KeyTab, terminal.KeyTab},
	{tcell.KeyBacktab, terminal.KeyTab},
	{tcell.KeyEnter, terminal.KeyEnter},
	{tcell.KeyEscape, terminal.KeyEscape},
	{tcell.KeyCtrlB, terminal.KeyCtrlB},
	{tcell.KeyCtrlC, terminal.KeyCtrlC},
	{tcell.KeyCtrlD, terminal.KeyCtrlD},
	{tcell.KeyCtrlF, terminal.KeyCtrlF},
	{tcell.KeyCtrlL, terminal.KeyCtrlL},
	{tcell.KeyCtrlP, terminal.KeyCtrlP},
	{tcell.KeyCtrlR, terminal.KeyCtrlR},
	{tcell.KeyCtrlU, terminal.KeyCtrlU},
	{tcell.KeyCtrlZ, terminal.KeyCtrlZ},
	{tcell.KeyF1, terminal.KeyF1},
	{tcell.KeyF2, terminal.KeyF2},
	{tcell.KeyF3, terminal.KeyF3},
	{tcell.KeyF4, terminal.KeyF4},
	{tcell.KeyF5, terminal.KeyF5},
	{tcell.KeyF6, terminal.KeyF6},
	{tcell.KeyF7, terminal.KeyF7},
	{tcell.KeyF8, terminal.KeyF8},
	{tcell.KeyF9, terminal.KeyF9},
	{tcell.KeyF10, terminal.KeyF10},
	{tcell.KeyF11, terminal.KeyF11},
	{tcell.KeyF12, terminal.KeyF12},
}

// convertKey converts tcell.Key to terminal.Key.
func convertKey(k tcell.Key) terminal.Key {
	for _, e := range keyTable {
		if e.tk == k {
			return e.k
		}
	}
	return terminal.KeyNone
}

// Key converts terminal.Key back to the tcell key that produces it.
// The first table entry wins, so backspace maps to KeyBackspace2 (DEL),
// which is what most terminals send.
func Key(k terminal.Key) tcell.Key {
	for _, e := range keyTable {
		if e.k == k {
			return e.tk
		}
	}
	return tcell.KeyNUL
}

// Modifiers converts the modifier flags of a key event.
func Modifiers(ev terminal.KeyEvent) tcell.ModMask {
	var mods tcell.ModMask
	if ev.Alt {
		mods |= tcell.ModAlt
	}
	if ev.Ctrl {
		mods |= tcell.ModCtrl
	}
	if ev.Shift {
		mods |= tcell.ModShift
	}
	return mods
}

// reverseConvertEvent converts terminal.Event to tcell.Event for PostEvent.
// Key events are injected through the simulation screen instead.
func reverseConvertEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	default:
		return nil
	}
}

// Ensure Backend implements backend.Backend
var _ backend.Backend = (*Backend)(nil)
