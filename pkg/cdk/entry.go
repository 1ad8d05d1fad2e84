package cdk

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/odvcencio/cdk/pkg/ui/backend"
	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

// DisplayMode controls how an entry's value is shown.
type DisplayMode int

const (
	// DisplayNormal shows the value as typed.
	DisplayNormal DisplayMode = iota
	// DisplayHidden shows the hidden character in place of each rune.
	DisplayHidden
	// DisplayMasked shows nothing but the filler, hiding the length too.
	DisplayMasked
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayNormal:
		return "normal"
	case DisplayHidden:
		return "hidden"
	case DisplayMasked:
		return "masked"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// Filter restricts which runes an entry accepts. Upper and Lower accept
// letters and convert them.
type Filter int

const (
	FilterAny Filter = iota
	FilterAlpha
	FilterDigit
	FilterAlnum
	FilterUpper
	FilterLower
)

// apply returns the rune to insert, or false if r is not accepted.
func (f Filter) apply(r rune) (rune, bool) {
	switch f {
	case FilterAlpha:
		return r, unicode.IsLetter(r)
	case FilterDigit:
		return r, unicode.IsDigit(r)
	case FilterAlnum:
		return r, unicode.IsLetter(r) || unicode.IsDigit(r)
	case FilterUpper:
		return unicode.ToUpper(r), unicode.IsLetter(r)
	case FilterLower:
		return unicode.ToLower(r), unicode.IsLetter(r)
	default:
		return r, true
	}
}

// EntryContent is what NewEntry needs besides position and options. A zero
// Width uses Max, a zero Max is unbounded, a zero Filler uses the theme.
type EntryContent struct {
	Title  string
	Label  string
	Width  int
	Min    int
	Max    int
	Filler rune
	Hidden rune
	Mode   DisplayMode
	Filter Filter
	Value  string
}

// Entry is a single-line text field.
type Entry struct {
	widget
	interactive

	title  string
	label  string
	width  int
	min    int
	max    int
	filler rune
	hidden rune
	mode   DisplayMode
	filter Filter

	value  []rune
	cursor int
	saved  []rune
}

// NewEntry creates an entry on c and registers it.
func NewEntry(c *Canvas, at Position, content EntryContent, opts DrawingOptions) (*Entry, error) {
	if err := c.usable(); err != nil {
		return nil, err
	}
	e := &Entry{
		title:  content.Title,
		label:  content.Label,
		filler: content.Filler,
		hidden: content.Hidden,
		mode:   content.Mode,
		filter: content.Filter,
	}
	if e.filler == 0 {
		e.filler = c.theme.Filler
	}
	if e.hidden == 0 {
		e.hidden = c.theme.HiddenChar
	}
	e.SetMax(content.Max)
	e.SetMin(content.Min)
	e.SetWidth(content.Width)
	e.SetValue(content.Value)

	if err := e.attach(c, KindEntry, e, at, opts); err != nil {
		return nil, err
	}
	return e, nil
}

// Value returns the current contents.
func (e *Entry) Value() string { return string(e.value) }

// SetValue replaces the contents, truncated to the maximum length. The
// cursor moves to the end.
func (e *Entry) SetValue(s string) {
	v := []rune(s)
	if e.max > 0 && len(v) > e.max {
		v = v[:e.max]
	}
	e.value = v
	e.cursor = len(v)
}

// Clear empties the contents.
func (e *Entry) Clear() { e.SetValue("") }

// Min returns the length below which deletion is refused.
func (e *Entry) Min() int { return e.min }

// SetMin sets the minimum length, clamped to [0, Max].
func (e *Entry) SetMin(n int) {
	e.min = max(n, 0)
	if e.max > 0 && e.min > e.max {
		e.min = e.max
	}
}

// Max returns the maximum length, zero when unbounded.
func (e *Entry) Max() int { return e.max }

// SetMax sets the maximum length. Zero removes the bound. The value and the
// minimum are clipped to fit.
func (e *Entry) SetMax(n int) {
	e.max = max(n, 0)
	if e.max > 0 {
		e.min = min(e.min, e.max)
		if len(e.value) > e.max {
			e.value = e.value[:e.max]
			e.cursor = min(e.cursor, e.max)
		}
	}
}

// Width returns the number of cells the field occupies.
func (e *Entry) Width() int { return e.width }

// SetWidth sets the field width. Zero falls back to Max, then to the
// longest of the title and label.
func (e *Entry) SetWidth(n int) {
	e.width = max(n, 0)
	if e.width == 0 {
		e.width = e.max
	}
	if e.width == 0 {
		e.width = max(utf8.RuneCountInString(e.title), 1)
	}
}

func (e *Entry) FillerChar() rune             { return e.filler }
func (e *Entry) SetFillerChar(r rune)         { e.filler = r }
func (e *Entry) HiddenChar() rune             { return e.hidden }
func (e *Entry) SetHiddenChar(r rune)         { e.hidden = r }
func (e *Entry) DisplayMode() DisplayMode     { return e.mode }
func (e *Entry) SetDisplayMode(m DisplayMode) { e.mode = m }
func (e *Entry) Filter() Filter               { return e.filter }
func (e *Entry) SetFilter(f Filter)           { e.filter = f }
func (e *Entry) Title() string                { return e.title }
func (e *Entry) SetTitle(s string)            { e.title = s }
func (e *Entry) Label() string                { return e.label }
func (e *Entry) SetLabel(s string)            { e.label = s }

// Activate edits the entry until it is confirmed or abandoned. Confirming
// returns the value. ESCAPE returns "" and restores the value the
// activation started with. Any other exit returns "" and keeps the edits.
func (e *Entry) Activate(keys ...terminal.KeyEvent) (string, error) {
	return activate[string](&e.widget, &e.interactive, entryEditor{e}, keys)
}

type entryEditor struct{ e *Entry }

func (ed entryEditor) begin() {
	ed.e.saved = append([]rune(nil), ed.e.value...)
}

func (ed entryEditor) edit(key terminal.KeyEvent) editResult {
	e := ed.e
	switch {
	case key.IsPrintable():
		r, ok := e.filter.apply(key.Rune)
		if !ok || (e.max > 0 && len(e.value) >= e.max) {
			return editRejected
		}
		e.value = append(e.value[:e.cursor], append([]rune{r}, e.value[e.cursor:]...)...)
		e.cursor++
	case key.Is(terminal.KeyBackspace):
		if e.cursor == 0 || len(e.value) <= e.min {
			return editRejected
		}
		e.value = append(e.value[:e.cursor-1], e.value[e.cursor:]...)
		e.cursor--
	case key.Is(terminal.KeyDelete):
		if e.cursor >= len(e.value) || len(e.value) <= e.min {
			return editRejected
		}
		e.value = append(e.value[:e.cursor], e.value[e.cursor+1:]...)
	case key.Is(terminal.KeyLeft):
		if e.cursor == 0 {
			return editRejected
		}
		e.cursor--
	case key.Is(terminal.KeyRight):
		if e.cursor >= len(e.value) {
			return editRejected
		}
		e.cursor++
	case key.Is(terminal.KeyHome):
		e.cursor = 0
	case key.Is(terminal.KeyEnd):
		e.cursor = len(e.value)
	case key.Is(terminal.KeyCtrlU):
		if len(e.value) <= e.min {
			return editRejected
		}
		e.value = e.value[:e.min]
		e.cursor = len(e.value)
	default:
		return editIgnored
	}
	return editAccepted
}

func (ed entryEditor) result(exit ExitType) string {
	e := ed.e
	switch exit {
	case ExitNormal:
		return string(e.value)
	case ExitEscapeHit:
		e.value = e.saved
		e.cursor = len(e.value)
	}
	e.saved = nil
	return ""
}

func (ed entryEditor) display() string { return ed.e.shown() }

// shown renders the value the way the field displays it.
func (e *Entry) shown() string {
	switch e.mode {
	case DisplayHidden:
		return strings.Repeat(string(e.hidden), len(e.value))
	case DisplayMasked:
		return ""
	default:
		return string(e.value)
	}
}

func (e *Entry) frame() Frame {
	f := e.baseFrame()
	if e.title != "" {
		f.Lines = append(f.Lines, TextLine(e.title))
	}

	field := []rune(e.shown())
	start := 0
	if e.cursor >= e.width && e.mode != DisplayMasked {
		start = e.cursor - e.width + 1
	}
	visible := make([]rune, e.width)
	for i := range visible {
		if start+i < len(field) {
			visible[i] = field[start+i]
		} else {
			visible[i] = e.filler
		}
	}

	label := []rune(e.label)
	line := TextLine(string(label) + string(visible))
	line.Spans = []Span{{
		Start: len(label),
		End:   len(label) + e.width,
		Style: backend.DefaultStyle().Underline(e.active),
	}}
	f.Lines = append(f.Lines, line)

	cx := len(label) + e.cursor - start
	if e.mode == DisplayMasked {
		cx = len(label)
	}
	f.Cursor = &Cursor{X: cx, Y: len(f.Lines) - 1}
	return f
}
