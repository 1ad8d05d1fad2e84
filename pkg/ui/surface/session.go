package surface

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/cdk/pkg/cdk"
	"github.com/odvcencio/cdk/pkg/ui/backend"
	"github.com/odvcencio/cdk/pkg/ui/backend/tcell"
	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

// colorer is implemented by backends that know whether colors are wanted.
type colorer interface {
	SupportsColor() bool
}

// window is the surface side of one widget resource.
type window struct {
	kind    cdk.Kind
	x, y    int
	width   int // box and content, without shadow
	height  int
	frame   cdk.Frame
	painted bool
}

// extent returns the area the window covers including its shadow.
func (w *window) extent() (width, height int) {
	if w.frame.Shadow {
		return w.width + 1, w.height + 1
	}
	return w.width, w.height
}

// Session draws widget frames on a backend.
type Session struct {
	backend backend.Backend
	color   bool
	windows map[cdk.Resource]*window
	next    cdk.Resource
	closed  bool
}

// NewSession wraps an initialized backend.
func NewSession(b backend.Backend) *Session {
	return &Session{
		backend: b,
		color:   true,
		windows: make(map[cdk.Resource]*window),
	}
}

// Size returns the screen dimensions.
func (s *Session) Size() (width, height int) {
	return s.backend.Size()
}

// InitColor enables colors unless the backend reports a monochrome terminal.
func (s *Session) InitColor() {
	s.color = true
	if c, ok := s.backend.(colorer); ok {
		s.color = c.SupportsColor()
	}
}

// Color reports whether colors are emitted.
func (s *Session) Color() bool { return s.color }

// Factory returns the window factory for kind. Every widget kind is drawn
// from its frame, so only KindNone has no factory.
func (s *Session) Factory(kind cdk.Kind) cdk.ResourceFactory {
	if kind == cdk.KindNone {
		return nil
	}
	return factory{s: s, kind: kind}
}

type factory struct {
	s    *Session
	kind cdk.Kind
}

func (f factory) Create(at cdk.Position, content cdk.Frame, opts cdk.DrawingOptions) (cdk.Resource, error) {
	if f.s.closed {
		return cdk.NoResource, ErrSessionClosed
	}
	content.Box = opts.Box
	content.Shadow = opts.Shadow

	win := &window{kind: f.kind, frame: content}
	win.width, win.height = measure(content)
	sw, sh := f.s.backend.Size()
	ew, eh := win.extent()
	win.x = resolve(at.X, 0, ew, sw)
	win.y = resolve(at.Y, 0, eh, sh)

	f.s.next++
	f.s.windows[f.s.next] = win
	return f.s.next, nil
}

func (f factory) Destroy(res cdk.Resource) {
	if win, ok := f.s.windows[res]; ok {
		if win.painted && !f.s.closed {
			f.s.blank(win)
			f.s.backend.Show()
		}
		delete(f.s.windows, res)
	}
}

// measure returns the size of a frame's box and content.
func measure(f cdk.Frame) (width, height int) {
	for _, line := range f.Lines {
		width = max(width, runewidth.StringWidth(line.Text))
	}
	height = len(f.Lines)
	if f.Box {
		width += 2
		height += 2
	}
	return max(width, 1), max(height, 1)
}

// resolve places one axis of a window. Top and Left mean the start of either
// axis, Bottom and Right the end. The result keeps the window on screen
// when it fits.
func resolve(c cdk.Coord, current, extent, size int) int {
	var pos int
	switch c.Anchor() {
	case cdk.AnchorTop, cdk.AnchorLeft:
		pos = 0
	case cdk.AnchorBottom, cdk.AnchorRight:
		pos = size - extent
	case cdk.AnchorCenter:
		pos = (size - extent) / 2
	default:
		pos = current + c.Value()
	}
	return max(min(pos, size-extent), 0)
}

// Paint draws the frame at the window's location.
func (s *Session) Paint(res cdk.Resource, f cdk.Frame) {
	win, ok := s.windows[res]
	if !ok || s.closed {
		return
	}
	if win.painted {
		s.blank(win)
	}
	win.frame = f
	win.width, win.height = measure(f)
	s.draw(win)
}

// Erase blanks the window's area. The window is kept.
func (s *Session) Erase(res cdk.Resource) {
	win, ok := s.windows[res]
	if !ok || s.closed || !win.painted {
		return
	}
	s.blank(win)
}

// Move relocates a window and redraws it if it was visible.
func (s *Session) Move(res cdk.Resource, at cdk.Position, relative bool) {
	win, ok := s.windows[res]
	if !ok || s.closed {
		return
	}
	visible := win.painted
	if visible {
		s.blank(win)
	}

	sw, sh := s.backend.Size()
	ew, eh := win.extent()
	baseX, baseY := 0, 0
	if relative {
		baseX, baseY = win.x, win.y
	}
	win.x = resolve(at.X, baseX, ew, sw)
	win.y = resolve(at.Y, baseY, eh, sh)

	if visible {
		s.draw(win)
		s.backend.Show()
	}
}

// Location returns the window's top-left cell.
func (s *Session) Location(res cdk.Resource) (x, y int, ok bool) {
	win, ok := s.windows[res]
	if !ok {
		return 0, 0, false
	}
	return win.x, win.y, true
}

// Kind returns the widget kind a resource was created for.
func (s *Session) Kind(res cdk.Resource) cdk.Kind {
	if win, ok := s.windows[res]; ok {
		return win.kind
	}
	return cdk.KindNone
}

// Clear blanks the screen.
func (s *Session) Clear() {
	if s.closed {
		return
	}
	s.backend.Clear()
	for _, win := range s.windows {
		win.painted = false
	}
}

// Flush shows pending changes.
func (s *Session) Flush() {
	if !s.closed {
		s.backend.Show()
	}
}

// Beep rings the terminal bell.
func (s *Session) Beep() {
	if !s.closed {
		s.backend.Beep()
	}
}

// ReadKey blocks for the next key. Resizes are absorbed with a full redraw.
func (s *Session) ReadKey() (terminal.KeyEvent, error) {
	for !s.closed {
		switch ev := s.backend.PollEvent().(type) {
		case nil:
			return terminal.KeyEvent{}, ErrSessionClosed
		case terminal.KeyEvent:
			return ev, nil
		case terminal.ResizeEvent:
			s.backend.Sync()
		}
	}
	return terminal.KeyEvent{}, ErrSessionClosed
}

// Close restores the terminal. Closing twice is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.windows = make(map[cdk.Resource]*window)
	s.backend.Fini()
	return nil
}

// base returns the style every cell of the frame starts from.
func (s *Session) base(f cdk.Frame) backend.Style {
	style := f.Background
	if f.BackgroundColor != "" {
		style = style.Background(tcell.ParseColor(f.BackgroundColor))
	}
	return s.tint(style)
}

func (s *Session) tint(style backend.Style) backend.Style {
	if s.color {
		return style
	}
	return style.Monochrome()
}

func (s *Session) draw(win *window) {
	f := win.frame
	base := s.base(f)
	t := backend.NewSubTarget(s.backend, win.x, win.y, win.width, win.height)
	t.Fill(' ', base)

	inset := 0
	if f.Box {
		inset = 1
		s.drawBox(t, f, base)
	}

	for row, line := range f.Lines {
		s.drawLine(t, inset, row+inset, line, base)
	}

	if f.Shadow {
		s.drawShadow(win)
	}
	if f.Cursor != nil {
		s.backend.SetCursorPos(win.x+inset+f.Cursor.X, win.y+inset+f.Cursor.Y)
	}
	win.painted = true
}

func (s *Session) drawBox(t *backend.SubTarget, f cdk.Frame, base backend.Style) {
	w, h := t.Size()
	style := s.tint(f.BoxStyle).Over(base)
	b := f.Border
	for x := 1; x < w-1; x++ {
		t.SetContent(x, 0, b.Horizontal, nil, style)
		t.SetContent(x, h-1, b.Horizontal, nil, style)
	}
	for y := 1; y < h-1; y++ {
		t.SetContent(0, y, b.Vertical, nil, style)
		t.SetContent(w-1, y, b.Vertical, nil, style)
	}
	t.SetContent(0, 0, b.UL, nil, style)
	t.SetContent(w-1, 0, b.UR, nil, style)
	t.SetContent(0, h-1, b.LL, nil, style)
	t.SetContent(w-1, h-1, b.LR, nil, style)
}

func (s *Session) drawLine(t *backend.SubTarget, x, y int, line cdk.Line, base backend.Style) {
	lineStyle := s.tint(line.Style).Over(base)
	col := x
	for i, r := range []rune(line.Text) {
		style := lineStyle
		for _, span := range line.Spans {
			if i >= span.Start && i < span.End {
				style = s.tint(span.Style).Over(lineStyle)
			}
		}
		t.SetContent(col, y, r, nil, style)
		col += max(runewidth.RuneWidth(r), 1)
	}
}

// drawShadow darkens the column right of the window and the row below it.
func (s *Session) drawShadow(win *window) {
	style := backend.DefaultStyle().Background(backend.ColorBlack)
	if !s.color {
		style = backend.DefaultStyle().Dim(true)
	}
	t := backend.NewSubTarget(s.backend, win.x, win.y, win.width+1, win.height+1)
	for y := 1; y <= win.height; y++ {
		t.SetContent(win.width, y, ' ', nil, style)
	}
	for x := 1; x <= win.width; x++ {
		t.SetContent(x, win.height, ' ', nil, style)
	}
}

// blank clears the window's last drawn area including its shadow.
func (s *Session) blank(win *window) {
	w, h := win.extent()
	backend.NewSubTarget(s.backend, win.x, win.y, w, h).Fill(' ', backend.DefaultStyle())
	win.painted = false
}
