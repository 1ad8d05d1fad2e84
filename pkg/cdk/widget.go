package cdk

import (
	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/cdk/pkg/logging"
	"github.com/odvcencio/cdk/pkg/ui/backend"
)

// widget is the state and behavior every variant shares. A zero widget is
// unconfigured: setters work on local state, surface operations fail.
type widget struct {
	canvas *Canvas
	cap    Capability
	id     ulid.ULID
	log    *logging.Logger
	self   Widget

	box      bool
	shadow   bool
	border   Border
	boxStyle backend.Style
	bgAttrs  backend.AttrMask
	bgColor  string
}

// attach allocates the variant's resource and registers it. The variant's own
// state must be set before attach because its first frame is built here.
func (w *widget) attach(c *Canvas, kind Kind, self Widget, at Position, opts DrawingOptions) error {
	if err := c.usable(); err != nil {
		return err
	}

	w.canvas = c
	w.self = self
	w.box = opts.Box
	w.shadow = opts.Shadow
	w.border = c.theme.Border
	w.boxStyle = c.theme.BoxStyle

	res, err := c.create(kind, at, self.frame(), opts)
	if err != nil {
		w.canvas = nil
		return err
	}

	w.cap = newCapability(kind, res)
	w.id = ulid.Make()
	w.log = c.log.WithWidget(w.id.String(), kind.String())
	c.Register(self)
	return nil
}

// live reports whether operations may reach the surface.
func (w *widget) live() error {
	if w.canvas == nil || !w.cap.Configured() {
		return ErrUnconfiguredWidget
	}
	if w.canvas.closed {
		return ErrCanvasClosed
	}
	return nil
}

func (w *widget) owner() *Canvas { return w.canvas }

// Capability returns the widget's kind tag and resource handle.
func (w *widget) Capability() Capability { return w.cap }

// ID returns the widget's log identifier, empty when unconfigured.
func (w *widget) ID() string {
	if !w.cap.Configured() {
		return ""
	}
	return w.id.String()
}

// Draw paints the widget.
func (w *widget) Draw() error {
	if err := w.live(); err != nil {
		return err
	}
	w.paint()
	return nil
}

// Erase blanks the widget's area. The widget stays registered.
func (w *widget) Erase() error {
	if err := w.live(); err != nil {
		return err
	}
	w.canvas.session.Erase(w.cap.res)
	w.canvas.session.Flush()
	return nil
}

// Move relocates the widget, repainting the canvas when opts.Refresh is set.
func (w *widget) Move(at Position, opts MoveOptions) error {
	if err := w.live(); err != nil {
		return err
	}
	w.canvas.session.Move(w.cap.res, at, opts.Relative)
	if opts.Refresh {
		w.canvas.Refresh()
	}
	return nil
}

// Destroy unregisters the widget and frees its resource. The widget is
// unconfigured afterwards.
func (w *widget) Destroy() error {
	if err := w.live(); err != nil {
		return err
	}
	w.canvas.Unregister(w.self)
	w.canvas.destroy(w.cap)
	w.canvas = nil
	w.cap = Capability{}
	return nil
}

// SetBox sets whether the widget is drawn inside a box.
func (w *widget) SetBox(box bool) { w.box = box }

// SetShadow sets whether the widget casts a shadow.
func (w *widget) SetShadow(shadow bool) { w.shadow = shadow }

// SetBoxStyle sets the style of the box characters.
func (w *widget) SetBoxStyle(s backend.Style) { w.boxStyle = s }

func (w *widget) SetULChar(r rune)         { w.border.UL = r }
func (w *widget) SetURChar(r rune)         { w.border.UR = r }
func (w *widget) SetLLChar(r rune)         { w.border.LL = r }
func (w *widget) SetLRChar(r rune)         { w.border.LR = r }
func (w *widget) SetHorizontalChar(r rune) { w.border.Horizontal = r }
func (w *widget) SetVerticalChar(r rune)   { w.border.Vertical = r }

// SetBackgroundAttrib sets attributes applied to every cell of the widget.
func (w *widget) SetBackgroundAttrib(attrs backend.AttrMask) { w.bgAttrs = attrs }

// SetBackgroundColor sets the background by color name, e.g. "blue" or
// "#1e1e2e". Names are resolved when the widget is painted.
func (w *widget) SetBackgroundColor(name string) { w.bgColor = name }

func (w *widget) Box() bool                          { return w.box }
func (w *widget) Shadow() bool                       { return w.shadow }
func (w *widget) Border() Border                     { return w.border }
func (w *widget) BoxStyle() backend.Style            { return w.boxStyle }
func (w *widget) BackgroundAttrib() backend.AttrMask { return w.bgAttrs }
func (w *widget) BackgroundColor() string            { return w.bgColor }

func (w *widget) baseFrame() Frame {
	return Frame{
		Box:             w.box,
		Shadow:          w.shadow,
		Border:          w.border,
		BoxStyle:        w.boxStyle,
		Background:      backend.DefaultStyle().WithAttrs(w.bgAttrs),
		BackgroundColor: w.bgColor,
	}
}

func (w *widget) theme() Theme {
	if w.canvas == nil {
		return DefaultTheme()
	}
	return w.canvas.theme
}

func (w *widget) paint() {
	w.canvas.session.Paint(w.cap.res, w.self.frame())
	w.canvas.session.Flush()
}

func (w *widget) beep() {
	if w.live() == nil {
		w.canvas.session.Beep()
	}
}
