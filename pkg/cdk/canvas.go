package cdk

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/odvcencio/cdk/pkg/logging"
)

// Canvas owns one terminal session and the registry of widgets drawn on it.
// It is not safe for concurrent use.
type Canvas struct {
	id      string
	session Session
	theme   Theme
	log     *logging.Logger

	records map[Resource]Widget
	order   []Resource // bottom to top
	closed  bool
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithLogger routes canvas and widget logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *Canvas) {
		c.log = logging.Wrap(l)
	}
}

// WithTheme sets the defaults new widgets start from.
func WithTheme(t Theme) Option {
	return func(c *Canvas) {
		c.theme = t
	}
}

// sizer is implemented by sessions that know the screen size.
type sizer interface {
	Size() (width, height int)
}

// Open acquires a session from host and prepares it for color output.
func Open(host Host, opts ...Option) (*Canvas, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: no host", ErrSurfaceUnavailable)
	}

	c := &Canvas{
		id:      uuid.NewString(),
		theme:   DefaultTheme(),
		log:     logging.Discard(),
		records: make(map[Resource]Widget),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithCanvas(c.id)

	session, err := host.OpenSession()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	if session == nil {
		return nil, fmt.Errorf("%w: host returned no session", ErrSurfaceUnavailable)
	}
	c.session = session
	c.session.InitColor()

	if s, ok := session.(sizer); ok {
		w, h := s.Size()
		c.log.SessionOpened(w, h)
	} else {
		c.log.SessionOpened(0, 0)
	}
	return c, nil
}

// ID identifies the canvas in logs.
func (c *Canvas) ID() string { return c.id }

// Theme returns the defaults new widgets start from.
func (c *Canvas) Theme() Theme { return c.theme }

// Closed reports whether Close has been called.
func (c *Canvas) Closed() bool { return c.closed }

// Register adds w on top of the paint order. Registering a widget twice,
// an unconfigured widget or a widget created on another canvas does nothing.
func (c *Canvas) Register(w Widget) {
	if c.closed || !c.owns(w) {
		return
	}
	capa := w.Capability()
	if !capa.Configured() {
		return
	}
	if _, ok := c.records[capa.res]; ok {
		return
	}
	c.records[capa.res] = w
	c.order = append(c.order, capa.res)
	recordRegistryDelta(1)
	c.log.WidgetRegistered(capa.kind.String(), uint64(capa.res), len(c.order))
}

// Unregister removes w from the registry. The resource stays alive.
func (c *Canvas) Unregister(w Widget) {
	i := c.indexOf(w)
	if i < 0 {
		return
	}
	capa := w.Capability()
	delete(c.records, capa.res)
	c.order = slices.Delete(c.order, i, i+1)
	recordRegistryDelta(-1)
	c.log.WidgetUnregistered(capa.kind.String(), uint64(capa.res))
}

// Raise moves w to the top of the paint order.
func (c *Canvas) Raise(w Widget) {
	if i := c.indexOf(w); i >= 0 {
		res := c.order[i]
		c.order = append(slices.Delete(c.order, i, i+1), res)
	}
}

// Lower moves w to the bottom of the paint order.
func (c *Canvas) Lower(w Widget) {
	if i := c.indexOf(w); i >= 0 {
		res := c.order[i]
		c.order = slices.Insert(slices.Delete(c.order, i, i+1), 0, res)
	}
}

// Registered reports whether w is in the registry.
func (c *Canvas) Registered(w Widget) bool {
	return c.indexOf(w) >= 0
}

// Widgets returns the registered capabilities in paint order.
func (c *Canvas) Widgets() []Capability {
	out := make([]Capability, 0, len(c.order))
	for _, res := range c.order {
		out = append(out, c.records[res].Capability())
	}
	return out
}

// Len returns the number of registered widgets.
func (c *Canvas) Len() int { return len(c.order) }

// Erase blanks every registered widget. Nothing is unregistered.
func (c *Canvas) Erase() {
	if c.closed {
		return
	}
	for _, res := range c.order {
		c.session.Erase(res)
	}
	c.session.Flush()
}

// Refresh repaints every registered widget bottom to top.
func (c *Canvas) Refresh() {
	if c.closed {
		return
	}
	c.session.Clear()
	for _, res := range c.order {
		c.session.Paint(res, c.records[res].frame())
	}
	c.session.Flush()
}

// Close releases the session. Widgets created on this canvas are unusable
// afterwards. Calling Close again returns nil.
func (c *Canvas) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	n := len(c.order)
	recordRegistryDelta(-n)
	c.records = nil
	c.order = nil

	err := c.session.Close()
	c.log.SessionClosed(n, err)
	return err
}

// owns reports whether w was created on c. Resource handles are only
// unique within one session.
func (c *Canvas) owns(w Widget) bool {
	return w != nil && w.owner() == c
}

func (c *Canvas) indexOf(w Widget) int {
	if c.closed || !c.owns(w) {
		return -1
	}
	return c.index(w.Capability().res)
}

func (c *Canvas) index(res Resource) int {
	if res == NoResource {
		return -1
	}
	return slices.Index(c.order, res)
}

// usable is checked by constructors before any widget state is built.
func (c *Canvas) usable() error {
	if c == nil {
		return ErrCanvasRequired
	}
	if c.closed {
		return ErrCanvasClosed
	}
	return nil
}

// create routes a kind to the session's factory for that kind.
func (c *Canvas) create(kind Kind, at Position, content Frame, opts DrawingOptions) (Resource, error) {
	factory := c.session.Factory(kind)
	if factory == nil {
		err := fmt.Errorf("%w: no factory for %s", ErrResourceCreationFailed, kind)
		recordResourceFailure(kind)
		c.log.ResourceFailed(kind.String(), err)
		return NoResource, err
	}

	res, err := factory.Create(at, content, opts)
	if err == nil && res == NoResource {
		err = fmt.Errorf("%s factory returned a null resource", kind)
	}
	if err != nil {
		recordResourceFailure(kind)
		c.log.ResourceFailed(kind.String(), err)
		return NoResource, fmt.Errorf("%w: %w", ErrResourceCreationFailed, err)
	}

	recordResourceCreated(kind)
	return res, nil
}

func (c *Canvas) destroy(capa Capability) {
	if factory := c.session.Factory(capa.kind); factory != nil {
		factory.Destroy(capa.res)
		recordResourceDestroyed(capa.kind)
	}
}
