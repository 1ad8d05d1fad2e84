package cdk

import (
	"fmt"

	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

// ExitType reports how the last activation of a widget ended.
type ExitType int

const (
	// ExitNeverActivated is reported before the first activation.
	ExitNeverActivated ExitType = iota
	// ExitNormal means RETURN or TAB confirmed the widget.
	ExitNormal
	// ExitEscapeHit means ESCAPE cancelled the widget.
	ExitEscapeHit
	// ExitEarlyExit means a key the widget does not handle ended it, or the
	// replayed keys ran out.
	ExitEarlyExit
)

func (e ExitType) String() string {
	switch e {
	case ExitNeverActivated:
		return "NEVER_ACTIVATED"
	case ExitNormal:
		return "NORMAL"
	case ExitEscapeHit:
		return "ESCAPE_HIT"
	case ExitEarlyExit:
		return "EARLY_EXIT"
	default:
		return fmt.Sprintf("ExitType(%d)", int(e))
	}
}

// PreProcessFunc runs before a key is applied. It returns the key to apply
// and false to drop the key entirely.
type PreProcessFunc func(a *Activation, key terminal.KeyEvent, data any) (terminal.KeyEvent, bool)

// PostProcessFunc runs after a key has been applied by the widget.
type PostProcessFunc func(a *Activation, key terminal.KeyEvent, data any)

// Activation is the view of a running activation handed to hooks.
type Activation struct {
	kind    Kind
	pending []terminal.KeyEvent
	value   func() string
}

// Inject queues keys that are processed before the next read.
func (a *Activation) Inject(keys ...terminal.KeyEvent) {
	a.pending = append(a.pending, keys...)
}

// Value returns the widget's current value as displayed.
func (a *Activation) Value() string { return a.value() }

// Kind returns the kind of the widget being activated.
func (a *Activation) Kind() Kind { return a.kind }

type hooks struct {
	pre      PreProcessFunc
	preData  any
	post     PostProcessFunc
	postData any
}

// SetPreProcess installs a hook run before each key. data is passed back
// unchanged.
func (h *hooks) SetPreProcess(fn PreProcessFunc, data any) {
	h.pre, h.preData = fn, data
}

// SetPostProcess installs a hook run after each applied key.
func (h *hooks) SetPostProcess(fn PostProcessFunc, data any) {
	h.post, h.postData = fn, data
}

// interactive is embedded by the widgets that can be activated.
type interactive struct {
	hooks
	exit   ExitType
	active bool
}

// ExitType reports how the last activation ended.
func (i *interactive) ExitType() ExitType { return i.exit }

type editResult int

const (
	editIgnored editResult = iota
	editAccepted
	editRejected
)

// editor is the per-variant part of an activation.
type editor[T any] interface {
	begin()
	edit(key terminal.KeyEvent) editResult
	result(exit ExitType) T
	display() string
}

// keySource yields replayed keys when any were given, otherwise reads from
// the session. Keys injected by hooks always come first.
type keySource struct {
	session Session
	replay  bool
	keys    []terminal.KeyEvent
}

func newKeySource(s Session, keys []terminal.KeyEvent) *keySource {
	return &keySource{session: s, replay: len(keys) > 0, keys: keys}
}

func (s *keySource) next(a *Activation) (terminal.KeyEvent, bool, error) {
	if a != nil && len(a.pending) > 0 {
		key := a.pending[0]
		a.pending = a.pending[1:]
		return key, true, nil
	}
	if s.replay {
		if len(s.keys) == 0 {
			return terminal.KeyEvent{}, false, nil
		}
		key := s.keys[0]
		s.keys = s.keys[1:]
		return key, true, nil
	}
	key, err := s.session.ReadKey()
	if err != nil {
		return terminal.KeyEvent{}, false, err
	}
	return key, true, nil
}

// activate runs the shared key loop for one widget until it reaches a
// terminal state.
func activate[T any](w *widget, ia *interactive, ed editor[T], keys []terminal.KeyEvent) (T, error) {
	var zero T
	if err := w.live(); err != nil {
		return zero, err
	}
	if ia.active {
		return zero, ErrAlreadyActive
	}

	a := &Activation{kind: w.cap.kind, value: ed.display}
	src := newKeySource(w.canvas.session, keys)
	count := 0

	finish := func(exit ExitType) T {
		ia.exit = exit
		ia.active = false
		res := ed.result(exit)
		w.paint()
		recordActivation(w.cap.kind, exit)
		w.log.ActivationFinished(exit.String(), count)
		return res
	}

	ed.begin()
	ia.active = true
	w.paint()

	for {
		key, ok, err := src.next(a)
		if err != nil {
			finish(ExitEarlyExit)
			return zero, err
		}
		if !ok {
			return finish(ExitEarlyExit), nil
		}
		count++

		if ia.pre != nil {
			replaced, keep := ia.pre(a, key, ia.preData)
			if !keep {
				continue
			}
			key = replaced
		}

		switch {
		case key.Is(terminal.KeyEnter), key.Is(terminal.KeyTab):
			return finish(ExitNormal), nil
		case key.Is(terminal.KeyEscape):
			return finish(ExitEscapeHit), nil
		}

		switch ed.edit(key) {
		case editAccepted:
			w.paint()
			if ia.post != nil {
				ia.post(a, key, ia.postData)
			}
		case editRejected:
			w.beep()
		default:
			return finish(ExitEarlyExit), nil
		}
	}
}
