// Package surface draws cdk widgets on a terminal backend. It provides the
// cdk.Host and cdk.Session implementations used for real terminals and for
// golden-frame tests.
package surface

import (
	"errors"
	"fmt"

	"github.com/odvcencio/cdk/pkg/cdk"
	"github.com/odvcencio/cdk/pkg/ui/backend"
	"github.com/odvcencio/cdk/pkg/ui/backend/sim"
	"github.com/odvcencio/cdk/pkg/ui/backend/tcell"
)

// ErrSessionClosed is returned by ReadKey once the backend stops delivering
// events or the session was closed.
var ErrSessionClosed = errors.New("surface: session closed")

// Opener creates an uninitialized backend.
type Opener func() (backend.Backend, error)

// Host opens sessions on backends produced by an Opener.
type Host struct {
	open Opener
}

// NewHost returns a host that opens sessions with open.
func NewHost(open Opener) *Host {
	return &Host{open: open}
}

// Tcell returns a host bound to the process terminal.
func Tcell() *Host {
	return NewHost(func() (backend.Backend, error) {
		b, err := tcell.New()
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

// Simulated returns a host backed by an in-memory screen of the given size,
// along with that screen for key injection and frame capture.
func Simulated(width, height int) (*Host, *sim.Backend) {
	b := sim.New(width, height)
	return NewHost(func() (backend.Backend, error) { return b, nil }), b
}

// OpenSession initializes a backend and wraps it in a session.
func (h *Host) OpenSession() (cdk.Session, error) {
	if h == nil || h.open == nil {
		return nil, errors.New("surface: host has no backend")
	}
	b, err := h.open()
	if err != nil {
		return nil, fmt.Errorf("open backend: %w", err)
	}
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("init backend: %w", err)
	}
	b.HideCursor()
	return NewSession(b), nil
}
