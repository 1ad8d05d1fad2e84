package cdk

import "github.com/odvcencio/cdk/pkg/ui/terminal"

//go:generate mockgen -package=cdk -destination=mock_session_test.go github.com/odvcencio/cdk/pkg/cdk Host,Session,ResourceFactory

// Host hands out terminal sessions.
type Host interface {
	OpenSession() (Session, error)
}

// Session is one acquired terminal surface. The Canvas that opened it owns it
// exclusively and closes it exactly once.
type Session interface {
	// InitColor prepares color output (or falls back to monochrome).
	InitColor()

	// Factory returns the resource factory for a widget kind, nil if the
	// surface cannot draw that kind.
	Factory(kind Kind) ResourceFactory

	// Paint draws a resource with the given frame.
	Paint(res Resource, f Frame)

	// Erase blanks the resource's last painted area without destroying it.
	Erase(res Resource)

	// Move relocates a resource. With relative set the absolute parts of at
	// are deltas from the current location.
	Move(res Resource, at Position, relative bool)

	// Location returns the resource's resolved top-left cell.
	Location(res Resource) (x, y int, ok bool)

	// Clear blanks the whole screen.
	Clear()

	// Flush pushes pending output to the terminal.
	Flush()

	// Beep signals a rejected key.
	Beep()

	// ReadKey blocks until a key is typed.
	ReadKey() (terminal.KeyEvent, error)

	// Close releases the terminal.
	Close() error
}

// ResourceFactory allocates and frees the rendering objects for one kind.
type ResourceFactory interface {
	Create(at Position, content Frame, opts DrawingOptions) (Resource, error)
	Destroy(res Resource)
}
