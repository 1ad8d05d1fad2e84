package cdk

import "errors"

var (
	// ErrSurfaceUnavailable is returned by Open when no terminal session
	// can be acquired from the host.
	ErrSurfaceUnavailable = errors.New("terminal surface unavailable")

	// ErrCanvasRequired is returned by widget constructors given a nil canvas.
	ErrCanvasRequired = errors.New("canvas required")

	// ErrUnconfiguredWidget is returned when an operation that reaches the
	// surface is called on a zero-value or destroyed widget.
	ErrUnconfiguredWidget = errors.New("widget is not configured")

	// ErrResourceCreationFailed is returned when the session's factory cannot
	// allocate a resource. The widget is not registered.
	ErrResourceCreationFailed = errors.New("resource creation failed")

	// ErrAlreadyActive is returned by Activate when the widget is already
	// running an activation, e.g. when a hook activates its own widget.
	ErrAlreadyActive = errors.New("widget is already active")

	// ErrCanvasClosed is returned for operations on widgets whose canvas has
	// released its session.
	ErrCanvasClosed = errors.New("canvas closed")
)
