// Package cdk manages interactive terminal widgets (labels, buttons, text
// entries, alphabetical pick lists and calendars) drawn on a single Canvas.
//
// A Canvas owns one terminal Session obtained from a Host. Every widget
// constructor asks the session's per-kind ResourceFactory for exactly one
// Resource, wraps it in a Capability and registers it with the Canvas. The
// Canvas registry decides paint order: Refresh paints bottom to top, so raised
// widgets win overlaps.
//
// Interactive widgets share one blocking activation loop. Activate with no
// arguments reads keys from the session until RETURN/TAB (ExitNormal), ESCAPE
// (ExitEscapeHit) or a key no edit rule consumes (ExitEarlyExit). Activate with
// keys replays them without reading.
//
// Lifetime: Close releases the session. Widgets outlive nothing; once the
// Canvas is closed every widget operation that would reach the surface
// returns ErrCanvasClosed. A zero-value widget is unconfigured and such
// operations return ErrUnconfiguredWidget.
package cdk
