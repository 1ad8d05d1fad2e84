package cdk

import "strconv"

// Anchor selects how a Coord is interpreted by the surface.
type Anchor int

const (
	AnchorAbsolute Anchor = iota
	AnchorTop
	AnchorBottom
	AnchorLeft
	AnchorRight
	AnchorCenter
)

// Coord is one axis of a Position: an absolute cell offset or a symbolic
// anchor. Which anchors make sense on which axis is up to the surface.
type Coord struct {
	anchor Anchor
	value  int
}

// Symbolic coordinates.
var (
	Top    = Coord{anchor: AnchorTop}
	Bottom = Coord{anchor: AnchorBottom}
	Left   = Coord{anchor: AnchorLeft}
	Right  = Coord{anchor: AnchorRight}
	Center = Coord{anchor: AnchorCenter}
)

// Abs returns an absolute coordinate. In relative moves it is a delta.
func Abs(n int) Coord {
	return Coord{value: n}
}

// Anchor returns the coordinate's anchor.
func (c Coord) Anchor() Anchor { return c.anchor }

// Value returns the absolute offset; zero for symbolic coordinates.
func (c Coord) Value() int { return c.value }

// IsAbsolute reports whether the coordinate is a plain offset.
func (c Coord) IsAbsolute() bool { return c.anchor == AnchorAbsolute }

func (c Coord) String() string {
	switch c.anchor {
	case AnchorTop:
		return "TOP"
	case AnchorBottom:
		return "BOTTOM"
	case AnchorLeft:
		return "LEFT"
	case AnchorRight:
		return "RIGHT"
	case AnchorCenter:
		return "CENTER"
	default:
		return strconv.Itoa(c.value)
	}
}

// Position places a widget on the canvas.
type Position struct {
	X, Y Coord
}

// At returns an absolute position.
func At(x, y int) Position {
	return Position{X: Abs(x), Y: Abs(y)}
}

func (p Position) String() string {
	return "(" + p.X.String() + "," + p.Y.String() + ")"
}

// DrawingOptions are the presentation flags fixed at construction and
// changeable later through SetBox and SetShadow.
type DrawingOptions struct {
	Box    bool
	Shadow bool
}

// MoveOptions control a single Move call.
type MoveOptions struct {
	// Relative treats the position's absolute coordinates as deltas.
	Relative bool
	// Refresh repaints the canvas after moving.
	Refresh bool
}
