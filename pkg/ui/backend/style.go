package backend

import (
	"fmt"
	"strings"
)

// Color represents a terminal color.
// Values 0-255 are palette colors, values with the RGB flag are true colors.
type Color int32

// Color constants
const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
)

const rgbFlag = 0x01000000

// ColorRGB creates a true color from RGB components.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b) | rgbFlag)
}

// IsRGB returns true if this is a true color (not palette).
func (c Color) IsRGB() bool {
	return c != ColorDefault && c&rgbFlag != 0
}

// RGB returns the red, green, blue components of an RGB color.
// Returns 0, 0, 0 for non-RGB colors.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// AttrMask represents text attributes, the equivalent of curses A_* flags.
type AttrMask uint32

// Attribute flags
const (
	AttrBold AttrMask = 1 << iota
	AttrBlink
	AttrReverse
	AttrUnderline
	AttrDim
	AttrItalic
	AttrStrikeThrough

	AttrNone AttrMask = 0
)

var attrNames = []struct {
	name string
	mask AttrMask
}{
	{"bold", AttrBold},
	{"blink", AttrBlink},
	{"reverse", AttrReverse},
	{"underline", AttrUnderline},
	{"dim", AttrDim},
	{"italic", AttrItalic},
	{"strikethrough", AttrStrikeThrough},
}

// ParseAttrs parses a list like "bold|reverse" or "bold,underline".
func ParseAttrs(spec string) (AttrMask, error) {
	var mask AttrMask
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == '|' || r == ',' || r == ' '
	})
	for _, f := range fields {
		found := false
		for _, a := range attrNames {
			if strings.EqualFold(f, a.name) {
				mask |= a.mask
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown attribute %q", f)
		}
	}
	return mask, nil
}

// String lists the set attributes joined by '|'.
func (m AttrMask) String() string {
	var parts []string
	for _, a := range attrNames {
		if m&a.mask != 0 {
			parts = append(parts, a.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Style combines foreground, background colors and attributes.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns the default style (default colors, no attributes).
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// WithAttrs adds every attribute in mask.
func (s Style) WithAttrs(mask AttrMask) Style {
	s.attrs |= mask
	return s
}

// Bold enables or disables bold.
func (s Style) Bold(on bool) Style { return s.set(AttrBold, on) }

// Italic enables or disables italic.
func (s Style) Italic(on bool) Style { return s.set(AttrItalic, on) }

// Dim enables or disables dim.
func (s Style) Dim(on bool) Style { return s.set(AttrDim, on) }

// Underline enables or disables underline.
func (s Style) Underline(on bool) Style { return s.set(AttrUnderline, on) }

// Reverse enables or disables reverse video.
func (s Style) Reverse(on bool) Style { return s.set(AttrReverse, on) }

// Blink enables or disables blink.
func (s Style) Blink(on bool) Style { return s.set(AttrBlink, on) }

// StrikeThrough enables or disables strikethrough.
func (s Style) StrikeThrough(on bool) Style { return s.set(AttrStrikeThrough, on) }

func (s Style) set(mask AttrMask, on bool) Style {
	if on {
		s.attrs |= mask
	} else {
		s.attrs &^= mask
	}
	return s
}

// Attributes returns all attributes.
func (s Style) Attributes() AttrMask {
	return s.attrs
}

// FG returns the foreground color.
func (s Style) FG() Color {
	return s.fg
}

// BG returns the background color.
func (s Style) BG() Color {
	return s.bg
}

// Decompose returns the foreground, background, and attributes.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}

// Over layers s on top of base: colors left at default fall through to base
// and attributes accumulate.
func (s Style) Over(base Style) Style {
	out := base
	if s.fg != ColorDefault {
		out.fg = s.fg
	}
	if s.bg != ColorDefault {
		out.bg = s.bg
	}
	out.attrs |= s.attrs
	return out
}

// Monochrome drops both colors and keeps the attributes.
func (s Style) Monochrome() Style {
	s.fg = ColorDefault
	s.bg = ColorDefault
	return s
}
