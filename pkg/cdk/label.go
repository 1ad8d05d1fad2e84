package cdk

import (
	"slices"

	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

// Label displays lines of text. It cannot be activated.
type Label struct {
	widget
	lines []string
}

// NewLabel creates a label on c and registers it.
func NewLabel(c *Canvas, at Position, lines []string, opts DrawingOptions) (*Label, error) {
	if err := c.usable(); err != nil {
		return nil, err
	}
	l := &Label{lines: slices.Clone(lines)}
	if err := l.attach(c, KindLabel, l, at, opts); err != nil {
		return nil, err
	}
	return l, nil
}

// Message returns the label's lines in order.
func (l *Label) Message() []string {
	return slices.Clone(l.lines)
}

// SetMessage replaces the label's lines.
func (l *Label) SetMessage(lines []string) {
	l.lines = slices.Clone(lines)
}

// Set replaces the lines and the box flag together.
func (l *Label) Set(lines []string, box bool) {
	l.SetMessage(lines)
	l.SetBox(box)
}

// Wait draws the label and blocks until r is typed. A zero r accepts any
// key. The key that ended the wait is returned.
func (l *Label) Wait(r rune) (terminal.KeyEvent, error) {
	if err := l.live(); err != nil {
		return terminal.KeyEvent{}, err
	}
	l.paint()
	for {
		key, err := l.canvas.session.ReadKey()
		if err != nil {
			return terminal.KeyEvent{}, err
		}
		if r == 0 || key.IsRune(r) {
			return key, nil
		}
	}
}

func (l *Label) frame() Frame {
	f := l.baseFrame()
	for _, line := range l.lines {
		f.Lines = append(f.Lines, TextLine(line))
	}
	return f
}
