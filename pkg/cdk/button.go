package cdk

import (
	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

// Button is a single line of text that can be confirmed.
type Button struct {
	widget
	interactive
	text     string
	callback func(*Button)
}

// NewButton creates a button on c and registers it.
func NewButton(c *Canvas, at Position, text string, opts DrawingOptions) (*Button, error) {
	if err := c.usable(); err != nil {
		return nil, err
	}
	b := &Button{text: text}
	if err := b.attach(c, KindButton, b, at, opts); err != nil {
		return nil, err
	}
	return b, nil
}

// Message returns the button text.
func (b *Button) Message() string { return b.text }

// SetMessage replaces the button text.
func (b *Button) SetMessage(text string) { b.text = text }

// SetCallback sets the function run when the button is confirmed.
func (b *Button) SetCallback(fn func(*Button)) { b.callback = fn }

// Activate runs the button until it is confirmed or abandoned. It returns 0
// when confirmed and -1 otherwise. With keys given they are replayed instead
// of reading the terminal.
func (b *Button) Activate(keys ...terminal.KeyEvent) (int, error) {
	return activate[int](&b.widget, &b.interactive, buttonEditor{b}, keys)
}

type buttonEditor struct{ b *Button }

func (buttonEditor) begin() {}

func (buttonEditor) edit(terminal.KeyEvent) editResult { return editIgnored }

func (e buttonEditor) result(exit ExitType) int {
	if exit != ExitNormal {
		return -1
	}
	if e.b.callback != nil {
		e.b.callback(e.b)
	}
	return 0
}

func (e buttonEditor) display() string { return e.b.text }

func (b *Button) frame() Frame {
	f := b.baseFrame()
	line := TextLine(b.text)
	if b.active {
		line.Style = b.theme().Highlight
	}
	f.Lines = []Line{line}
	return f
}
