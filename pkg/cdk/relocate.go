package cdk

import "github.com/odvcencio/cdk/pkg/ui/terminal"

// step is one relative move of the relocation loop.
type step struct{ dx, dy int }

var relocationSteps = map[rune]step{
	'k': {0, -1},
	'j': {0, 1},
	'h': {-1, 0},
	'l': {1, 0},
	'7': {-1, -1},
	'9': {1, -1},
	'1': {-1, 1},
	'3': {1, 1},
}

var relocationKeys = map[terminal.Key]step{
	terminal.KeyUp:    {0, -1},
	terminal.KeyDown:  {0, 1},
	terminal.KeyLeft:  {-1, 0},
	terminal.KeyRight: {1, 0},
}

// Position lets the user move the widget with the cursor keys until RETURN
// or TAB confirms the placement. ESCAPE puts the widget back where it
// started. With keys given they are replayed, and running out confirms.
func (w *widget) Position(keys ...terminal.KeyEvent) error {
	if err := w.live(); err != nil {
		return err
	}
	s := w.canvas.session
	res := w.cap.res
	startX, startY, _ := s.Location(res)
	src := newKeySource(s, keys)

	for {
		key, ok, err := src.next(nil)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		switch {
		case key.Is(terminal.KeyEnter), key.Is(terminal.KeyTab):
			return nil
		case key.Is(terminal.KeyEscape):
			s.Move(res, At(startX, startY), false)
			w.canvas.Refresh()
			return nil
		case key.Is(terminal.KeyCtrlR), key.Is(terminal.KeyCtrlL):
			w.canvas.Refresh()
			continue
		}

		at, relative, ok := w.relocation(key)
		if !ok {
			s.Beep()
			continue
		}
		s.Move(res, at, relative)
		w.canvas.Refresh()
	}
}

// relocation maps a key to a move of the widget.
func (w *widget) relocation(key terminal.KeyEvent) (Position, bool, bool) {
	if st, ok := relocationKeys[key.Key]; ok && key.Key != terminal.KeyRune {
		return At(st.dx, st.dy), true, true
	}
	if key.Key != terminal.KeyRune {
		return Position{}, false, false
	}
	if st, ok := relocationSteps[key.Rune]; ok {
		return At(st.dx, st.dy), true, true
	}

	x, y, _ := w.canvas.session.Location(w.cap.res)
	switch key.Rune {
	case 'T':
		return Position{X: Abs(x), Y: Top}, false, true
	case 'B':
		return Position{X: Abs(x), Y: Bottom}, false, true
	case 'L':
		return Position{X: Left, Y: Abs(y)}, false, true
	case 'R':
		return Position{X: Right, Y: Abs(y)}, false, true
	case 'C':
		return Position{X: Center, Y: Center}, false, true
	}
	return Position{}, false, false
}
