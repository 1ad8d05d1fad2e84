// Package sim provides a simulation backend for testing.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/odvcencio/cdk/pkg/ui/backend"
	"github.com/odvcencio/cdk/pkg/ui/backend/tcell"
	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

// Backend is a testable backend using tcell's simulation screen.
type Backend struct {
	*tcell.Backend
	screen        tcellv2.SimulationScreen
	width, height int
	beeps         int
	mu            sync.Mutex
}

// New creates a new simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)

	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
		width:   width,
		height:  height,
	}
}

// Init initializes the simulation screen. The simulation screen resets its
// size during Init, so the requested dimensions are applied again.
func (s *Backend) Init() error {
	if err := s.Backend.Init(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetSize(s.width, s.height)
	return nil
}

// Resize changes the simulation screen size.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
	s.screen.SetSize(width, height)
}

// PostEvent injects an event. Key events go through the simulation screen's
// key injection so they are delivered by PollEvent like typed keys.
func (s *Backend) PostEvent(ev terminal.Event) error {
	if key, ok := ev.(terminal.KeyEvent); ok {
		s.screen.InjectKey(tcell.Key(key.Key), key.Rune, tcell.Modifiers(key))
		return nil
	}
	return s.Backend.PostEvent(ev)
}

// InjectKey injects a key event into the simulation.
func (s *Backend) InjectKey(key terminal.Key, r rune) {
	_ = s.PostEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// InjectKeyRune injects a regular character keypress.
func (s *Backend) InjectKeyRune(r rune) {
	s.InjectKey(terminal.KeyRune, r)
}

// InjectKeyString injects a string as a sequence of key events.
func (s *Backend) InjectKeyString(str string) {
	for _, r := range str {
		s.InjectKeyRune(r)
	}
}

// InjectKeys injects already-built key events in order.
func (s *Backend) InjectKeys(events ...terminal.KeyEvent) {
	for _, ev := range events {
		_ = s.PostEvent(ev)
	}
}

// Beep counts bells instead of emitting them.
func (s *Backend) Beep() {
	s.mu.Lock()
	s.beeps++
	s.mu.Unlock()
}

// Beeps returns how many times Beep was called.
func (s *Backend) Beeps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beeps
}

// Capture captures the current screen content as a string.
func (s *Backend) Capture() string {
	w, h := s.Size()
	return s.CaptureRegion(0, 0, w, h)
}

// CaptureCell returns the content and style of a single cell.
func (s *Backend) CaptureCell(x, y int) (mainc rune, style backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, tcStyle, _ := s.screen.GetContent(x, y)
	if m == 0 {
		m = ' '
	}
	return m, convertTcellStyle(tcStyle)
}

// CaptureRegion captures a rectangular region of the screen.
func (s *Backend) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, h)
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, _, _, _ := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// FindText searches for text on the screen and returns its position.
func (s *Backend) FindText(text string) (x, y int) {
	lines := strings.Split(s.Capture(), "\n")
	for row, line := range lines {
		if col := strings.Index(line, text); col >= 0 {
			return len([]rune(line[:col])), row
		}
	}
	return -1, -1
}

// ContainsText returns true if the text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, y := s.FindText(text)
	return x >= 0 && y >= 0
}

// Diff compares a captured region against a golden frame, ignoring trailing
// spaces, and returns a unified diff. An empty string means they match.
func Diff(want, got string) string {
	if normalize(want) == normalize(got) {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(normalize(want)),
		B:        difflib.SplitLines(normalize(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func normalize(frame string) string {
	lines := strings.Split(strings.Trim(frame, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n") + "\n"
}

// convertTcellStyle converts tcellv2.Style to backend.Style.
func convertTcellStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(convertTcellColor(fg)).
		Background(convertTcellColor(bg))

	flags := []struct {
		tc tcellv2.AttrMask
		bc backend.AttrMask
	}{
		{tcellv2.AttrBold, backend.AttrBold},
		{tcellv2.AttrItalic, backend.AttrItalic},
		{tcellv2.AttrUnderline, backend.AttrUnderline},
		{tcellv2.AttrDim, backend.AttrDim},
		{tcellv2.AttrBlink, backend.AttrBlink},
		{tcellv2.AttrReverse, backend.AttrReverse},
		{tcellv2.AttrStrikeThrough, backend.AttrStrikeThrough},
	}
	for _, f := range flags {
		if attrs&f.tc != 0 {
			style = style.WithAttrs(f.bc)
		}
	}
	return style
}

// convertTcellColor converts tcellv2.Color to backend.Color.
func convertTcellColor(tc tcellv2.Color) backend.Color {
	if tc == tcellv2.ColorDefault {
		return backend.ColorDefault
	}
	if tc&tcellv2.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(tc & 0xFF)
}

// Ensure Backend implements backend.Backend
var _ backend.Backend = (*Backend)(nil)
