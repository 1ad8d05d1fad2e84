package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/cdk/pkg/cdk"
	"github.com/odvcencio/cdk/pkg/ui/backend"
	"github.com/odvcencio/cdk/pkg/ui/backend/sim"
	"github.com/odvcencio/cdk/pkg/ui/backend/tcell"
	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

func newSession(t *testing.T, w, h int) (*Session, *sim.Backend) {
	t.Helper()
	host, screen := Simulated(w, h)
	s, err := host.OpenSession()
	require.NoError(t, err)
	session := s.(*Session)
	t.Cleanup(func() { _ = session.Close() })
	return session, screen
}

func create(t *testing.T, s *Session, kind cdk.Kind, at cdk.Position, f cdk.Frame, opts cdk.DrawingOptions) cdk.Resource {
	t.Helper()
	res, err := s.Factory(kind).Create(at, f, opts)
	require.NoError(t, err)
	require.NotEqual(t, cdk.NoResource, res)
	return res
}

func text(lines ...string) cdk.Frame {
	f := cdk.Frame{
		Border:     cdk.DefaultBorder(),
		BoxStyle:   backend.DefaultStyle(),
		Background: backend.DefaultStyle(),
	}
	for _, l := range lines {
		f.Lines = append(f.Lines, cdk.TextLine(l))
	}
	return f
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		coord   cdk.Coord
		current int
		want    int
	}{
		{"start", cdk.Left, 7, 0},
		{"top", cdk.Top, 7, 0},
		{"end", cdk.Right, 7, 16},
		{"bottom", cdk.Bottom, 7, 16},
		{"center", cdk.Center, 7, 8},
		{"absolute", cdk.Abs(3), 0, 3},
		{"relative", cdk.Abs(3), 7, 10},
		{"negative clamps", cdk.Abs(-5), 2, 0},
		{"past end clamps", cdk.Abs(50), 0, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.coord, tt.current, 4, 20))
		})
	}

	assert.Equal(t, 0, resolve(cdk.Right, 0, 30, 20), "oversized windows pin to the origin")
}

func TestMeasure(t *testing.T) {
	w, h := measure(text("ab", "wider"))
	assert.Equal(t, 5, w)
	assert.Equal(t, 2, h)

	f := text("日本")
	f.Box = true
	w, h = measure(f)
	assert.Equal(t, 6, w)
	assert.Equal(t, 3, h)

	w, h = measure(cdk.Frame{})
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestFactory(t *testing.T) {
	s, _ := newSession(t, 20, 10)
	assert.Nil(t, s.Factory(cdk.KindNone))

	a := create(t, s, cdk.KindLabel, cdk.At(1, 2), text("a"), cdk.DrawingOptions{})
	b := create(t, s, cdk.KindCalendar, cdk.At(0, 0), text("b"), cdk.DrawingOptions{})
	assert.NotEqual(t, a, b)
	assert.Equal(t, cdk.KindLabel, s.Kind(a))
	assert.Equal(t, cdk.KindCalendar, s.Kind(b))

	x, y, ok := s.Location(a)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, []int{x, y})

	s.Factory(cdk.KindLabel).Destroy(a)
	_, _, ok = s.Location(a)
	assert.False(t, ok)
	assert.Equal(t, cdk.KindNone, s.Kind(a))
}

func TestPaint_BoxAndShadow(t *testing.T) {
	s, screen := newSession(t, 10, 6)
	res := create(t, s, cdk.KindButton, cdk.At(1, 1), text("ok"), cdk.DrawingOptions{Box: true, Shadow: true})

	f := text("ok")
	f.Box, f.Shadow = true, true
	s.Paint(res, f)
	s.Flush()

	want := `
 ┌──┐
 │ok│
 └──┘
`
	if diff := sim.Diff(want, screen.CaptureRegion(0, 1, 10, 3)); diff != "" {
		t.Fatalf("frame mismatch:\n%s", diff)
	}

	_, style := screen.CaptureCell(5, 2)
	assert.Equal(t, backend.ColorBlack, style.BG())
	_, style = screen.CaptureCell(2, 4)
	assert.Equal(t, backend.ColorBlack, style.BG())
	_, style = screen.CaptureCell(5, 1)
	assert.NotEqual(t, backend.ColorBlack, style.BG(), "shadow starts one row down")
}

func TestPaint_CustomBorderAndSpans(t *testing.T) {
	s, screen := newSession(t, 10, 4)
	f := cdk.Frame{
		Box:        true,
		Border:     cdk.Border{UL: '+', UR: '+', LL: '+', LR: '+', Horizontal: '-', Vertical: '|'},
		BoxStyle:   backend.DefaultStyle(),
		Background: backend.DefaultStyle(),
		Lines: []cdk.Line{{
			Text:  "abc",
			Style: backend.DefaultStyle(),
			Spans: []cdk.Span{{Start: 1, End: 2, Style: backend.DefaultStyle().Bold(true)}},
		}},
	}
	res := create(t, s, cdk.KindLabel, cdk.At(0, 0), f, cdk.DrawingOptions{Box: true})
	s.Paint(res, f)
	s.Flush()

	assert.Equal(t, "+---+\n|abc|\n+---+", screen.CaptureRegion(0, 0, 5, 3))

	_, style := screen.CaptureCell(2, 1)
	assert.NotZero(t, style.Attributes()&backend.AttrBold)
	_, style = screen.CaptureCell(1, 1)
	assert.Zero(t, style.Attributes()&backend.AttrBold)
}

func TestPaint_BackgroundColor(t *testing.T) {
	s, screen := newSession(t, 10, 2)
	f := text("x")
	f.BackgroundColor = "blue"
	res := create(t, s, cdk.KindLabel, cdk.At(0, 0), f, cdk.DrawingOptions{})
	s.Paint(res, f)
	s.Flush()

	_, style := screen.CaptureCell(0, 0)
	assert.Equal(t, tcell.ParseColor("blue"), style.BG())
}

type monochrome struct{ *sim.Backend }

func (monochrome) SupportsColor() bool { return false }

func TestPaint_Monochrome(t *testing.T) {
	screen := sim.New(10, 2)
	host := NewHost(func() (backend.Backend, error) { return monochrome{screen}, nil })
	cs, err := host.OpenSession()
	require.NoError(t, err)
	s := cs.(*Session)
	t.Cleanup(func() { _ = s.Close() })

	s.InitColor()
	assert.False(t, s.Color())

	f := text("x")
	f.BackgroundColor = "blue"
	res := create(t, s, cdk.KindLabel, cdk.At(0, 0), f, cdk.DrawingOptions{})
	s.Paint(res, f)
	s.Flush()

	_, style := screen.CaptureCell(0, 0)
	assert.Equal(t, backend.ColorDefault, style.BG())
}

func TestEraseAndMove(t *testing.T) {
	s, screen := newSession(t, 20, 5)
	res := create(t, s, cdk.KindLabel, cdk.At(0, 0), text("hey"), cdk.DrawingOptions{})

	// Moving an unpainted window only changes its location.
	s.Move(res, cdk.At(2, 1), false)
	s.Flush()
	assert.False(t, screen.ContainsText("hey"))

	s.Paint(res, text("hey"))
	s.Flush()
	x, y := screen.FindText("hey")
	assert.Equal(t, []int{2, 1}, []int{x, y})

	s.Move(res, cdk.At(3, 1), true)
	x, y = screen.FindText("hey")
	assert.Equal(t, []int{5, 2}, []int{x, y})

	s.Erase(res)
	s.Flush()
	assert.False(t, screen.ContainsText("hey"))
	_, _, ok := s.Location(res)
	assert.True(t, ok)
}

func TestReadKey(t *testing.T) {
	s, screen := newSession(t, 10, 2)

	screen.InjectKeyRune('a')
	key, err := s.ReadKey()
	require.NoError(t, err)
	assert.True(t, key.IsRune('a'))

	screen.InjectKey(terminal.KeyEscape, 0)
	key, err = s.ReadKey()
	require.NoError(t, err)
	assert.True(t, key.Is(terminal.KeyEscape))

	require.NoError(t, s.Close())
	_, err = s.ReadKey()
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestClose(t *testing.T) {
	s, _ := newSession(t, 10, 2)
	res := create(t, s, cdk.KindLabel, cdk.At(0, 0), text("x"), cdk.DrawingOptions{})

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.Factory(cdk.KindLabel).Create(cdk.At(0, 0), text("y"), cdk.DrawingOptions{})
	assert.ErrorIs(t, err, ErrSessionClosed)

	// Drawing after close is ignored.
	s.Paint(res, text("x"))
	s.Clear()
	s.Flush()
	s.Beep()
}

func TestOpenSession_Errors(t *testing.T) {
	_, err := (&Host{}).OpenSession()
	assert.Error(t, err)

	var nilHost *Host
	_, err = nilHost.OpenSession()
	assert.Error(t, err)

	_, err = NewHost(func() (backend.Backend, error) { return nil, assert.AnError }).OpenSession()
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCanvasOnSimulatedHost(t *testing.T) {
	host, screen := Simulated(30, 8)
	c, err := cdk.Open(host)
	require.NoError(t, err)
	defer c.Close()

	l, err := cdk.NewLabel(c, cdk.Position{X: cdk.Center, Y: cdk.Top}, []string{"title"}, cdk.DrawingOptions{})
	require.NoError(t, err)
	c.Refresh()

	x, y := screen.FindText("title")
	assert.Equal(t, []int{12, 0}, []int{x, y})
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Registered(l))
}
