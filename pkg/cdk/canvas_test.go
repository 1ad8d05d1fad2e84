package cdk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	session *MockSession
	factory *MockResourceFactory
	canvas  *Canvas
	next    Resource
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	host := NewMockHost(ctrl)
	session := NewMockSession(ctrl)

	host.EXPECT().OpenSession().Return(session, nil)
	session.EXPECT().InitColor()

	c, err := Open(host)
	require.NoError(t, err)
	return &fixture{
		session: session,
		factory: NewMockResourceFactory(ctrl),
		canvas:  c,
	}
}

// expectCreate makes the next constructor of kind succeed.
func (f *fixture) expectCreate(kind Kind) Resource {
	f.next++
	res := f.next
	f.session.EXPECT().Factory(kind).Return(f.factory)
	f.factory.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(res, nil)
	return res
}

func (f *fixture) label(t *testing.T, lines ...string) *Label {
	t.Helper()
	f.expectCreate(KindLabel)
	l, err := NewLabel(f.canvas, At(0, 0), lines, DrawingOptions{})
	require.NoError(t, err)
	return l
}

func resources(c *Canvas) []Resource {
	var out []Resource
	for _, capa := range c.Widgets() {
		out = append(out, capa.Resource())
	}
	return out
}

func TestOpen_NilHost(t *testing.T) {
	_, err := Open(nil)
	assert.ErrorIs(t, err, ErrSurfaceUnavailable)
}

func TestOpen_SessionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := NewMockHost(ctrl)
	cause := errors.New("no tty")
	host.EXPECT().OpenSession().Return(nil, cause)

	_, err := Open(host)
	assert.ErrorIs(t, err, ErrSurfaceUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestOpen_AssignsID(t *testing.T) {
	a := newFixture(t)
	b := newFixture(t)
	assert.NotEmpty(t, a.canvas.ID())
	assert.NotEqual(t, a.canvas.ID(), b.canvas.ID())
}

func TestRegister_Idempotent(t *testing.T) {
	f := newFixture(t)
	l := f.label(t, "a")

	require.Equal(t, 1, f.canvas.Len())
	f.canvas.Register(l)
	f.canvas.Register(l)
	assert.Equal(t, 1, f.canvas.Len())
	assert.True(t, f.canvas.Registered(l))
}

func TestUnregister_IdempotentAndRoundTrip(t *testing.T) {
	f := newFixture(t)
	l := f.label(t, "a")

	f.canvas.Unregister(l)
	f.canvas.Unregister(l)
	assert.Equal(t, 0, f.canvas.Len())
	assert.False(t, f.canvas.Registered(l))
	assert.True(t, l.Capability().Configured(), "unregister must not destroy the resource")

	f.canvas.Register(l)
	f.canvas.Register(l)
	assert.Equal(t, 1, f.canvas.Len())
}

func TestRegister_IgnoresUnconfigured(t *testing.T) {
	f := newFixture(t)
	var l Label
	f.canvas.Register(&l)
	f.canvas.Register(nil)
	assert.Equal(t, 0, f.canvas.Len())
}

func TestRaiseLower(t *testing.T) {
	f := newFixture(t)
	a := f.label(t, "a")
	b := f.label(t, "b")
	c := f.label(t, "c")
	ra, rb, rc := a.Capability().Resource(), b.Capability().Resource(), c.Capability().Resource()

	require.Equal(t, []Resource{ra, rb, rc}, resources(f.canvas))

	f.canvas.Raise(a)
	assert.Equal(t, []Resource{rb, rc, ra}, resources(f.canvas))

	f.canvas.Lower(c)
	assert.Equal(t, []Resource{rc, rb, ra}, resources(f.canvas))

	f.canvas.Raise(a)
	assert.Equal(t, []Resource{rc, rb, ra}, resources(f.canvas))
}

func TestRaiseLower_AbsentIsNoop(t *testing.T) {
	f := newFixture(t)
	a := f.label(t, "a")
	b := f.label(t, "b")
	f.canvas.Unregister(b)
	before := resources(f.canvas)

	f.canvas.Raise(b)
	f.canvas.Lower(b)
	var zero Label
	f.canvas.Raise(&zero)
	f.canvas.Lower(nil)

	assert.Equal(t, before, resources(f.canvas))
	assert.True(t, f.canvas.Registered(a))
}

func TestRefresh_PaintsBottomToTop(t *testing.T) {
	f := newFixture(t)
	a := f.label(t, "a")
	b := f.label(t, "b")
	f.canvas.Raise(a)

	var painted []string
	gomock.InOrder(
		f.session.EXPECT().Clear(),
		f.session.EXPECT().Paint(b.Capability().Resource(), gomock.Any()).Do(func(_ Resource, fr Frame) {
			painted = append(painted, fr.Lines[0].Text)
		}),
		f.session.EXPECT().Paint(a.Capability().Resource(), gomock.Any()).Do(func(_ Resource, fr Frame) {
			painted = append(painted, fr.Lines[0].Text)
		}),
		f.session.EXPECT().Flush(),
	)

	f.canvas.Refresh()
	assert.Equal(t, []string{"b", "a"}, painted)
}

func TestErase_KeepsRegistry(t *testing.T) {
	f := newFixture(t)
	a := f.label(t, "a")
	b := f.label(t, "b")

	f.session.EXPECT().Erase(a.Capability().Resource())
	f.session.EXPECT().Erase(b.Capability().Resource())
	f.session.EXPECT().Flush()

	f.canvas.Erase()
	assert.Equal(t, 2, f.canvas.Len())
}

func TestClose_ReleasesOnce(t *testing.T) {
	f := newFixture(t)
	l := f.label(t, "a")

	f.session.EXPECT().Close().Return(nil).Times(1)
	require.NoError(t, f.canvas.Close())
	require.NoError(t, f.canvas.Close())

	assert.True(t, f.canvas.Closed())
	assert.Equal(t, 0, f.canvas.Len())

	// Registry operations are no-ops, surface operations fail.
	f.canvas.Register(l)
	f.canvas.Refresh()
	f.canvas.Erase()
	assert.Equal(t, 0, f.canvas.Len())
	assert.ErrorIs(t, l.Draw(), ErrCanvasClosed)
	assert.ErrorIs(t, l.Move(At(1, 1), MoveOptions{}), ErrCanvasClosed)

	_, err := NewLabel(f.canvas, At(0, 0), nil, DrawingOptions{})
	assert.ErrorIs(t, err, ErrCanvasClosed)
}

func TestConstructor_CanvasRequired(t *testing.T) {
	_, err := NewLabel(nil, At(0, 0), []string{"a"}, DrawingOptions{})
	assert.ErrorIs(t, err, ErrCanvasRequired)
	_, err = NewButton(nil, At(0, 0), "ok", DrawingOptions{})
	assert.ErrorIs(t, err, ErrCanvasRequired)
	_, err = NewEntry(nil, At(0, 0), EntryContent{}, DrawingOptions{})
	assert.ErrorIs(t, err, ErrCanvasRequired)
	_, err = NewAlphaList(nil, At(0, 0), AlphaListContent{}, DrawingOptions{})
	assert.ErrorIs(t, err, ErrCanvasRequired)
	_, err = NewCalendar(nil, At(0, 0), CalendarContent{}, DrawingOptions{})
	assert.ErrorIs(t, err, ErrCanvasRequired)
}

func TestConstructor_CreationFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{"factory error", func(f *fixture) {
			f.session.EXPECT().Factory(KindButton).Return(f.factory)
			f.factory.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(NoResource, errors.New("out of windows"))
		}},
		{"null resource", func(f *fixture) {
			f.session.EXPECT().Factory(KindButton).Return(f.factory)
			f.factory.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(NoResource, nil)
		}},
		{"no factory", func(f *fixture) {
			f.session.EXPECT().Factory(KindButton).Return(nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			b, err := NewButton(f.canvas, At(0, 0), "ok", DrawingOptions{Box: true})
			assert.ErrorIs(t, err, ErrResourceCreationFailed)
			assert.Nil(t, b)
			assert.Equal(t, 0, f.canvas.Len())
		})
	}
}

func TestConstructor_PassesFrameAndOptions(t *testing.T) {
	f := newFixture(t)
	at := Position{X: Center, Y: Abs(5)}
	opts := DrawingOptions{Box: true, Shadow: true}

	f.session.EXPECT().Factory(KindLabel).Return(f.factory)
	f.factory.EXPECT().Create(at, gomock.Any(), opts).DoAndReturn(
		func(_ Position, content Frame, _ DrawingOptions) (Resource, error) {
			require.Len(t, content.Lines, 2)
			assert.Equal(t, "x", content.Lines[0].Text)
			assert.True(t, content.Box)
			assert.Equal(t, DefaultBorder(), content.Border)
			return 9, nil
		})

	l, err := NewLabel(f.canvas, at, []string{"x", "y"}, opts)
	require.NoError(t, err)
	assert.Equal(t, Capability{kind: KindLabel, res: 9}, l.Capability())
	assert.NotEmpty(t, l.ID())
}

func TestDestroy(t *testing.T) {
	f := newFixture(t)
	l := f.label(t, "a")
	res := l.Capability().Resource()

	f.session.EXPECT().Factory(KindLabel).Return(f.factory)
	f.factory.EXPECT().Destroy(res)

	require.NoError(t, l.Destroy())
	assert.False(t, l.Capability().Configured())
	assert.Equal(t, 0, f.canvas.Len())
	assert.ErrorIs(t, l.Draw(), ErrUnconfiguredWidget)
	assert.ErrorIs(t, l.Destroy(), ErrUnconfiguredWidget)
}

func TestMove_RefreshRepaintsCanvas(t *testing.T) {
	f := newFixture(t)
	l := f.label(t, "a")
	res := l.Capability().Resource()

	gomock.InOrder(
		f.session.EXPECT().Move(res, At(2, 1), true),
		f.session.EXPECT().Clear(),
		f.session.EXPECT().Paint(res, gomock.Any()),
		f.session.EXPECT().Flush(),
	)
	require.NoError(t, l.Move(At(2, 1), MoveOptions{Relative: true, Refresh: true}))

	f.session.EXPECT().Move(res, Position{X: Left, Y: Bottom}, false)
	require.NoError(t, l.Move(Position{X: Left, Y: Bottom}, MoveOptions{}))
}

func TestZeroWidget(t *testing.T) {
	var l Label
	assert.Equal(t, KindNone, l.Capability().Kind())
	assert.Equal(t, NoResource, l.Capability().Resource())
	assert.Empty(t, l.ID())

	// Setters and getters work on local state.
	l.SetBox(true)
	l.SetMessage([]string{"a"})
	assert.True(t, l.Box())
	assert.Equal(t, []string{"a"}, l.Message())

	assert.ErrorIs(t, l.Draw(), ErrUnconfiguredWidget)
	assert.ErrorIs(t, l.Erase(), ErrUnconfiguredWidget)
	assert.ErrorIs(t, l.Move(At(0, 0), MoveOptions{}), ErrUnconfiguredWidget)
	assert.ErrorIs(t, l.Position(), ErrUnconfiguredWidget)
	_, err := l.Wait(0)
	assert.ErrorIs(t, err, ErrUnconfiguredWidget)

	var b Button
	_, err = b.Activate()
	assert.ErrorIs(t, err, ErrUnconfiguredWidget)
	assert.Equal(t, ExitNeverActivated, b.ExitType())
}

func TestCapability(t *testing.T) {
	assert.False(t, Capability{}.Configured())
	assert.Equal(t, Capability{}, newCapability(KindNone, 3))
	assert.Equal(t, Capability{}, newCapability(KindEntry, NoResource))
	assert.Equal(t, "entry#3", newCapability(KindEntry, 3).String())
	assert.Equal(t, "none", Capability{}.String())

	assert.True(t, KindCalendar.Interactive())
	assert.False(t, KindLabel.Interactive())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
