package pie

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fill struct {
	color color.Color
	alpha float64
}

type recordingSurface struct {
	width, height int
	clears        int
	arcs          int
	fills         []fill
}

func (s *recordingSurface) Resize(w, h int) { s.width, s.height = w, h }
func (s *recordingSurface) Clear()          { s.clears++; s.fills = nil; s.arcs = 0 }
func (s *recordingSurface) BeginPath()      {}
func (s *recordingSurface) Arc(_, _, _, _, _ float64, _ bool) {
	s.arcs++
}
func (s *recordingSurface) Fill(c color.Color, alpha float64) {
	s.fills = append(s.fills, fill{color: c, alpha: alpha})
}

type pointerBus struct {
	moves  []func(float64, float64)
	leaves []func()
	binds  int
	left   float64
	top    float64
}

func (p *pointerBus) BindPointer(move func(float64, float64), leave func()) func() {
	p.binds++
	p.moves = append(p.moves, move)
	p.leaves = append(p.leaves, leave)
	i := len(p.moves) - 1
	return func() { p.moves[i] = nil; p.leaves[i] = nil }
}

func (p *pointerBus) Origin() (float64, float64) { return p.left, p.top }

func (p *pointerBus) move(x, y float64) {
	for _, fn := range p.moves {
		if fn != nil {
			fn(x, y)
		}
	}
}

func (p *pointerBus) active() int {
	n := 0
	for _, fn := range p.moves {
		if fn != nil {
			n++
		}
	}
	return n
}

type fakeRow struct{ marks, unmarks int }

func (r *fakeRow) MarkActive()   { r.marks++ }
func (r *fakeRow) UnmarkActive() { r.unmarks++ }

type fakeRows map[string]*fakeRow

func (f fakeRows) Row(id string) (Row, bool) {
	r, ok := f[id]
	if !ok {
		return nil, false
	}
	return r, true
}

type fakeTooltip struct {
	texts []string
}

func (f *fakeTooltip) SetTooltip(text string) { f.texts = append(f.texts, text) }

type fixture struct {
	chart   *Chart
	surface *recordingSurface
	bus     *pointerBus
	rows    fakeRows
	tooltip *fakeTooltip
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		surface: &recordingSurface{},
		bus:     &pointerBus{},
		rows:    fakeRows{"a": {}, "b": {}},
		tooltip: &fakeTooltip{},
	}
	opts = append([]Option{WithPointerSource(f.bus), WithRows(f.rows), WithTooltip(f.tooltip)}, opts...)
	c, err := New([]Item{{ID: "a", Value: 1}, {ID: "b", Value: 3}}, f.surface, opts...)
	require.NoError(t, err)
	f.chart = c
	c.Resize(300, 200)
	return f
}

func TestNew_InvalidInput(t *testing.T) {
	_, err := New(nil, &recordingSurface{})
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestChart_ResizeUsesSmallerSide(t *testing.T) {
	f := newFixture(t)
	g := f.chart.Geometry()
	assert.Equal(t, 200, g.Size)
	assert.Equal(t, 100.0, g.CenterX)
	assert.Equal(t, 100.0, g.CenterY)
	assert.Equal(t, 100.0, g.OuterRadius)
	assert.InDelta(t, 200.0*2/6, g.InnerRadius, 1e-9)
	assert.Equal(t, 200, f.surface.width)
	assert.Equal(t, 200, f.surface.height)
	assert.Equal(t, 1, f.surface.clears)
	assert.Len(t, f.surface.fills, 2)
}

func TestChart_ResizeFloorsAndIgnoresEmpty(t *testing.T) {
	f := newFixture(t)
	f.chart.Resize(150.9, 400)
	assert.Equal(t, 150, f.chart.Geometry().Size)

	f.chart.Resize(0, 400)
	assert.Equal(t, 150, f.chart.Geometry().Size)
}

func TestChart_RedrawDrawsAnnularWedges(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, 4, f.surface.arcs)
	require.Len(t, f.surface.fills, 2)
	assert.Equal(t, HexColor("a"), f.surface.fills[0].color)
	assert.Equal(t, 1.0, f.surface.fills[0].alpha)
	assert.Equal(t, 1.0, f.surface.fills[1].alpha)
}

func TestChart_PointerMoveFocusesSegmentAtZeroAngle(t *testing.T) {
	f := newFixture(t)
	g := f.chart.Geometry()
	r := (g.InnerRadius + g.OuterRadius) / 2

	f.chart.PointerMove(g.CenterX+r, g.CenterY)

	seg, ok := f.chart.Focused()
	require.True(t, ok)
	assert.Equal(t, "b", seg.ID)
	assert.Equal(t, "75%", f.chart.Tooltip())
	assert.Equal(t, 1, f.rows["b"].marks)
	require.Len(t, f.surface.fills, 2)
	assert.Equal(t, 1.0, f.surface.fills[0].alpha)
	assert.Equal(t, DefaultDimAlpha, f.surface.fills[1].alpha)
}

func TestChart_PointerMoveUsesSurfaceOrigin(t *testing.T) {
	f := newFixture(t)
	f.bus.left, f.bus.top = 40, 1000
	g := f.chart.Geometry()
	r := (g.InnerRadius + g.OuterRadius) / 2

	// Up and to the right of the centre lands in "a".
	f.chart.PointerMove(40+g.CenterX+r*math.Cos(-math.Pi/4), 1000+g.CenterY+r*math.Sin(-math.Pi/4))
	seg, ok := f.chart.Focused()
	require.True(t, ok)
	assert.Equal(t, "a", seg.ID)
	assert.Equal(t, "25%", f.chart.Tooltip())
}

func TestChart_PointerOutsideRingClearsFocus(t *testing.T) {
	f := newFixture(t)
	f.chart.SetFocusedItemByID("a")
	g := f.chart.Geometry()

	f.chart.PointerMove(g.CenterX, g.CenterY) // hole
	_, ok := f.chart.Focused()
	assert.False(t, ok)

	f.chart.SetFocusedItemByID("a")
	f.chart.PointerMove(g.CenterX+g.OuterRadius+1, g.CenterY)
	_, ok = f.chart.Focused()
	assert.False(t, ok)
	assert.Equal(t, "", f.chart.Tooltip())
}

func TestChart_RingEdgesAreInclusive(t *testing.T) {
	f := newFixture(t, WithInnerRatio(0.5))
	g := f.chart.Geometry()
	require.Equal(t, 50.0, g.InnerRadius)

	f.chart.PointerMove(g.CenterX+g.OuterRadius, g.CenterY)
	seg, ok := f.chart.Focused()
	require.True(t, ok)
	assert.Equal(t, "b", seg.ID)

	f.chart.PointerMove(g.CenterX, g.CenterY-g.InnerRadius)
	seg, ok = f.chart.Focused()
	require.True(t, ok)
	assert.Equal(t, "a", seg.ID)
}

func TestChart_SameFocusIsNoop(t *testing.T) {
	f := newFixture(t)
	f.chart.SetFocusedItemByID("a")
	clears := f.surface.clears
	tips := len(f.tooltip.texts)

	f.chart.SetFocusedItemByID("a")
	assert.Equal(t, clears, f.surface.clears)
	assert.Len(t, f.tooltip.texts, tips)
	assert.Equal(t, 1, f.rows["a"].marks)
	assert.Equal(t, 0, f.rows["a"].unmarks)

	f.chart.ClearFocus()
	clears = f.surface.clears
	f.chart.PointerLeave()
	f.chart.SetFocusedItemByID("")
	assert.Equal(t, clears, f.surface.clears)
}

func TestChart_UnknownIDClearsFocus(t *testing.T) {
	f := newFixture(t)
	f.chart.SetFocusedItemByID("b")
	f.chart.SetFocusedItemByID("nope")

	_, ok := f.chart.Focused()
	assert.False(t, ok)
	assert.Equal(t, []string{"75%", ""}, f.tooltip.texts)
	assert.Equal(t, 1, f.rows["b"].unmarks)
}

func TestChart_TransitionMovesRowHighlight(t *testing.T) {
	f := newFixture(t)
	f.chart.SetFocusedItemByID("a")
	f.chart.SetFocusedItemByID("b")

	assert.Equal(t, 1, f.rows["a"].marks)
	assert.Equal(t, 1, f.rows["a"].unmarks)
	assert.Equal(t, 1, f.rows["b"].marks)
	assert.Equal(t, 0, f.rows["b"].unmarks)
}

func TestChart_MissingRowIsSkipped(t *testing.T) {
	f := newFixture(t)
	delete(f.rows, "a")
	assert.NotPanics(t, func() {
		f.chart.SetFocusedItemByID("a")
		f.chart.SetFocusedItemByID("b")
	})
	assert.Equal(t, 1, f.rows["b"].marks)
}

func TestChart_PointerLeaveClearsFocus(t *testing.T) {
	f := newFixture(t)
	f.chart.SetFocusedItemByID("b")
	f.bus.leaves[len(f.bus.leaves)-1]()
	_, ok := f.chart.Focused()
	assert.False(t, ok)
}

func TestChart_ResizeKeepsOneListenerSet(t *testing.T) {
	f := newFixture(t)
	f.chart.Resize(400, 400)
	f.chart.Resize(250, 300)
	f.chart.Resize(100, 100)

	assert.Equal(t, 4, f.bus.binds)
	assert.Equal(t, 1, f.bus.active())

	g := f.chart.Geometry()
	tips := len(f.tooltip.texts)
	f.bus.move(g.CenterX+g.OuterRadius-1, g.CenterY)
	assert.Len(t, f.tooltip.texts, tips+1)
}

func TestChart_ResizeKeepsFocus(t *testing.T) {
	f := newFixture(t)
	f.chart.SetFocusedItemByID("a")
	f.chart.Resize(500, 500)

	require.Len(t, f.surface.fills, 2)
	assert.Equal(t, DefaultDimAlpha, f.surface.fills[0].alpha)
	seg, ok := f.chart.Focused()
	require.True(t, ok)
	assert.Equal(t, "a", seg.ID)
}

func TestChart_RedrawIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.chart.SetFocusedItemByID("b")
	first := append([]fill(nil), f.surface.fills...)
	f.chart.Redraw()
	assert.Equal(t, first, f.surface.fills)
}

func TestChart_Options(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	f := newFixture(t,
		WithDimAlpha(0.1),
		WithInnerRatio(0.5),
		WithColors(func(string) color.Color { return red }),
	)
	assert.Equal(t, 50.0, f.chart.Geometry().InnerRadius)

	f.chart.SetFocusedItemByID("a")
	assert.Equal(t, 0.1, f.surface.fills[0].alpha)
	assert.Equal(t, red, f.surface.fills[1].color)
}

func TestChart_IgnoresBadOptions(t *testing.T) {
	f := newFixture(t, WithDimAlpha(2), WithInnerRatio(1), WithColors(nil), WithRows(nil))
	assert.InDelta(t, 200*DefaultInnerRatio/2, f.chart.Geometry().InnerRadius, 1e-9)
	f.chart.SetFocusedItemByID("a")
	assert.Equal(t, DefaultDimAlpha, f.surface.fills[0].alpha)
}

func TestChart_PointerBeforeResizeClearsFocus(t *testing.T) {
	c, err := New([]Item{{ID: "a", Value: 1}}, &recordingSurface{})
	require.NoError(t, err)
	c.SetFocusedItemByID("a")
	c.PointerMove(0, 0)
	_, ok := c.Focused()
	assert.False(t, ok)
}

type sizeFeed struct {
	fn      func(float64, float64)
	stopped bool
}

func (s *sizeFeed) ObserveSize(fn func(float64, float64)) func() {
	s.fn = fn
	return func() { s.stopped = true }
}

func TestChart_ObserveFollowsSizeSource(t *testing.T) {
	surface := &recordingSurface{}
	bus := &pointerBus{}
	c, err := New([]Item{{ID: "a", Value: 1}}, surface, WithPointerSource(bus))
	require.NoError(t, err)

	feed := &sizeFeed{}
	c.Observe(feed)
	require.NotNil(t, feed.fn)
	feed.fn(640, 480)
	assert.Equal(t, 480, c.Geometry().Size)

	c.Close()
	assert.True(t, feed.stopped)
	assert.Equal(t, 0, bus.active())
}

func TestChart_ObserveWithoutSourceUsesDefaultSize(t *testing.T) {
	c, err := New([]Item{{ID: "a", Value: 1}}, &recordingSurface{}, WithDefaultSize(120))
	require.NoError(t, err)
	c.Observe(nil)
	assert.Equal(t, 120, c.Geometry().Size)
}

func TestChart_PlaceholderIgnoresEvents(t *testing.T) {
	bus := &pointerBus{}
	tip := &fakeTooltip{}
	c, err := New([]Item{{ID: "a", Value: 1}}, nil, WithPointerSource(bus), WithTooltip(tip))
	require.NoError(t, err)
	assert.False(t, c.Interactive())

	c.Observe(nil)
	c.Resize(100, 100)
	c.SetFocusedItemByID("a")
	c.PointerMove(50, 50)
	c.Redraw()

	assert.Equal(t, 0, bus.binds)
	assert.Empty(t, tip.texts)
	assert.Equal(t, Geometry{}, c.Geometry())
	_, ok := c.Focused()
	assert.False(t, ok)
}
