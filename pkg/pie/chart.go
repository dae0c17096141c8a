package pie

import (
	"math"
	"strconv"
)

// Geometry is the placement of the ring on a square surface of Size pixels.
type Geometry struct {
	Size        int
	CenterX     float64
	CenterY     float64
	OuterRadius float64
	InnerRadius float64
}

// Contains reports whether a point at distance r from the centre lies on the ring.
func (g Geometry) Contains(r float64) bool {
	return r >= g.InnerRadius && r <= g.OuterRadius
}

// Chart owns the focus state of one pie chart and keeps the surface, the
// tooltip and the external rows in line with it.
//
// A Chart is not safe for concurrent use; callers deliver events one at a time.
type Chart struct {
	index   *SegmentIndex
	surface Surface
	opts    options

	geom    Geometry
	focused *Segment
	tooltip string

	unbind      func()
	stopObserve func()
}

// New computes the segments of items and prepares a chart drawing to surface.
// A nil surface yields a placeholder chart that ignores every event.
func New(items []Item, surface Surface, opts ...Option) (*Chart, error) {
	segments, err := ComputeSegments(items)
	if err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{
		index:   NewSegmentIndex(segments),
		surface: surface,
		opts:    o,
	}, nil
}

// Interactive reports whether the chart has a surface to draw on.
func (c *Chart) Interactive() bool { return c.surface != nil }

// Segments returns the chart's segments in order.
func (c *Chart) Segments() []Segment { return c.index.Segments() }

// Geometry returns the current ring placement; zero until the first resize.
func (c *Chart) Geometry() Geometry { return c.geom }

// Tooltip returns the current tooltip text.
func (c *Chart) Tooltip() string { return c.tooltip }

// Focused returns the focused segment, if any.
func (c *Chart) Focused() (Segment, bool) {
	if c.focused == nil {
		return Segment{}, false
	}
	return *c.focused, true
}

// Observe follows size changes from src. Without a source the chart is sized
// once to the default size. Calling Observe again replaces the subscription.
func (c *Chart) Observe(src SizeSource) {
	if !c.Interactive() {
		return
	}
	c.stopObserving()
	if src == nil {
		size := float64(c.opts.defaultSize)
		c.Resize(size, size)
		return
	}
	c.stopObserve = src.ObserveSize(c.Resize)
}

// Close stops size observation and removes the pointer listeners.
func (c *Chart) Close() {
	c.stopObserving()
	c.unbindPointer()
}

// Resize fits the chart into a width x height box, keeping it square.
func (c *Chart) Resize(width, height float64) {
	if !c.Interactive() {
		return
	}
	size := int(math.Floor(math.Min(width, height)))
	if size <= 0 {
		return
	}
	half := float64(size) / 2
	c.geom = Geometry{
		Size:        size,
		CenterX:     half,
		CenterY:     half,
		OuterRadius: half,
		InnerRadius: half * c.opts.innerRatio,
	}
	c.surface.Resize(size, size)
	c.redraw(c.focused)
	c.bindPointer()
}

// PointerMove focuses the segment under the page position (pageX, pageY).
func (c *Chart) PointerMove(pageX, pageY float64) {
	if !c.Interactive() {
		return
	}
	if c.geom.Size == 0 {
		c.setFocus(nil)
		return
	}
	left, top := c.opts.pointer.Origin()
	dx := pageX - (left + c.geom.CenterX)
	dy := pageY - (top + c.geom.CenterY)

	if !c.geom.Contains(RadiusOf(dx, dy)) {
		c.setFocus(nil)
		return
	}
	seg, ok := c.index.FindByAngle(AngleOf(dx, dy))
	if !ok {
		c.setFocus(nil)
		return
	}
	c.setFocus(&seg)
}

// PointerLeave clears the focus.
func (c *Chart) PointerLeave() {
	if !c.Interactive() {
		return
	}
	c.setFocus(nil)
}

// SetFocusedItemByID focuses the segment with the given id. Unknown ids,
// including the empty id, clear the focus.
func (c *Chart) SetFocusedItemByID(id string) {
	if !c.Interactive() {
		return
	}
	seg, ok := c.index.FindByID(id)
	if !ok {
		c.setFocus(nil)
		return
	}
	c.setFocus(&seg)
}

// ClearFocus is SetFocusedItemByID with no id.
func (c *Chart) ClearFocus() {
	if !c.Interactive() {
		return
	}
	c.setFocus(nil)
}

// Redraw repaints the chart with the current focus.
func (c *Chart) Redraw() {
	if !c.Interactive() || c.geom.Size == 0 {
		return
	}
	c.redraw(c.focused)
}

func (c *Chart) setFocus(next *Segment) {
	if sameFocus(c.focused, next) {
		return
	}
	c.redraw(next)
	c.setTooltip(next)
	c.markRows(next)
	c.focused = next
}

func sameFocus(a, b *Segment) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

func (c *Chart) setTooltip(next *Segment) {
	if next == nil {
		c.tooltip = ""
	} else {
		c.tooltip = FormatPercent(next.Percent)
	}
	c.opts.tooltip.SetTooltip(c.tooltip)
}

func (c *Chart) markRows(next *Segment) {
	if c.focused != nil {
		if row, ok := c.opts.rows.Row(c.focused.ID); ok {
			row.UnmarkActive()
		}
	}
	if next != nil {
		if row, ok := c.opts.rows.Row(next.ID); ok {
			row.MarkActive()
		}
	}
}

func (c *Chart) redraw(focused *Segment) {
	if c.geom.Size == 0 {
		return
	}
	c.surface.Clear()
	g := c.geom
	for _, s := range c.index.segments {
		alpha := 1.0
		if focused != nil && focused.ID == s.ID {
			alpha = c.opts.dimAlpha
		}
		c.surface.BeginPath()
		c.surface.Arc(g.CenterX, g.CenterY, g.OuterRadius, s.StartAngle, s.EndAngle, false)
		c.surface.Arc(g.CenterX, g.CenterY, g.InnerRadius, s.EndAngle, s.StartAngle, true)
		c.surface.Fill(c.opts.colors(s.ID), alpha)
	}
}

func (c *Chart) bindPointer() {
	c.unbindPointer()
	c.unbind = c.opts.pointer.BindPointer(c.PointerMove, c.PointerLeave)
}

func (c *Chart) unbindPointer() {
	if c.unbind != nil {
		c.unbind()
		c.unbind = nil
	}
}

func (c *Chart) stopObserving() {
	if c.stopObserve != nil {
		c.stopObserve()
		c.stopObserve = nil
	}
}

// FormatPercent renders a share in [0, 1] as a percentage rounded to two
// decimals, without trailing zeros: 0.2346 -> "23.46%", 0.25 -> "25%".
func FormatPercent(share float64) string {
	v := math.Round(share*10000) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
