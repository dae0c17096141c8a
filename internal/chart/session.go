package chart

import (
	"log"
	"sync"
	"time"

	"piechart/internal/render"
	"piechart/pkg/pie"
	"piechart/pkg/realtime"
)

// SSE event names published by a session.
const (
	EventChart   = "chart"   // Data: SVG document
	EventTooltip = "tooltip" // Data: tooltip text, empty when cleared
	EventRowOn   = "row-on"  // Data: row id
	EventRowOff  = "row-off" // Data: row id
)

// SurfaceFactory builds the drawing surface of a new session. An error means
// the session has nothing to draw on and falls back to a placeholder.
type SurfaceFactory func(width, height int) (*render.SVG, error)

// Options configure new sessions.
type Options struct {
	InitialSize int
	Surface     SurfaceFactory
	Colors      pie.ColorFunc
	Chart       []pie.Option
}

func (o Options) withDefaults() Options {
	if o.InitialSize <= 0 {
		o.InitialSize = pie.DefaultSize
	}
	if o.Surface == nil {
		o.Surface = func(w, h int) (*render.SVG, error) { return render.NewSVG(w, h), nil }
	}
	if o.Colors == nil {
		o.Colors = pie.HexColor
	}
	return o
}

// Session is one live chart: the pie engine plus the in-memory collaborators
// that HTTP requests drive. All methods are safe for concurrent use; events
// are applied one at a time.
type Session struct {
	mu        sync.Mutex
	ID        string
	CreatedAt time.Time

	items   []pie.Item
	colors  pie.ColorFunc
	chart   *pie.Chart
	svg     *render.SVG
	pointer *PointerBus
	size    *SizeFeed
	rows    map[string]*legendRow

	tooltip string
	dirty   bool
	pending []realtime.Event
	publish func(events ...realtime.Event) int
}

// NewSession validates items and sizes the chart to opts.InitialSize.
func NewSession(id string, items []pie.Item, opts Options) (*Session, error) {
	opts = opts.withDefaults()
	s := &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		items:     append([]pie.Item(nil), items...),
		colors:    opts.Colors,
		pointer:   NewPointerBus(),
		size:      &SizeFeed{},
		rows:      make(map[string]*legendRow, len(items)),
		publish:   func(...realtime.Event) int { return 0 },
	}
	for _, item := range items {
		s.rows[item.ID] = &legendRow{id: item.ID, session: s}
	}

	var surface pie.Surface
	svgSurface, err := opts.Surface(opts.InitialSize, opts.InitialSize)
	switch {
	case err != nil:
		log.Printf("chart surface unavailable id=%s err=%v", id, err)
	case svgSurface == nil:
		log.Printf("chart surface unavailable id=%s", id)
	default:
		s.svg = svgSurface
		surface = &trackedSurface{SVG: svgSurface, session: s}
	}

	chartOpts := append([]pie.Option{
		pie.WithColors(opts.Colors),
		pie.WithPointerSource(s.pointer),
		pie.WithRows(legend{s}),
		pie.WithTooltip(tooltipSink{s}),
	}, opts.Chart...)
	c, err := pie.New(items, surface, chartOpts...)
	if err != nil {
		return nil, err
	}
	s.chart = c
	c.Observe(s.size)
	size := float64(opts.InitialSize)
	s.size.Report(size, size)
	s.dirty, s.pending = false, nil
	return s, nil
}

// Interactive reports whether the session has a drawing surface.
func (s *Session) Interactive() bool {
	return s.chart.Interactive()
}

// Items returns the chart input.
func (s *Session) Items() []pie.Item {
	return append([]pie.Item(nil), s.items...)
}

// Resize reports the box available to the chart and its page position.
func (s *Session) Resize(width, height, left, top float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointer.SetOrigin(left, top)
	s.size.Report(width, height)
	s.flushLocked()
}

// PointerMove delivers a pointer position in page coordinates.
func (s *Session) PointerMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointer.Move(x, y)
	s.flushLocked()
}

// PointerLeave delivers the pointer leaving the chart.
func (s *Session) PointerLeave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointer.Leave()
	s.flushLocked()
}

// SetFocus focuses a segment by id on behalf of the legend; empty clears.
func (s *Session) SetFocus(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart.SetFocusedItemByID(id)
	s.flushLocked()
}

// Close releases the chart's subscriptions.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart.Close()
}

// SVG returns the current drawing, or "" for a placeholder session.
func (s *Session) SVG() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.svgLocked()
}

func (s *Session) svgLocked() string {
	if s.svg == nil {
		return ""
	}
	return s.svg.String()
}

// RowState is one legend row as rendered.
type RowState struct {
	ID      string
	Value   float64
	Percent float64
	Color   string
	Active  bool
}

// Snapshot is a consistent view of a session for rendering.
type Snapshot struct {
	ID          string
	Interactive bool
	Size        int
	FocusedID   string
	Tooltip     string
	Rows        []RowState
	SVG         string
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:          s.ID,
		Interactive: s.chart.Interactive(),
		Size:        s.chart.Geometry().Size,
		Tooltip:     s.tooltip,
		SVG:         s.svgLocked(),
	}
	if seg, ok := s.chart.Focused(); ok {
		snap.FocusedID = seg.ID
	}
	for _, seg := range s.chart.Segments() {
		snap.Rows = append(snap.Rows, RowState{
			ID:      seg.ID,
			Value:   seg.Value,
			Percent: seg.Percent,
			Color:   pie.HexString(s.colors(seg.ID)),
			Active:  s.rows[seg.ID].active,
		})
	}
	return snap
}

func (s *Session) flushLocked() {
	if !s.dirty && len(s.pending) == 0 {
		return
	}
	events := s.pending
	if s.dirty {
		events = append([]realtime.Event{{Name: EventChart, Data: s.svgLocked()}}, events...)
	}
	s.dirty, s.pending = false, nil
	s.publish(events...)
}

// trackedSurface marks the session dirty whenever the chart repaints.
type trackedSurface struct {
	*render.SVG
	session *Session
}

func (t *trackedSurface) Clear() {
	t.SVG.Clear()
	t.session.dirty = true
}

type tooltipSink struct{ s *Session }

func (t tooltipSink) SetTooltip(text string) {
	t.s.tooltip = text
	if t.s.svg != nil {
		t.s.svg.SetTooltip(text)
	}
	t.s.pending = append(t.s.pending, realtime.Event{Name: EventTooltip, Data: text})
}

type legend struct{ s *Session }

func (l legend) Row(id string) (pie.Row, bool) {
	row, ok := l.s.rows[id]
	if !ok {
		return nil, false
	}
	return row, true
}

type legendRow struct {
	id      string
	active  bool
	session *Session
}

func (r *legendRow) MarkActive() {
	r.active = true
	r.session.pending = append(r.session.pending, realtime.Event{Name: EventRowOn, Data: r.id})
}

func (r *legendRow) UnmarkActive() {
	r.active = false
	r.session.pending = append(r.session.pending, realtime.Event{Name: EventRowOff, Data: r.id})
}
