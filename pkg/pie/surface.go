package pie

import "image/color"

// Surface is the 2D drawing target a chart renders to. Angles follow the
// screen convention used throughout the package.
type Surface interface {
	Resize(width, height int)
	Clear()
	BeginPath()
	// Arc extends the current path with an arc; it connects to the previous
	// point with a straight line when the path is not empty.
	Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool)
	// Fill closes and fills the current path.
	Fill(c color.Color, alpha float64)
}

// PointerSource delivers pointer events in page coordinates.
type PointerSource interface {
	// BindPointer registers a listener set and returns the function that
	// removes exactly that set.
	BindPointer(move func(pageX, pageY float64), leave func()) (unbind func())
	// Origin is the page position of the surface's top-left corner.
	Origin() (x, y float64)
}

// SizeSource reports the size available to the chart whenever it changes.
type SizeSource interface {
	ObserveSize(fn func(width, height float64)) (stop func())
}

// Row is the external representation of one item, e.g. a form row.
type Row interface {
	MarkActive()
	UnmarkActive()
}

// Rows resolves rows by segment id.
type Rows interface {
	Row(id string) (Row, bool)
}

// Tooltip receives the hover text; an empty string clears it.
type Tooltip interface {
	SetTooltip(text string)
}

type noRows struct{}

func (noRows) Row(string) (Row, bool) { return nil, false }

type noTooltip struct{}

func (noTooltip) SetTooltip(string) {}

type noPointer struct{}

func (noPointer) BindPointer(func(float64, float64), func()) func() { return func() {} }
func (noPointer) Origin() (float64, float64)                         { return 0, 0 }
