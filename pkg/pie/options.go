package pie

// Presentation defaults.
const (
	DefaultDimAlpha   = 0.4
	DefaultInnerRatio = 2.0 / 3.0
	DefaultSize       = 300
)

// PlaceholderText describes a chart that has no drawing surface.
const PlaceholderText = "Chart is not supported on this surface"

type options struct {
	dimAlpha    float64
	innerRatio  float64
	defaultSize int
	colors      ColorFunc
	pointer     PointerSource
	rows        Rows
	tooltip     Tooltip
}

func defaultOptions() options {
	return options{
		dimAlpha:    DefaultDimAlpha,
		innerRatio:  DefaultInnerRatio,
		defaultSize: DefaultSize,
		colors:      HexColor,
		pointer:     noPointer{},
		rows:        noRows{},
		tooltip:     noTooltip{},
	}
}

// Option configures a Chart.
type Option func(*options)

// WithDimAlpha sets the opacity of the focused segment. Values outside [0, 1]
// are ignored.
func WithDimAlpha(alpha float64) Option {
	return func(o *options) {
		if alpha >= 0 && alpha <= 1 {
			o.dimAlpha = alpha
		}
	}
}

// WithInnerRatio sets the inner radius as a fraction of the outer radius.
// Values outside [0, 1) are ignored.
func WithInnerRatio(ratio float64) Option {
	return func(o *options) {
		if ratio >= 0 && ratio < 1 {
			o.innerRatio = ratio
		}
	}
}

// WithDefaultSize sets the size used by Observe when no size source exists.
func WithDefaultSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.defaultSize = size
		}
	}
}

// WithColors replaces the id to colour policy.
func WithColors(fn ColorFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.colors = fn
		}
	}
}

// WithPointerSource sets where pointer listeners are bound.
func WithPointerSource(src PointerSource) Option {
	return func(o *options) {
		if src != nil {
			o.pointer = src
		}
	}
}

// WithRows sets the collaborator whose rows mirror the focus.
func WithRows(rows Rows) Option {
	return func(o *options) {
		if rows != nil {
			o.rows = rows
		}
	}
}

// WithTooltip sets the tooltip output.
func WithTooltip(t Tooltip) Option {
	return func(o *options) {
		if t != nil {
			o.tooltip = t
		}
	}
}
