package viewmodel

// HomePage holds data for the create-chart form.
type HomePage struct {
	Title string
	Items string
	Error string
}

// LegendRow is one line of the form listing the chart's items.
type LegendRow struct {
	ID      string
	Value   string
	Percent string
	Color   string
	Active  bool
}

// LegendFragment holds data for the legend form.
type LegendFragment struct {
	ChartID string
	Rows    []LegendRow
}

// ChartFragment holds data for the drawing block.
type ChartFragment struct {
	ChartID     string
	Interactive bool
	SVG         string
	Tooltip     string
	Placeholder string
}

// ChartPage holds data for the chart page template.
type ChartPage struct {
	Title    string
	ChartID  string
	ShareURL string
	Chart    ChartFragment
	Legend   LegendFragment
}
