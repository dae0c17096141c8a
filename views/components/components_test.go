package components

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"piechart/internal/viewmodel"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestChartFragment(t *testing.T) {
	html := renderString(t, ChartFragment(viewmodel.ChartFragment{
		ChartID:     "abc",
		Interactive: true,
		SVG:         `<svg width="10"></svg>`,
		Tooltip:     "25%",
	}))
	for _, want := range []string{`data-chart-id="abc"`, `<svg width="10"></svg>`, `<p id="tooltip" class="tag is-dark">25%</p>`} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %s", want, html)
		}
	}
}

func TestChartFragment_Placeholder(t *testing.T) {
	html := renderString(t, ChartFragment(viewmodel.ChartFragment{Placeholder: "No canvas"}))
	if !strings.Contains(html, "chart-placeholder") || !strings.Contains(html, `aria-label="No canvas"`) {
		t.Errorf("placeholder not rendered: %s", html)
	}
	if strings.Contains(html, "tooltip") {
		t.Error("placeholder should not render a tooltip")
	}
}

func TestTooltip_HiddenWhenEmpty(t *testing.T) {
	if html := renderString(t, Tooltip("")); !strings.Contains(html, " hidden>") {
		t.Errorf("empty tooltip should be hidden: %s", html)
	}
}

func TestLegendFragment(t *testing.T) {
	html := renderString(t, LegendFragment(viewmodel.LegendFragment{
		ChartID: "abc",
		Rows: []viewmodel.LegendRow{
			{ID: "ff0000", Value: "1", Percent: "25%", Color: "#ff0000", Active: true},
			{ID: "<b>", Value: "3", Percent: "75%", Color: "#f6f6f6"},
		},
	}))
	for _, want := range []string{
		`<div id="row-ff0000" class="color-form-item active" data-id="ff0000">`,
		`<span class="percent">75%</span>`,
		`data-id="&lt;b&gt;"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %s", want, html)
		}
	}
}
