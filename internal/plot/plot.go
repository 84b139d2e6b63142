// Package plot draws MeanB time series as terminal graphs and PNG charts.
package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"mad-rd/internal/stats"
)

// A flat series gets a padded Y range; go-chart rejects a zero-height one.
const (
	flatEpsilon = 1e-9
	flatPadding = 0.05
)

// Named pairs a series with a legend label.
type Named struct {
	Name   string
	Series stats.Series
}

var lineColors = []drawing.Color{
	{R: 0x00, G: 0xcc, B: 0xff, A: 255},
	{R: 0xff, G: 0x66, B: 0x33, A: 255},
	{R: 0x66, G: 0xdd, B: 0x66, A: 255},
	{R: 0xcc, G: 0x66, B: 0xff, A: 255},
}

// Terminal renders the series as an ASCII graph at most width columns wide.
func Terminal(s stats.Series, caption string, width, height int) string {
	if s.Len() == 0 {
		return ""
	}
	return asciigraph.Plot(s.MeanB,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// WriteChart renders a PNG line chart of MeanB against step for each series.
func WriteChart(w io.Writer, width, height int, series ...Named) error {
	var cs []chart.Series
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, n := range series {
		if n.Series.Len() < 2 {
			continue
		}
		for _, v := range n.Series.MeanB {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		cs = append(cs, chart.ContinuousSeries{
			Name:    n.Name,
			XValues: n.Series.Steps,
			YValues: n.Series.MeanB,
			Style: chart.Style{
				StrokeColor: lineColors[i%len(lineColors)],
				StrokeWidth: 2,
			},
		})
	}
	if len(cs) == 0 {
		return fmt.Errorf("plot: need at least two samples to chart")
	}
	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name: "step",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name: "mean B",
		},
		Series: cs,
	}
	if hi-lo < flatEpsilon {
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo - flatPadding, Max: hi + flatPadding}
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("plot: render chart: %w", err)
	}
	return nil
}
