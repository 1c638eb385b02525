package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"

	officegen "github.com/toddbenanzer/office-gen"
)

// Line renders a line chart as PNG, one line per series over the category
// axis. Per-series stroke width and dash style come from the line chart
// configuration (series_1 heavier and solid, later series lighter with
// alternating dashes, unless overridden).
func Line(data Data, cfg *officegen.Config, opts Options) ([]byte, error) {
	if len(data.Series) == 0 {
		return nil, fmt.Errorf("line chart requires at least one series")
	}

	xs := make([]float64, len(data.Categories))
	ticks := make([]gochart.Tick, len(data.Categories))
	for i, cat := range data.Categories {
		xs[i] = float64(i)
		ticks[i] = gochart.Tick{Value: float64(i), Label: cat}
	}

	var series []gochart.Series
	for si, s := range data.Series {
		n := len(s.Values)
		if n > len(xs) {
			n = len(xs)
		}
		if n == 0 {
			continue
		}
		key := fmt.Sprintf("series_%d", si+1)

		width := cfg.Line.LineWidth[key]
		if width == 0 {
			width = 1.5
		}
		var dash []float64
		if cfg.Line.LineStyle[key] == "dash" {
			dash = []float64{5.0, 5.0}
		}

		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs[:n],
			YValues: s.Values[:n],
			Style: gochart.Style{
				StrokeColor:     colorOrDefault(seriesColor(cfg, opts, s.Name, si)),
				StrokeWidth:     width,
				StrokeDashArray: dash,
			},
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("line chart has no values")
	}

	w, h := opts.size()
	graph := gochart.Chart{
		Title:  opts.Title,
		Width:  w,
		Height: h,
		XAxis:  gochart.XAxis{Ticks: ticks},
		Series: series,
	}
	if cfg.Charts.HasLegend && !opts.HideLegend {
		graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render line chart: %w", err)
	}
	return buf.Bytes(), nil
}
