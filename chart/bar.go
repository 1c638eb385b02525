package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"

	officegen "github.com/toddbenanzer/office-gen"
)

// ClusteredBar renders a bar chart as PNG. Multiple series are flattened
// to adjacent bars per category; the image format has no native grouped
// bars.
func ClusteredBar(data Data, cfg *officegen.Config, opts Options) ([]byte, error) {
	if len(data.Series) == 0 {
		return nil, fmt.Errorf("clustered bar chart requires at least one series")
	}

	var bars []gochart.Value
	for ci, cat := range data.Categories {
		for si, s := range data.Series {
			if ci >= len(s.Values) {
				continue
			}
			label := cat
			if len(data.Series) > 1 {
				label = fmt.Sprintf("%s %s", cat, s.Name)
			}
			fill := colorOrDefault(seriesColor(cfg, opts, s.Name, si))
			bars = append(bars, gochart.Value{
				Value: s.Values[ci],
				Label: label,
				Style: gochart.Style{FillColor: fill, StrokeColor: fill},
			})
		}
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("clustered bar chart has no values")
	}

	w, h := opts.size()
	bc := gochart.BarChart{
		Title:  opts.Title,
		Width:  w,
		Height: h,
		Bars:   bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render clustered bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// StackedBar renders a stacked bar chart as PNG, one stack per category
// with one segment per series.
func StackedBar(data Data, cfg *officegen.Config, opts Options) ([]byte, error) {
	if len(data.Series) == 0 {
		return nil, fmt.Errorf("stacked bar chart requires at least one series")
	}

	var stacks []gochart.StackedBar
	for ci, cat := range data.Categories {
		var segs []gochart.Value
		for si, s := range data.Series {
			if ci >= len(s.Values) {
				continue
			}
			fill := colorOrDefault(seriesColor(cfg, opts, s.Name, si))
			segs = append(segs, gochart.Value{
				Value: s.Values[ci],
				Label: s.Name,
				Style: gochart.Style{FillColor: fill, StrokeColor: fill},
			})
		}
		if len(segs) == 0 {
			continue
		}
		stacks = append(stacks, gochart.StackedBar{Name: cat, Values: segs})
	}
	if len(stacks) == 0 {
		return nil, fmt.Errorf("stacked bar chart has no values")
	}

	w, h := opts.size()
	sbc := gochart.StackedBarChart{
		Title:  opts.Title,
		Width:  w,
		Height: h,
		Bars:   stacks,
	}

	var buf bytes.Buffer
	if err := sbc.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render stacked bar chart: %w", err)
	}
	return buf.Bytes(), nil
}
