package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"

	officegen "github.com/toddbenanzer/office-gen"
)

// Donut renders a donut chart as PNG from the first series. Segment
// colors resolve by category label first, then positionally from the
// configured series colors.
func Donut(data Data, cfg *officegen.Config, opts Options) ([]byte, error) {
	if len(data.Series) == 0 {
		return nil, fmt.Errorf("donut chart requires a value series")
	}
	series := data.Series[0]

	var values []gochart.Value
	for i, cat := range data.Categories {
		if i >= len(series.Values) {
			break
		}
		hex := ""
		if c, ok := opts.SegmentColors[cat]; ok {
			hex = c
		} else {
			hex = cfg.Charts.Colors[fmt.Sprintf("series_%d", i+1)]
		}
		fill := colorOrDefault(hex)
		values = append(values, gochart.Value{
			Value: series.Values[i],
			Label: cat,
			Style: gochart.Style{FillColor: fill, StrokeColor: fill},
		})
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("donut chart has no values")
	}

	w, h := opts.size()
	dc := gochart.DonutChart{
		Title:  opts.Title,
		Width:  w,
		Height: h,
		Values: values,
	}

	var buf bytes.Buffer
	if err := dc.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render donut chart: %w", err)
	}
	return buf.Bytes(), nil
}
