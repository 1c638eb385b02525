// Package chart composes clustered bar, stacked bar, donut and line
// charts from tabular series data and renders them to PNG images for
// placement on slides.
package chart

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"

	officegen "github.com/toddbenanzer/office-gen"
)

// Series is one named value sequence, aligned with the category labels.
type Series struct {
	Name   string
	Values []float64
}

// Data is the input to every chart type: one label per category and one
// value per category per series.
type Data struct {
	Categories []string
	Series     []Series
}

// Options are per-chart overrides on top of the configuration defaults.
type Options struct {
	Title  string
	Width  int // pixels, default 1024
	Height int // pixels, default 512
	// SeriesColors overrides fill/stroke colors, keyed by series name or
	// by positional "series_N" key.
	SeriesColors map[string]string
	// SegmentColors overrides donut segment colors by category label.
	SegmentColors map[string]string
	HideLegend    bool
}

const (
	defaultWidth  = 1024
	defaultHeight = 512
)

func (o Options) size() (w, h int) {
	w, h = o.Width, o.Height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	return w, h
}

// seriesColor resolves the color for series i (zero-based): explicit
// option by name, option by position, config by name, config by position.
// Empty means the renderer's default.
func seriesColor(cfg *officegen.Config, opts Options, name string, i int) string {
	key := fmt.Sprintf("series_%d", i+1)
	if c, ok := opts.SeriesColors[name]; ok {
		return c
	}
	if c, ok := opts.SeriesColors[key]; ok {
		return c
	}
	if c, ok := cfg.Charts.Colors[name]; ok {
		return c
	}
	return cfg.Charts.Colors[key]
}

func colorOrDefault(hex string) drawing.Color {
	if hex == "" {
		return drawing.Color{}
	}
	return drawing.ColorFromHex(hex)
}
