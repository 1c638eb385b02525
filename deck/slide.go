package deck

import (
	"fmt"

	officegen "github.com/toddbenanzer/office-gen"
	"github.com/toddbenanzer/office-gen/chart"
	"github.com/toddbenanzer/office-gen/table"
)

// Slide stages content for one slide. Positions and sizes are in inches
// from the top-left corner.
type Slide struct {
	Title string

	cfg   *officegen.Config
	items []renderItem
}

// Config returns the slide's configuration copy; mutate it before adding
// content to override presentation-level settings for this slide only.
func (s *Slide) Config() *officegen.Config { return s.cfg }

type renderItem interface{ item() }

type tableItem struct {
	t    *table.Table
	x, y float64
}

type imageItem struct {
	data       []byte
	mime       string
	x, y, w, h float64
}

type textBoxItem struct {
	text       string
	x, y, w, h float64
	opts       TextBoxOptions
}

type shapeItem struct {
	x, y, w, h float64
	fill       string
}

type arrowItem struct {
	x1, y1, x2, y2 float64
	color          string
	weightPt       float64
}

func (tableItem) item()   {}
func (imageItem) item()   {}
func (textBoxItem) item() {}
func (shapeItem) item()   {}
func (arrowItem) item()   {}

// TextBoxOptions overrides text box defaults from the configuration.
type TextBoxOptions struct {
	Width     float64 // inches
	Height    float64 // inches
	FontSize  float64 // points
	Bold      bool
	FontColor string
	FillColor string // solid background; empty keeps the configured fill policy
	Align     string // left|center|right
}

// AddTable renders data into a styled table and stages it at (x, y).
// The returned table may be passed to ApplyConditionalFormatting any time
// before the deck is written.
func (s *Slide) AddTable(headers []string, data [][]interface{}, x, y float64, opts table.Options) *table.Table {
	t := table.New(headers, data, s.cfg, opts)
	s.items = append(s.items, tableItem{t: t, x: x, y: y})
	return t
}

// ApplyConditionalFormatting recolors a staged table's cells in place.
// startRow excludes header rows from evaluation.
func (s *Slide) ApplyConditionalFormatting(t *table.Table, rules []table.Rule, startRow int) {
	table.Apply(t, rules, startRow)
}

// AddChart renders a chart of the given kind ("bar", "clustered_bar",
// "stacked_bar", "donut", "line") and stages the image at (x, y) with the
// given size in inches.
func (s *Slide) AddChart(kind string, data chart.Data, x, y, w, h float64, opts chart.Options) error {
	// Pixel dimensions at 96 DPI unless the options pin them.
	if opts.Width == 0 {
		opts.Width = int(w * 96)
	}
	if opts.Height == 0 {
		opts.Height = int(h * 96)
	}

	var png []byte
	var err error
	switch kind {
	case "bar", "clustered_bar":
		png, err = chart.ClusteredBar(data, s.cfg, opts)
	case "stacked_bar":
		png, err = chart.StackedBar(data, s.cfg, opts)
	case "donut":
		png, err = chart.Donut(data, s.cfg, opts)
	case "line":
		png, err = chart.Line(data, s.cfg, opts)
	default:
		return fmt.Errorf("unsupported chart type: %s", kind)
	}
	if err != nil {
		return err
	}
	s.items = append(s.items, imageItem{data: png, mime: "image/png", x: x, y: y, w: w, h: h})
	return nil
}

// AddTextBox stages a text box at (x, y).
func (s *Slide) AddTextBox(text string, x, y float64, opts TextBoxOptions) {
	if opts.Width == 0 {
		opts.Width = s.cfg.TextBox.Width
	}
	if opts.Height == 0 {
		opts.Height = s.cfg.TextBox.Height
	}
	if opts.FontSize == 0 {
		opts.FontSize = s.cfg.TextBox.FontSize
	}
	if opts.FontColor == "" {
		opts.FontColor = s.cfg.TextBox.FontColor
	}
	if opts.Align == "" {
		opts.Align = s.cfg.TextBox.HorizontalAlign
	}
	if opts.FillColor == "" && !s.cfg.TextBox.NoFill {
		opts.FillColor = s.cfg.TextBox.FillColor
	}
	s.items = append(s.items, textBoxItem{text: text, x: x, y: y, w: opts.Width, h: opts.Height, opts: opts})
}

// AddShape stages a solid-filled rectangle.
func (s *Slide) AddShape(x, y, w, h float64, fill string) {
	s.items = append(s.items, shapeItem{x: x, y: y, w: w, h: h, fill: fill})
}

// AddArrow stages a connector between two points, drawn as an
// axis-aligned elbow of thin filled rectangles. weightPt is the line
// weight in points; zero uses 2pt. color defaults to black.
func (s *Slide) AddArrow(x1, y1, x2, y2 float64, color string, weightPt float64) {
	if weightPt == 0 {
		weightPt = 2
	}
	if color == "" {
		color = "000000"
	}
	s.items = append(s.items, arrowItem{x1: x1, y1: y1, x2: x2, y2: y2, color: color, weightPt: weightPt})
}

// AddImage stages raw image bytes ("image/png", "image/jpeg", or
// "image/gif") at (x, y) with the given size in inches.
func (s *Slide) AddImage(data []byte, mime string, x, y, w, h float64) {
	s.items = append(s.items, imageItem{data: data, mime: mime, x: x, y: y, w: w, h: h})
}
