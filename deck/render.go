package deck

import (
	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/toddbenanzer/office-gen/palette"
)

// Slide geometry, 16:9 widescreen.
const (
	emuPerInch = 914400

	slideWidthIn  = 10.0
	marginLeftIn  = 0.4
	headerTopIn   = 0.3
	headerFontPt  = 24
	headerBarIn   = 0.08
	headerColor   = "1F1F1F"
	defaultColor  = "000000"
	arrowMinWidth = 0.02 // inches, floor for connector thickness
)

func emu(inches float64) int64 { return int64(inches * emuPerInch) }

// argb normalizes an "RRGGBB" string into the AARRGGBB form GoPPT colors
// use, uppercased, fully opaque.
func argb(hex string) string {
	r, g, b := palette.HexToRGB(hex)
	return "FF" + palette.RGBToHex(r, g, b)
}

func solidFill(hex string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb(hex)))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func alignRight(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
}

func (s *Slide) render(slide *ppt.Slide) {
	if s.Title != "" {
		s.renderHeader(slide)
	}
	for _, it := range s.items {
		switch item := it.(type) {
		case tableItem:
			s.renderTable(slide, item)
		case imageItem:
			renderImage(slide, item)
		case textBoxItem:
			renderTextBox(slide, item)
		case shapeItem:
			renderRect(slide, item.x, item.y, item.w, item.h, item.fill)
		case arrowItem:
			renderArrow(slide, item)
		}
	}
}

func (s *Slide) renderHeader(slide *ppt.Slide) {
	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(0).SetOffsetY(0)
	bar.SetWidth(emu(slideWidthIn)).SetHeight(emu(headerBarIn))
	bar.SetFill(solidFill(s.cfg.Tables.HeaderFillColor))

	title := slide.CreateRichTextShape()
	title.SetOffsetX(emu(marginLeftIn)).SetOffsetY(emu(headerTopIn))
	title.SetWidth(emu(slideWidthIn - 2*marginLeftIn)).SetHeight(emu(0.6))
	tr := title.CreateTextRun(s.Title)
	tr.GetFont().SetSize(headerFontPt).SetBold(true).SetColor(ppt.NewColor(argb(headerColor)))
}

// renderTable lays the grid out as one filled rich-text shape per cell,
// so each cell carries its own solid background.
func (s *Slide) renderTable(slide *ppt.Slide, item tableItem) {
	t := item.t
	rowH := t.RowHeight

	y := item.y
	for r := 0; r < t.Rows(); r++ {
		x := item.x
		for c := 0; c < t.Cols(); c++ {
			cell := t.Cell(r, c)
			w := 1.0
			if c < len(t.ColWidths) {
				w = t.ColWidths[c]
			}

			shape := slide.CreateRichTextShape()
			shape.SetOffsetX(emu(x)).SetOffsetY(emu(y))
			shape.SetWidth(emu(w)).SetHeight(emu(rowH))
			if cell.Fill != "" {
				shape.SetFill(solidFill(cell.Fill))
			}

			tr := shape.CreateTextRun(cell.Text)
			font := tr.GetFont()
			if r == 0 && t.HasHeader {
				font.SetSize(int(s.cfg.Tables.HeaderFontSize))
			} else {
				font.SetSize(int(s.cfg.Tables.CellFontSize))
			}
			font.SetBold(cell.Bold)
			color := cell.FontColor
			if color == "" {
				color = defaultColor
			}
			font.SetColor(ppt.NewColor(argb(color)))

			switch cell.Align {
			case "center":
				alignCenter(shape.GetActiveParagraph())
			case "right":
				alignRight(shape.GetActiveParagraph())
			}

			x += w
		}
		y += rowH
	}
}

func renderImage(slide *ppt.Slide, item imageItem) {
	img := slide.CreateDrawingShape()
	img.SetImageData(item.data, item.mime)
	img.SetOffsetX(emu(item.x)).SetOffsetY(emu(item.y))
	img.SetWidth(emu(item.w)).SetHeight(emu(item.h))
}

func renderTextBox(slide *ppt.Slide, item textBoxItem) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(emu(item.x)).SetOffsetY(emu(item.y))
	shape.SetWidth(emu(item.w)).SetHeight(emu(item.h))
	if item.opts.FillColor != "" {
		shape.SetFill(solidFill(item.opts.FillColor))
	}

	tr := shape.CreateTextRun(item.text)
	tr.GetFont().
		SetSize(int(item.opts.FontSize)).
		SetBold(item.opts.Bold).
		SetColor(ppt.NewColor(argb(item.opts.FontColor)))

	switch item.opts.Align {
	case "center":
		alignCenter(shape.GetActiveParagraph())
	case "right":
		alignRight(shape.GetActiveParagraph())
	}
}

func renderRect(slide *ppt.Slide, x, y, w, h float64, fill string) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(emu(x)).SetOffsetY(emu(y))
	shape.SetWidth(emu(w)).SetHeight(emu(h))
	if fill != "" {
		shape.SetFill(solidFill(fill))
	}
}

// renderArrow draws a connector as an axis-aligned elbow: a horizontal
// segment to the target column, then a vertical segment to the target
// row. Diagonals are approximated, not drawn.
func renderArrow(slide *ppt.Slide, item arrowItem) {
	thickness := item.weightPt / 72
	if thickness < arrowMinWidth {
		thickness = arrowMinWidth
	}

	x1, y1, x2, y2 := item.x1, item.y1, item.x2, item.y2
	if x1 != x2 {
		left := x1
		if x2 < x1 {
			left = x2
		}
		renderRect(slide, left, y1-thickness/2, abs(x2-x1), thickness, item.color)
	}
	if y1 != y2 {
		top := y1
		if y2 < y1 {
			top = y2
		}
		renderRect(slide, x2-thickness/2, top, thickness, abs(y2-y1), item.color)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
