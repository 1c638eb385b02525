// Package table builds styled tables from tabular data and applies
// conditional-formatting rules to the rendered grid. After rendering, the
// grid owns display strings only; rule evaluation re-reads that text.
package table

import (
	"strings"

	officegen "github.com/toddbenanzer/office-gen"
	"github.com/toddbenanzer/office-gen/format"
)

// Cell is one rendered grid position.
type Cell struct {
	Text      string
	Fill      string // "RRGGBB" solid background, empty for none
	FontColor string // "RRGGBB", empty for default
	Bold      bool
	Align     string // left|center|right, empty for default
	// BarFrac is the width fraction computed by data-bar rules. It is not
	// expressed visually; cells get a flat fill only.
	BarFrac float64
}

// RowStyle overrides the look of one row.
type RowStyle struct {
	Row       int
	FillColor string
	FontColor string
	Bold      bool
}

// ColumnStyle overrides the look of one column's data cells.
type ColumnStyle struct {
	Col   int
	Align string
}

// Options configures table construction. Zero values defer to the
// configuration defaults.
type Options struct {
	Name          string                 // sheet/shape name
	NoHeader      bool                   // suppress the header row
	ColWidths     []float64              // inches, per column
	TableWidth    float64                // inches, split evenly when ColWidths is empty
	RowHeight     float64                // inches
	ColumnFormats map[string]format.Kind // by header label; unlisted columns are inferred
	RowStyles     []RowStyle
	ColumnStyles  []ColumnStyle
	TotalRows     []int
	SubtotalRows  []int
}

// Table is the rendered grid. Row 0 is the header when HasHeader is set.
type Table struct {
	Name      string
	Cells     [][]Cell
	HasHeader bool
	ColWidths []float64 // inches
	RowHeight float64   // inches
}

// Rows returns the grid row count, header included.
func (t *Table) Rows() int { return len(t.Cells) }

// Cols returns the grid column count.
func (t *Table) Cols() int {
	if len(t.Cells) == 0 {
		return 0
	}
	return len(t.Cells[0])
}

// Cell returns the addressed cell, or nil when out of range.
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= len(t.Cells) || col < 0 || col >= len(t.Cells[row]) {
		return nil
	}
	return &t.Cells[row][col]
}

// New renders tabular data into a styled grid. headers names the columns;
// each data row holds one value per column.
func New(headers []string, data [][]interface{}, cfg *officegen.Config, opts Options) *Table {
	cols := len(headers)
	hasHeader := cfg.Tables.HasHeader && !opts.NoHeader

	colWidths := opts.ColWidths
	if len(colWidths) != cols {
		total := opts.TableWidth
		if total == 0 {
			total = 8
		}
		colWidths = make([]float64, cols)
		for i := range colWidths {
			if cols > 0 {
				colWidths[i] = total / float64(cols)
			}
		}
	}

	rowHeight := opts.RowHeight
	if rowHeight == 0 {
		rowHeight = cfg.Tables.RowHeight
	}

	t := &Table{
		Name:      opts.Name,
		HasHeader: hasHeader,
		ColWidths: colWidths,
		RowHeight: rowHeight,
	}

	if hasHeader {
		hdr := make([]Cell, cols)
		for i, h := range headers {
			hdr[i] = Cell{
				Text:      h,
				Fill:      cfg.Tables.HeaderFillColor,
				FontColor: cfg.Tables.HeaderFontColor,
				Bold:      cfg.Tables.HeaderFontBold,
				Align:     "center",
			}
		}
		t.Cells = append(t.Cells, hdr)
	}

	kinds := columnKinds(headers, opts.ColumnFormats)
	for _, row := range data {
		cells := make([]Cell, cols)
		for c := 0; c < cols; c++ {
			var v interface{}
			if c < len(row) {
				v = row[c]
			}
			cells[c] = Cell{Text: format.Format(v, kinds[c], cfg)}
		}
		t.Cells = append(t.Cells, cells)
	}

	t.applyAlternatingFill(cfg)
	t.applyRowStyles(opts.RowStyles)
	t.applyColumnStyles(opts.ColumnStyles)
	t.applyTotalStyles(cfg, opts.TotalRows, opts.SubtotalRows)

	return t
}

// columnKinds resolves the format kind per column: the explicit map wins,
// otherwise the kind is inferred from keywords in the header label.
func columnKinds(headers []string, explicit map[string]format.Kind) []format.Kind {
	kinds := make([]format.Kind, len(headers))
	for i, h := range headers {
		if k, ok := explicit[h]; ok {
			kinds[i] = k
			continue
		}
		kinds[i] = inferKind(h)
	}
	return kinds
}

func inferKind(header string) format.Kind {
	h := strings.ToLower(header)
	switch {
	case containsAny(h, "price", "cost", "revenue", "dollar", "$", "sales"):
		return format.Dollars
	case containsAny(h, "percent", "%", "rate", "ratio"):
		return format.Percentage
	case containsAny(h, "count", "number", "total", "qty", "quantity"):
		return format.Counts
	default:
		return format.Text
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func (t *Table) applyAlternatingFill(cfg *officegen.Config) {
	if !cfg.Tables.AlternatingRowFill {
		return
	}
	start := 0
	if t.HasHeader {
		start = 1
	}
	for r := start; r < len(t.Cells); r++ {
		if (r-start)%2 != 1 {
			continue
		}
		for c := range t.Cells[r] {
			t.Cells[r][c].Fill = cfg.Tables.AlternatingRowFillColor
		}
	}
}

func (t *Table) applyRowStyles(styles []RowStyle) {
	for _, rs := range styles {
		if rs.Row < 0 || rs.Row >= len(t.Cells) {
			continue
		}
		for c := range t.Cells[rs.Row] {
			cell := &t.Cells[rs.Row][c]
			if rs.FillColor != "" {
				cell.Fill = rs.FillColor
			}
			if rs.FontColor != "" {
				cell.FontColor = rs.FontColor
			}
			if rs.Bold {
				cell.Bold = true
			}
		}
	}
}

func (t *Table) applyColumnStyles(styles []ColumnStyle) {
	start := 0
	if t.HasHeader {
		start = 1
	}
	for _, cs := range styles {
		if cs.Col < 0 || cs.Col >= t.Cols() || cs.Align == "" {
			continue
		}
		for r := start; r < len(t.Cells); r++ {
			t.Cells[r][cs.Col].Align = cs.Align
		}
	}
}

func (t *Table) applyTotalStyles(cfg *officegen.Config, totals, subtotals []int) {
	bold := func(rows []int) {
		for _, r := range rows {
			if r < 0 || r >= len(t.Cells) {
				continue
			}
			for c := range t.Cells[r] {
				t.Cells[r][c].Bold = true
			}
		}
	}
	if cfg.Tables.TotalsFontBold {
		bold(totals)
	}
	bold(subtotals)
}
