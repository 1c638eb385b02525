// Package xlsx exports rendered tables as styled spreadsheet workbooks
// through unioffice, carrying cell fills, header fonts and numeric values
// across.
package xlsx

import (
	"fmt"
	"io"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/toddbenanzer/office-gen/palette"
	"github.com/toddbenanzer/office-gen/table"
)

// Export builds a workbook with one sheet per table. Cells whose display
// text re-parses as a number (the same strip-and-parse the rule engine
// uses) are written as numeric cells; everything else is written as text.
func Export(tables ...*table.Table) (*spreadsheet.Workbook, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables to export")
	}

	wb := spreadsheet.New()
	styles := newStyleCache(wb)

	for i, t := range tables {
		sheet := wb.AddSheet()
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("Table %d", i+1)
		}
		sheet.SetName(name)

		for c, w := range t.ColWidths {
			if w > 0 {
				sheet.Column(uint32(c + 1)).SetWidth(measurement.Distance(w) * measurement.Inch)
			}
		}

		for r := 0; r < t.Rows(); r++ {
			row := sheet.AddRow()
			for c := 0; c < t.Cols(); c++ {
				src := t.Cell(r, c)
				cell := row.AddCell()

				if v, ok := table.ParseNumeric(src.Text); ok {
					cell.SetNumber(v)
				} else {
					cell.SetString(src.Text)
				}

				if cs, ok := styles.get(src.Fill, src.FontColor, src.Bold); ok {
					cell.SetStyle(cs)
				}
			}
		}
	}
	return wb, nil
}

// Write exports the tables and writes the workbook to w.
func Write(w io.Writer, tables ...*table.Table) error {
	wb, err := Export(tables...)
	if err != nil {
		return err
	}
	if err := wb.Save(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveFile exports the tables and writes the workbook to path.
func SaveFile(path string, tables ...*table.Table) error {
	wb, err := Export(tables...)
	if err != nil {
		return err
	}
	if err := wb.SaveToFile(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// styleCache deduplicates cell styles: one stylesheet entry per distinct
// fill/font-color/bold combination.
type styleCache struct {
	wb     *spreadsheet.Workbook
	styles map[string]spreadsheet.CellStyle
}

func newStyleCache(wb *spreadsheet.Workbook) *styleCache {
	return &styleCache{wb: wb, styles: make(map[string]spreadsheet.CellStyle)}
}

func (sc *styleCache) get(fill, fontColor string, bold bool) (spreadsheet.CellStyle, bool) {
	if fill == "" && fontColor == "" && !bold {
		return spreadsheet.CellStyle{}, false
	}
	key := fmt.Sprintf("%s|%s|%t", fill, fontColor, bold)
	if cs, ok := sc.styles[key]; ok {
		return cs, true
	}

	cs := sc.wb.StyleSheet.AddCellStyle()
	if fill != "" {
		f := sc.wb.StyleSheet.Fills().AddFill()
		pf := f.SetPatternFill()
		pf.SetPattern(sml.ST_PatternTypeSolid)
		pf.SetFgColor(hexColor(fill))
		cs.SetFill(f)
	}
	if bold || fontColor != "" {
		fnt := sc.wb.StyleSheet.AddFont()
		if bold {
			fnt.SetBold(true)
		}
		if fontColor != "" {
			fnt.SetColor(hexColor(fontColor))
		}
		cs.SetFont(fnt)
	}
	sc.styles[key] = cs
	return cs, true
}

func hexColor(hex string) color.Color {
	r, g, b := palette.HexToRGB(hex)
	return color.RGB(uint8(r), uint8(g), uint8(b))
}
