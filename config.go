// Package officegen composes chart, table and shape content into slide
// decks and styled workbooks, delegating file-format rendering to GoPPT
// and unioffice. The root package holds the configuration model shared by
// the deck, chart, table and format subpackages.
package officegen

import "gopkg.in/yaml.v3"

// Colors are "RRGGBB" hex strings throughout, uppercase by convention on
// output, case-insensitive on input.

// GeneralConfig holds font defaults shared by all content types.
type GeneralConfig struct {
	FontName      string  `yaml:"font_name"`
	FontSize      float64 `yaml:"font_size"`
	TitleFontSize float64 `yaml:"title_font_size"`
}

// ChartsConfig holds defaults common to every chart type.
type ChartsConfig struct {
	GapWidth          int               `yaml:"gap_width"`
	HasDataLabels     bool              `yaml:"has_data_labels"`
	DataLabelFontName string            `yaml:"data_label_font_name"`
	DataLabelFontSize float64           `yaml:"data_label_font_size"`
	HasLegend         bool              `yaml:"has_legend"`
	LegendPosition    string            `yaml:"legend_position"` // bottom|right|left|top
	LegendFontName    string            `yaml:"legend_font_name"`
	LegendFontSize    float64           `yaml:"legend_font_size"`
	AxisFontName      string            `yaml:"axis_font_name"`
	AxisFontSize      float64           `yaml:"axis_font_size"`
	ShowAxisLines     bool              `yaml:"show_axis_lines"`
	ShowGridlines     bool              `yaml:"show_gridlines"`
	ValueAxisVisible  bool              `yaml:"value_axis_visible"`
	Colors            map[string]string `yaml:"colors"` // series_1..series_N
}

// BarChartConfig holds clustered/stacked bar defaults.
type BarChartConfig struct {
	ChartType         string `yaml:"chart_type"` // column_clustered|bar_clustered|column_stacked
	GapWidth          int    `yaml:"gap_width"`
	DataLabelPosition string `yaml:"data_label_position"`
}

// DonutChartConfig holds donut chart defaults.
type DonutChartConfig struct {
	DataLabelNumberFormat string `yaml:"data_label_number_format"`
}

// LineChartConfig holds line chart defaults.
type LineChartConfig struct {
	LineWidth        map[string]float64 `yaml:"line_width"`  // points, per series_N
	LineStyle        map[string]string  `yaml:"line_style"`  // solid|dash, per series_N
	ShowMarkers      bool               `yaml:"show_markers"`
	ShowGridlines    bool               `yaml:"show_gridlines"`
	ValueAxisVisible bool               `yaml:"value_axis_visible"`
	GridlineColor    string             `yaml:"gridline_color"`
}

// TablesConfig holds styled-table defaults.
type TablesConfig struct {
	HasHeader               bool    `yaml:"has_header"`
	HeaderFontName          string  `yaml:"header_font_name"`
	HeaderFontSize          float64 `yaml:"header_font_size"`
	HeaderFontBold          bool    `yaml:"header_font_bold"`
	HeaderFillColor         string  `yaml:"header_fill_color"`
	HeaderFontColor         string  `yaml:"header_font_color"`
	CellFontName            string  `yaml:"cell_font_name"`
	CellFontSize            float64 `yaml:"cell_font_size"`
	RowHeight               float64 `yaml:"row_height"` // inches
	TotalsFontBold          bool    `yaml:"totals_font_bold"`
	TotalsBorderTop         bool    `yaml:"totals_border_top"`
	AlternatingRowFill      bool    `yaml:"alternating_row_fill"`
	AlternatingRowFillColor string  `yaml:"alternating_row_fill_color"`
}

// DollarsProfile configures the dollars format kind.
type DollarsProfile struct {
	DecimalPlaces         int    `yaml:"decimal_places"`
	ShowSymbol            bool   `yaml:"show_symbol"`
	ShowCommas            bool   `yaml:"show_commas"`
	NegativeInParentheses bool   `yaml:"negative_in_parentheses"`
	NegativeColor         string `yaml:"negative_color"`
	Scaling               string `yaml:"scaling"` // ""|K|M|B
}

// PercentagesProfile configures the percentage format kind.
type PercentagesProfile struct {
	DecimalPlaces         int    `yaml:"decimal_places"`
	ShowSymbol            bool   `yaml:"show_symbol"`
	ShowCommas            bool   `yaml:"show_commas"`
	NegativeInParentheses bool   `yaml:"negative_in_parentheses"`
	NegativeColor         string `yaml:"negative_color"`
}

// CountsProfile configures the counts format kind.
type CountsProfile struct {
	ShowCommas            bool   `yaml:"show_commas"`
	NegativeInParentheses bool   `yaml:"negative_in_parentheses"`
	NegativeColor         string `yaml:"negative_color"`
}

// FormattingConfig groups the per-kind profiles.
type FormattingConfig struct {
	Dollars     DollarsProfile     `yaml:"dollars"`
	Percentages PercentagesProfile `yaml:"percentages"`
	Counts      CountsProfile      `yaml:"counts"`
}

// TextBoxConfig holds text box defaults.
type TextBoxConfig struct {
	Width           float64 `yaml:"width"`  // inches
	Height          float64 `yaml:"height"` // inches
	FontName        string  `yaml:"font_name"`
	FontSize        float64 `yaml:"font_size"`
	Bold            bool    `yaml:"bold"`
	Italic          bool    `yaml:"italic"`
	FontColor       string  `yaml:"font_color"`
	FillColor       string  `yaml:"fill_color"`
	NoFill          bool    `yaml:"no_fill"`
	BorderColor     string  `yaml:"border_color"`
	BorderWeight    float64 `yaml:"border_weight"` // points
	NoBorder        bool    `yaml:"no_border"`
	HorizontalAlign string  `yaml:"horizontal_align"` // left|center|right|justify
	VerticalAlign   string  `yaml:"vertical_align"`   // top|middle|bottom
}

// Config is the full configuration for a presentation. It is constructed
// once via DefaultConfig, optionally overridden, and passed by reference
// down the call chain; Clone produces independent per-slide copies.
type Config struct {
	General      GeneralConfig    `yaml:"general"`
	Charts       ChartsConfig     `yaml:"charts"`
	ClusteredBar BarChartConfig   `yaml:"clustered_bar_chart"`
	StackedBar   BarChartConfig   `yaml:"stacked_bar_chart"`
	Donut        DonutChartConfig `yaml:"donut_chart"`
	Line         LineChartConfig  `yaml:"line_chart"`
	Tables       TablesConfig     `yaml:"tables"`
	Formatting   FormattingConfig `yaml:"formatting"`
	TextBox      TextBoxConfig    `yaml:"text_box"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			FontName:      "Arial",
			FontSize:      11,
			TitleFontSize: 14,
		},
		Charts: ChartsConfig{
			GapWidth:          100,
			HasDataLabels:     true,
			DataLabelFontName: "Arial",
			DataLabelFontSize: 11,
			HasLegend:         true,
			LegendPosition:    "bottom",
			LegendFontName:    "Arial",
			LegendFontSize:    9,
			AxisFontName:      "Arial",
			AxisFontSize:      9,
			Colors: map[string]string{
				"series_1": "3C2F80",
				"series_2": "2C1F10",
				"series_3": "4C4C4C",
				"series_4": "5C5F80",
				"series_5": "6C6F10",
			},
		},
		ClusteredBar: BarChartConfig{
			ChartType: "column_clustered",
			GapWidth:  100,
		},
		StackedBar: BarChartConfig{
			ChartType:         "column_stacked",
			GapWidth:          100,
			DataLabelPosition: "inside_end",
		},
		Donut: DonutChartConfig{
			DataLabelNumberFormat: "0%",
		},
		Line: LineChartConfig{
			LineWidth: map[string]float64{
				"series_1": 2.5,
				"series_2": 1.5,
				"series_3": 1.5,
				"series_4": 1.5,
				"series_5": 1.5,
			},
			LineStyle: map[string]string{
				"series_1": "solid",
				"series_2": "dash",
				"series_3": "solid",
				"series_4": "dash",
				"series_5": "solid",
			},
			ShowGridlines:    true,
			ValueAxisVisible: true,
			GridlineColor:    "BFBFBF",
		},
		Tables: TablesConfig{
			HasHeader:               true,
			HeaderFontName:          "Arial",
			HeaderFontSize:          12,
			HeaderFontBold:          true,
			HeaderFillColor:         "3C2F80",
			HeaderFontColor:         "FFFFFF",
			CellFontName:            "Arial",
			CellFontSize:            11,
			RowHeight:               0.5,
			TotalsFontBold:          true,
			TotalsBorderTop:         true,
			AlternatingRowFill:      true,
			AlternatingRowFillColor: "F2F2F2",
		},
		Formatting: FormattingConfig{
			Dollars: DollarsProfile{
				DecimalPlaces:         0,
				ShowSymbol:            true,
				ShowCommas:            true,
				NegativeInParentheses: true,
				NegativeColor:         "FF0000",
			},
			Percentages: PercentagesProfile{
				DecimalPlaces:         1,
				ShowSymbol:            true,
				ShowCommas:            true,
				NegativeInParentheses: true,
				NegativeColor:         "FF0000",
			},
			Counts: CountsProfile{
				ShowCommas:            true,
				NegativeInParentheses: true,
				NegativeColor:         "FF0000",
			},
		},
		TextBox: TextBoxConfig{
			Width:           7,
			Height:          1,
			FontName:        "Arial",
			FontSize:        11,
			FontColor:       "000000",
			FillColor:       "FFFFFF",
			NoFill:          true,
			BorderColor:     "000000",
			BorderWeight:    1,
			NoBorder:        true,
			HorizontalAlign: "center",
			VerticalAlign:   "middle",
		},
	}
}

// Clone returns an independent deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Charts.Colors = cloneStringMap(c.Charts.Colors)
	cp.Line.LineWidth = cloneFloatMap(c.Line.LineWidth)
	cp.Line.LineStyle = cloneStringMap(c.Line.LineStyle)
	return &cp
}

// ApplyYAML merges YAML overrides into the config. Only keys present in
// the document replace existing values, reproducing section-wise override
// semantics.
func (c *Config) ApplyYAML(data []byte) error {
	return yaml.Unmarshal(data, c)
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneFloatMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
