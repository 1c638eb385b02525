package table

import (
	"sort"
	"strconv"
	"strings"

	"github.com/toddbenanzer/office-gen/palette"
)

// RuleType selects a conditional-formatting behavior.
type RuleType string

const (
	ColorScale     RuleType = "color_scale"
	DataBar        RuleType = "data_bar"
	IconSet        RuleType = "icon_set"
	HighlightCells RuleType = "highlight_cells"
	TopBottom      RuleType = "top_bottom"
)

// Operator is a binary comparison for highlight rules.
type Operator string

const (
	GreaterThan        Operator = "greater_than"
	LessThan           Operator = "less_than"
	EqualTo            Operator = "equal_to"
	NotEqualTo         Operator = "not_equal_to"
	GreaterThanOrEqual Operator = "greater_than_or_equal"
	LessThanOrEqual    Operator = "less_than_or_equal"
)

// Rule is one conditional-formatting instruction targeting a single
// column. Unset fields fall back to per-type defaults. The target column
// is ColIndex when set, otherwise Column is matched by exact string
// equality against the grid's row 0; a label that differs in case or
// whitespace does not match and the rule is a no-op.
type Rule struct {
	Type     RuleType
	Column   string
	ColIndex *int

	// color_scale
	MinColor string // default 63BE7B
	MidColor string // optional midpoint anchor
	MaxColor string // default F8696B

	// data_bar, highlight_cells, top_bottom
	Color string

	// highlight_cells
	Operator Operator // default greater_than
	Value    float64

	// top_bottom
	Bottom  bool // select lowest instead of highest
	Percent bool // Rank is a percentage of candidates instead of a count
	Rank    int  // default 10

	// icon_set
	Thresholds []float64 // percentile cut points, default 33/67
	Colors     []string  // low to high, default red/yellow/green
}

// Apply runs rules against the grid in list order, mutating cell fills in
// place. Rows before startRow are never evaluated or modified. Every
// failure mode (unknown type, unresolvable column, no parseable values)
// degrades to a silent no-op for that rule.
func Apply(t *Table, rules []Rule, startRow int) {
	for _, rule := range rules {
		switch rule.Type {
		case ColorScale:
			applyColorScale(t, rule, startRow)
		case DataBar:
			applyDataBars(t, rule, startRow)
		case IconSet:
			applyIconSet(t, rule, startRow)
		case HighlightCells:
			applyHighlightCells(t, rule, startRow)
		case TopBottom:
			applyTopBottom(t, rule, startRow)
		default:
			// Unrecognized rule types are skipped.
		}
	}
}

// candidate pairs a row index with the numeric value recovered from its
// rendered text.
type candidate struct {
	row int
	val float64
}

var stripper = strings.NewReplacer("$", "", ",", "", "%", "")

// ParseNumeric recovers an approximate numeric value from rendered cell
// text by stripping the formatter's adornments ("$", ",", "%", all
// occurrences). Text that still fails to parse (including parenthesized
// negatives) yields false and is excluded from rule evaluation.
func ParseNumeric(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(stripper.Replace(text)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// resolveColumn maps a rule's target onto a grid column. An explicit
// index wins; otherwise the label is matched against row 0.
func resolveColumn(t *Table, rule Rule) (int, bool) {
	cols := t.Cols()
	if rule.ColIndex != nil {
		if *rule.ColIndex >= 0 && *rule.ColIndex < cols {
			return *rule.ColIndex, true
		}
		return 0, false
	}
	if rule.Column == "" || len(t.Cells) == 0 {
		return 0, false
	}
	for c := 0; c < cols; c++ {
		if t.Cells[0][c].Text == rule.Column {
			return c, true
		}
	}
	return 0, false
}

func collect(t *Table, col, startRow int) []candidate {
	var values []candidate
	for r := startRow; r < len(t.Cells); r++ {
		if v, ok := ParseNumeric(t.Cells[r][col].Text); ok {
			values = append(values, candidate{row: r, val: v})
		}
	}
	return values
}

func minMax(values []candidate) (min, max float64) {
	min, max = values[0].val, values[0].val
	for _, c := range values[1:] {
		if c.val < min {
			min = c.val
		}
		if c.val > max {
			max = c.val
		}
	}
	return min, max
}

func applyColorScale(t *Table, rule Rule, startRow int) {
	minColor := defaultStr(rule.MinColor, "63BE7B")
	maxColor := defaultStr(rule.MaxColor, "F8696B")

	col, ok := resolveColumn(t, rule)
	if !ok {
		return
	}
	values := collect(t, col, startRow)
	if len(values) == 0 {
		return
	}

	minVal, maxVal := minMax(values)

	// With a midpoint anchor the scale is two 50-step halves joined as-is:
	// the joint color appears twice.
	var scale []string
	if rule.MidColor != "" {
		scale = append(palette.Scale(minColor, rule.MidColor, 50),
			palette.Scale(rule.MidColor, maxColor, 50)...)
	} else {
		scale = palette.Scale(minColor, maxColor, 100)
	}

	scaleRange := maxVal - minVal
	if scaleRange <= 0 {
		// Degenerate range: leave every fill unchanged.
		return
	}
	for _, c := range values {
		position := int(((c.val - minVal) / scaleRange) * 99)
		if position < 0 {
			position = 0
		} else if position > 99 {
			position = 99
		}
		t.Cells[c.row][col].Fill = scale[position]
	}
}

func applyDataBars(t *Table, rule Rule, startRow int) {
	color := defaultStr(rule.Color, "638EC6")

	col, ok := resolveColumn(t, rule)
	if !ok {
		return
	}
	values := collect(t, col, startRow)
	if len(values) == 0 {
		return
	}

	minVal, maxVal := minMax(values)
	valueRange := maxVal - minVal

	// The width fraction is recorded but not expressed: the target format
	// has no bar-in-cell support, so the cell gets a flat fill.
	for _, c := range values {
		frac := 0.5
		if valueRange > 0 {
			frac = (c.val - minVal) / valueRange
		}
		cell := &t.Cells[c.row][col]
		cell.BarFrac = frac
		cell.Fill = color
	}
}

func applyIconSet(t *Table, rule Rule, startRow int) {
	thresholds := rule.Thresholds
	if len(thresholds) == 0 {
		thresholds = []float64{33, 67}
	}
	colors := rule.Colors
	if len(colors) == 0 {
		colors = []string{"F8696B", "FFEB84", "63BE7B"}
	}

	col, ok := resolveColumn(t, rule)
	if !ok {
		return
	}
	values := collect(t, col, startRow)
	if len(values) == 0 {
		return
	}

	minVal, maxVal := minMax(values)
	if minVal == maxVal {
		maxVal = minVal + 1
	}
	valueRange := maxVal - minVal

	cuts := make([]float64, len(thresholds))
	for i, th := range thresholds {
		cuts[i] = minVal + valueRange*th/100
	}

	for _, c := range values {
		idx := 2
		if c.val <= cuts[0] {
			idx = 0
		} else if len(cuts) > 1 && c.val <= cuts[1] {
			idx = 1
		}
		if idx >= len(colors) {
			idx = len(colors) - 1
		}
		t.Cells[c.row][col].Fill = colors[idx]
	}
}

func applyHighlightCells(t *Table, rule Rule, startRow int) {
	op := rule.Operator
	if op == "" {
		op = GreaterThan
	}
	color := defaultStr(rule.Color, "FF0000")

	col, ok := resolveColumn(t, rule)
	if !ok {
		return
	}
	for r := startRow; r < len(t.Cells); r++ {
		v, pok := ParseNumeric(t.Cells[r][col].Text)
		if !pok {
			continue
		}
		var hit bool
		switch op {
		case GreaterThan:
			hit = v > rule.Value
		case LessThan:
			hit = v < rule.Value
		case EqualTo:
			hit = v == rule.Value
		case NotEqualTo:
			hit = v != rule.Value
		case GreaterThanOrEqual:
			hit = v >= rule.Value
		case LessThanOrEqual:
			hit = v <= rule.Value
		}
		if hit {
			t.Cells[r][col].Fill = color
		}
	}
}

func applyTopBottom(t *Table, rule Rule, startRow int) {
	color := defaultStr(rule.Color, "63BE7B")
	rank := rule.Rank
	if rank == 0 {
		rank = 10
	}

	col, ok := resolveColumn(t, rule)
	if !ok {
		return
	}
	values := collect(t, col, startRow)
	if len(values) == 0 {
		return
	}

	// Stable sort keeps first-appearance order between ties.
	if rule.Bottom {
		sort.SliceStable(values, func(i, j int) bool { return values[i].val < values[j].val })
	} else {
		sort.SliceStable(values, func(i, j int) bool { return values[i].val > values[j].val })
	}

	count := rank
	if rule.Percent {
		count = int(float64(len(values)) * float64(rank) / 100)
	}
	if count > len(values) {
		count = len(values)
	}
	for i := 0; i < count; i++ {
		t.Cells[values[i].row][col].Fill = color
	}
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
