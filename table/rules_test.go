package table

import (
	"testing"

	officegen "github.com/toddbenanzer/office-gen"
)

func ruleTable(t *testing.T) *Table {
	t.Helper()
	cfg := officegen.DefaultConfig()
	cfg.Tables.AlternatingRowFill = false
	headers := []string{"Dept", "Revenue"}
	data := [][]interface{}{
		{"A", 100},
		{"B", 550},
		{"C", 1000},
	}
	return New(headers, data, cfg, Options{})
}

func TestParseNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$1,250", 1250, true},
		{"12.0%", 12, true},
		{" 42 ", 42, true},
		{"-5", -5, true},
		{"($1,235)", 0, false},
		{"Engineering", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseNumeric(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseNumeric(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestColorScale(t *testing.T) {
	tbl := ruleTable(t)
	Apply(tbl, []Rule{{
		Type:     ColorScale,
		Column:   "Revenue",
		MinColor: "FFFFFF",
		MaxColor: "000000",
	}}, 1)

	if got := tbl.Cell(1, 1).Fill; got != "FFFFFF" {
		t.Errorf("min cell fill = %q, want FFFFFF", got)
	}
	if got := tbl.Cell(3, 1).Fill; got != "000000" {
		t.Errorf("max cell fill = %q, want 000000", got)
	}
	// 550 sits at position 49 of the 100-step white-to-black scale.
	if got := tbl.Cell(2, 1).Fill; got != "818181" {
		t.Errorf("mid cell fill = %q, want 818181", got)
	}
	// The label column is untouched.
	if got := tbl.Cell(1, 0).Fill; got != "" {
		t.Errorf("label column fill = %q, want empty", got)
	}
}

func TestColorScaleDegenerateRange(t *testing.T) {
	cfg := officegen.DefaultConfig()
	cfg.Tables.AlternatingRowFill = false
	tbl := New([]string{"V"}, [][]interface{}{{"5"}, {"5"}, {"5"}}, cfg, Options{})

	Apply(tbl, []Rule{{Type: ColorScale, Column: "V"}}, 1)
	for r := 1; r < tbl.Rows(); r++ {
		if got := tbl.Cell(r, 0).Fill; got != "" {
			t.Errorf("row %d fill = %q, want unchanged", r, got)
		}
	}
}

func TestRuleNoOps(t *testing.T) {
	tbl := ruleTable(t)
	before := tbl.Cell(1, 1).Fill

	Apply(tbl, []Rule{
		{Type: RuleType("sparklines"), Column: "Revenue"},
		{Type: ColorScale, Column: "revenue"}, // case mismatch, no match
		{Type: HighlightCells, Column: "Dept", Value: 1}, // pure text column
	}, 1)

	if got := tbl.Cell(1, 1).Fill; got != before {
		t.Errorf("fill changed to %q, want %q", got, before)
	}
}

func TestHighlightCells(t *testing.T) {
	tbl := ruleTable(t)
	rule := Rule{Type: HighlightCells, Column: "Revenue", Operator: GreaterThan, Value: 500}

	Apply(tbl, []Rule{rule}, 1)
	if got := tbl.Cell(1, 1).Fill; got != "" {
		t.Errorf("100 highlighted: %q", got)
	}
	if got := tbl.Cell(2, 1).Fill; got != "FF0000" {
		t.Errorf("550 fill = %q, want FF0000", got)
	}
	if got := tbl.Cell(3, 1).Fill; got != "FF0000" {
		t.Errorf("1000 fill = %q, want FF0000", got)
	}

	// Re-applying the same rule leaves the grid unchanged.
	Apply(tbl, []Rule{rule}, 1)
	if got := tbl.Cell(2, 1).Fill; got != "FF0000" {
		t.Errorf("second application changed fill to %q", got)
	}
}

func TestHighlightCellsOperators(t *testing.T) {
	cases := []struct {
		op   Operator
		hits []int // rows with a fill afterwards
	}{
		{LessThan, []int{1}},
		{EqualTo, []int{2}},
		{NotEqualTo, []int{1, 3}},
		{GreaterThanOrEqual, []int{2, 3}},
		{LessThanOrEqual, []int{1, 2}},
	}
	for _, c := range cases {
		tbl := ruleTable(t)
		Apply(tbl, []Rule{{Type: HighlightCells, Column: "Revenue", Operator: c.op, Value: 550}}, 1)
		for r := 1; r <= 3; r++ {
			want := ""
			for _, hit := range c.hits {
				if hit == r {
					want = "FF0000"
				}
			}
			if got := tbl.Cell(r, 1).Fill; got != want {
				t.Errorf("%s row %d fill = %q, want %q", c.op, r, got, want)
			}
		}
	}
}

func TestTopBottom(t *testing.T) {
	tbl := ruleTable(t)
	Apply(tbl, []Rule{{Type: TopBottom, Column: "Revenue", Rank: 1}}, 1)
	if got := tbl.Cell(3, 1).Fill; got != "63BE7B" {
		t.Errorf("top cell fill = %q, want 63BE7B", got)
	}
	if got := tbl.Cell(1, 1).Fill; got != "" {
		t.Errorf("bottom cell fill = %q, want empty", got)
	}

	tbl = ruleTable(t)
	Apply(tbl, []Rule{{Type: TopBottom, Column: "Revenue", Rank: 1, Bottom: true, Color: "FFC7CE"}}, 1)
	if got := tbl.Cell(1, 1).Fill; got != "FFC7CE" {
		t.Errorf("bottom cell fill = %q, want FFC7CE", got)
	}
	if got := tbl.Cell(3, 1).Fill; got != "" {
		t.Errorf("top cell fill = %q, want empty", got)
	}
}

func TestTopBottomPercent(t *testing.T) {
	cfg := officegen.DefaultConfig()
	cfg.Tables.AlternatingRowFill = false
	data := make([][]interface{}, 10)
	for i := range data {
		data[i] = []interface{}{i + 1}
	}
	tbl := New([]string{"V"}, data, cfg, Options{})

	Apply(tbl, []Rule{{Type: TopBottom, Column: "V", Rank: 20, Percent: true}}, 1)
	var filled int
	for r := 1; r < tbl.Rows(); r++ {
		if tbl.Cell(r, 0).Fill != "" {
			filled++
		}
	}
	if filled != 2 {
		t.Errorf("filled %d cells, want 2", filled)
	}
	if tbl.Cell(10, 0).Fill == "" || tbl.Cell(9, 0).Fill == "" {
		t.Error("the two highest rows should be filled")
	}
}

func TestIconSet(t *testing.T) {
	tbl := ruleTable(t)
	Apply(tbl, []Rule{{Type: IconSet, Column: "Revenue"}}, 1)

	if got := tbl.Cell(1, 1).Fill; got != "F8696B" {
		t.Errorf("low cell fill = %q, want F8696B", got)
	}
	if got := tbl.Cell(2, 1).Fill; got != "FFEB84" {
		t.Errorf("mid cell fill = %q, want FFEB84", got)
	}
	if got := tbl.Cell(3, 1).Fill; got != "63BE7B" {
		t.Errorf("high cell fill = %q, want 63BE7B", got)
	}
}

func TestDataBar(t *testing.T) {
	tbl := ruleTable(t)
	Apply(tbl, []Rule{{Type: DataBar, Column: "Revenue"}}, 1)

	for r := 1; r <= 3; r++ {
		if got := tbl.Cell(r, 1).Fill; got != "638EC6" {
			t.Errorf("row %d fill = %q, want 638EC6", r, got)
		}
	}
	if got := tbl.Cell(1, 1).BarFrac; got != 0 {
		t.Errorf("min bar fraction = %v, want 0", got)
	}
	if got := tbl.Cell(2, 1).BarFrac; got != 0.5 {
		t.Errorf("mid bar fraction = %v, want 0.5", got)
	}
	if got := tbl.Cell(3, 1).BarFrac; got != 1 {
		t.Errorf("max bar fraction = %v, want 1", got)
	}
}

func TestColIndexTarget(t *testing.T) {
	tbl := ruleTable(t)
	col := 1
	Apply(tbl, []Rule{{Type: HighlightCells, ColIndex: &col, Value: 500}}, 1)
	if got := tbl.Cell(3, 1).Fill; got != "FF0000" {
		t.Errorf("fill via index = %q, want FF0000", got)
	}

	tbl = ruleTable(t)
	bad := 9
	Apply(tbl, []Rule{{Type: HighlightCells, ColIndex: &bad, Value: 0}}, 1)
	for r := 1; r <= 3; r++ {
		if got := tbl.Cell(r, 1).Fill; got != "" {
			t.Errorf("out-of-range index changed row %d fill to %q", r, got)
		}
	}
}
