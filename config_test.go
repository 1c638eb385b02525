package officegen

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tables.HeaderFillColor != "3C2F80" {
		t.Errorf("header fill = %q", cfg.Tables.HeaderFillColor)
	}
	if cfg.Tables.RowHeight != 0.5 {
		t.Errorf("row height = %v", cfg.Tables.RowHeight)
	}
	if cfg.Formatting.Dollars.DecimalPlaces != 0 || !cfg.Formatting.Dollars.NegativeInParentheses {
		t.Errorf("dollars profile = %+v", cfg.Formatting.Dollars)
	}
	if cfg.Formatting.Percentages.DecimalPlaces != 1 {
		t.Errorf("percentages decimal places = %d", cfg.Formatting.Percentages.DecimalPlaces)
	}
	if cfg.Charts.Colors["series_1"] != "3C2F80" {
		t.Errorf("series_1 color = %q", cfg.Charts.Colors["series_1"])
	}
	if cfg.Line.LineWidth["series_1"] != 2.5 || cfg.Line.LineWidth["series_2"] != 1.5 {
		t.Errorf("line widths = %v", cfg.Line.LineWidth)
	}
}

func TestApplyYAML(t *testing.T) {
	cfg := DefaultConfig()
	doc := []byte(`
tables:
  header_fill_color: "1F4E79"
formatting:
  dollars:
    decimal_places: 2
    scaling: K
`)
	if err := cfg.ApplyYAML(doc); err != nil {
		t.Fatalf("apply yaml: %v", err)
	}

	if cfg.Tables.HeaderFillColor != "1F4E79" {
		t.Errorf("header fill = %q, want override", cfg.Tables.HeaderFillColor)
	}
	if cfg.Formatting.Dollars.DecimalPlaces != 2 || cfg.Formatting.Dollars.Scaling != "K" {
		t.Errorf("dollars profile = %+v", cfg.Formatting.Dollars)
	}
	// Untouched sections keep their defaults.
	if cfg.Tables.HeaderFontColor != "FFFFFF" {
		t.Errorf("header font color = %q, want default", cfg.Tables.HeaderFontColor)
	}
	if cfg.Formatting.Percentages.DecimalPlaces != 1 {
		t.Errorf("percentages touched by dollars override: %+v", cfg.Formatting.Percentages)
	}
}

func TestApplyYAMLMalformed(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyYAML([]byte("tables: [")); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	cp := cfg.Clone()

	cp.Tables.HeaderFillColor = "000000"
	cp.Charts.Colors["series_1"] = "000000"
	cp.Line.LineWidth["series_1"] = 9

	if cfg.Tables.HeaderFillColor != "3C2F80" {
		t.Errorf("clone mutated the original struct: %q", cfg.Tables.HeaderFillColor)
	}
	if cfg.Charts.Colors["series_1"] != "3C2F80" {
		t.Errorf("clone shares the colors map: %q", cfg.Charts.Colors["series_1"])
	}
	if cfg.Line.LineWidth["series_1"] != 2.5 {
		t.Errorf("clone shares the line width map: %v", cfg.Line.LineWidth["series_1"])
	}
}
