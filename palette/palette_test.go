package palette

import "testing"

func TestHexRGBRoundTrip(t *testing.T) {
	r, g, b := HexToRGB("3C2F80")
	if r != 0x3C || g != 0x2F || b != 0x80 {
		t.Fatalf("HexToRGB = %d,%d,%d", r, g, b)
	}
	if got := RGBToHex(r, g, b); got != "3C2F80" {
		t.Errorf("RGBToHex = %q", got)
	}
}

func TestHexToRGBLenient(t *testing.T) {
	r, g, b := HexToRGB("#ff0000")
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("prefixed lowercase = %d,%d,%d", r, g, b)
	}
	r, g, b = HexToRGB("nope")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("malformed input = %d,%d,%d, want zeros", r, g, b)
	}
}

func TestScale(t *testing.T) {
	s := Scale("000000", "FFFFFF", 3)
	if len(s) != 3 {
		t.Fatalf("len = %d, want 3", len(s))
	}
	if s[0] != "000000" || s[2] != "FFFFFF" {
		t.Errorf("endpoints = %q, %q", s[0], s[2])
	}
	if s[1] != "808080" {
		t.Errorf("midpoint = %q, want 808080", s[1])
	}
}

func TestScaleSingleStep(t *testing.T) {
	s := Scale("123456", "FFFFFF", 1)
	if len(s) != 1 || s[0] != "123456" {
		t.Errorf("single step = %v", s)
	}
}

func TestMonochromatic(t *testing.T) {
	p := Monochromatic("808080", 6)
	if len(p) != 7 {
		t.Fatalf("len = %d, want 7", len(p))
	}
	if p[0] != "FFFFFF" || p[len(p)-1] != "000000" {
		t.Errorf("endpoints = %q, %q", p[0], p[len(p)-1])
	}
	// The base appears once at the joint.
	var base int
	for _, c := range p {
		if c == "808080" {
			base++
		}
	}
	if base != 1 {
		t.Errorf("base color appears %d times, want 1", base)
	}
}

func TestComplementary(t *testing.T) {
	p := Complementary("FF0000", 2)
	if len(p) != 2 || p[0] != "FF0000" || p[1] != "00FFFF" {
		t.Errorf("complementary = %v", p)
	}
}

func TestPaletteModeFallback(t *testing.T) {
	want := Monochromatic("4472C4", 4)
	got := Palette("4472C4", 4, "unknown-mode")
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScheme(t *testing.T) {
	s := Scheme("Financial")
	if len(s) != 10 || s[0] != "3366CC" {
		t.Errorf("financial scheme = %v", s)
	}
	if Scheme("plasma") != nil {
		t.Error("unknown scheme should be nil")
	}

	// Callers get a copy, not the shared backing array.
	s[0] = "000000"
	if again := Scheme("financial"); again[0] != "3366CC" {
		t.Errorf("scheme mutated through returned slice: %q", again[0])
	}
}
