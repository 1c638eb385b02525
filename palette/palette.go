// Package palette provides hex color conversion, linear color scales and
// small palette generators used by charts and conditional table formatting.
package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGBToHex converts channel values to an uppercase "RRGGBB" string.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}

// HexToRGB converts an "RRGGBB" string (optionally "#"-prefixed,
// case-insensitive) to channel values. Malformed input yields zeros.
func HexToRGB(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	rv, _ := strconv.ParseUint(hex[0:2], 16, 8)
	gv, _ := strconv.ParseUint(hex[2:4], 16, 8)
	bv, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return int(rv), int(gv), int(bv)
}

// Scale returns steps colors linearly interpolated channel-wise from start
// to end, endpoints included. A single step degenerates to the start color.
func Scale(start, end string, steps int) []string {
	sr, sg, sb := HexToRGB(start)
	er, eg, eb := HexToRGB(end)

	out := make([]string, 0, steps)
	for i := 0; i < steps; i++ {
		var t float64
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		r := int(math.Round(float64(sr) + t*float64(er-sr)))
		g := int(math.Round(float64(sg) + t*float64(eg-sg)))
		b := int(math.Round(float64(sb) + t*float64(eb-sb)))
		out = append(out, RGBToHex(r, g, b))
	}
	return out
}

// Palette returns variations of a base color. Mode is one of
// "monochromatic", "complementary" or "analogous"; anything else falls
// back to monochromatic.
func Palette(base string, variations int, mode string) []string {
	switch mode {
	case "complementary":
		return Complementary(base, variations)
	case "analogous":
		return Analogous(base, variations)
	default:
		return Monochromatic(base, variations)
	}
}

// Monochromatic builds lighter and darker shades around the base color,
// without duplicating the base at the joint.
func Monochromatic(base string, variations int) []string {
	lighter := Scale("FFFFFF", base, variations/2+1)
	darker := Scale(base, "000000", variations/2+1)
	return append(lighter[:len(lighter)-1], darker...)
}

// Complementary scales from the base color to its channel-wise inverse.
func Complementary(base string, variations int) []string {
	r, g, b := HexToRGB(base)
	return Scale(base, RGBToHex(255-r, 255-g, 255-b), variations)
}

// Analogous rotates the RGB channels by fixed increments. A simplified
// stand-in for a true hue rotation.
func Analogous(base string, variations int) []string {
	r, g, b := HexToRGB(base)
	out := []string{base}
	for i := 1; i < variations; i++ {
		out = append(out, RGBToHex((r+i*30)%256, (g+i*20)%256, (b+i*10)%256))
	}
	return out
}

var schemes = map[string][]string{
	"blue":      {"4472C4", "5B9BD5", "8FAADC", "B4C7E7", "D9E1F2"},
	"green":     {"70AD47", "9BBB59", "A9D08E", "C5E0B4", "E2EFD9"},
	"red":       {"C00000", "FF0000", "FF6666", "FF9999", "FFCCCC"},
	"orange":    {"ED7D31", "F4B183", "F8CBAD", "FCE4D6", "FFF2CC"},
	"purple":    {"7030A0", "8064A2", "9B82BB", "B2A1C7", "CCC0DA"},
	"grayscale": {"000000", "444444", "888888", "BBBBBB", "EEEEEE"},
	"pastel": {"FFCCCC", "FFEBCC", "FFFFCC", "EBFFCC", "CCFFCC",
		"CCFFEB", "CCFFFF", "CCEBFF", "CCCCFF", "EBCCFF"},
	"contrast": {"004489", "E8BD00", "A40122", "53A2BE", "15846B",
		"AA57AA", "F5793A", "0BA02C", "333333", "8C8C8C"},
	"financial": {"3366CC", "DC3912", "FF9900", "109618", "990099",
		"0099C6", "DD4477", "66AA00", "B82E2E", "316395"},
}

// Scheme returns a copy of a named color scheme, or nil if unknown. Names
// are case-insensitive.
func Scheme(name string) []string {
	s, ok := schemes[strings.ToLower(name)]
	if !ok {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
