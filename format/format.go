// Package format renders typed values to display strings under a
// configuration profile. Formatting is the last time a value is seen as a
// number: downstream consumers (including the conditional rule engine)
// operate on the rendered text only.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	officegen "github.com/toddbenanzer/office-gen"
)

// Kind selects the numeric rendering rules for a value.
type Kind string

const (
	Dollars    Kind = "dollars"
	Percentage Kind = "percentage"
	Counts     Kind = "counts"
	Text       Kind = "text"
)

// Format renders a value under the given kind and configuration. Nil and
// NaN render as the empty string regardless of kind; strings pass through
// unchanged; unrecognized kinds fall back to plain string conversion.
func Format(value interface{}, kind Kind, cfg *officegen.Config) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	if kind == Text {
		return fmt.Sprint(value)
	}

	v, ok := toFloat(value)
	if ok && math.IsNaN(v) {
		return ""
	}

	switch kind {
	case Dollars:
		if !ok {
			return ""
		}
		return formatDollars(v, cfg.Formatting.Dollars)
	case Percentage:
		if !ok {
			return ""
		}
		return formatPercentage(v, cfg.Formatting.Percentages)
	case Counts:
		if !ok {
			return ""
		}
		return formatCounts(v, cfg.Formatting.Counts)
	default:
		return fmt.Sprint(value)
	}
}

func formatDollars(v float64, p officegen.DollarsProfile) string {
	// Rescale only when the magnitude meets the unit threshold; $999 with
	// K scaling stays unscaled.
	suffix := ""
	switch p.Scaling {
	case "K":
		if math.Abs(v) >= 1_000 {
			v /= 1_000
			suffix = "K"
		}
	case "M":
		if math.Abs(v) >= 1_000_000 {
			v /= 1_000_000
			suffix = "M"
		}
	case "B":
		if math.Abs(v) >= 1_000_000_000 {
			v /= 1_000_000_000
			suffix = "B"
		}
	}

	// Round half away from zero before sign handling.
	v = roundTo(v, p.DecimalPlaces)
	neg := v < 0

	s := formatNumber(math.Abs(v), p.DecimalPlaces, p.ShowCommas) + suffix
	if p.ShowSymbol {
		s = "$" + s
	}
	if neg {
		if p.NegativeInParentheses {
			return "(" + s + ")"
		}
		return "-" + s
	}
	return s
}

func formatPercentage(v float64, p officegen.PercentagesProfile) string {
	// Fractional inputs are proportions; values already above 1 are taken
	// as percentages as-is.
	if math.Abs(v) <= 1 {
		v *= 100
	}

	v = roundTo(v, p.DecimalPlaces)
	neg := v < 0

	s := formatNumber(math.Abs(v), p.DecimalPlaces, p.ShowCommas)
	if neg {
		if p.NegativeInParentheses {
			s = "(" + s + ")"
		} else {
			s = "-" + s
		}
	}
	if p.ShowSymbol {
		s += "%"
	}
	return s
}

func formatCounts(v float64, p officegen.CountsProfile) string {
	v = math.Round(v)
	neg := v < 0

	s := formatNumber(math.Abs(v), 0, p.ShowCommas)
	if neg {
		if p.NegativeInParentheses {
			return "(" + s + ")"
		}
		return "-" + s
	}
	return s
}

// formatNumber is the shared numeric rendering primitive: fixed decimal
// places with optional grouping separators.
func formatNumber(v float64, decimals int, commas bool) string {
	if !commas {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	pattern := "#,###."
	if decimals > 0 {
		pattern += strings.Repeat("#", decimals)
	}
	return humanize.FormatFloat(pattern, v)
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
