// Package presenter turns risk summaries into the formatted, colour-scaled
// comparison table.
package presenter

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of decimals shown for every metric.
const Places = 2

const nanText = "NaN"

// FormatFixed renders v with two decimals, rounding half away from zero.
// NaN renders as "NaN" and infinities as "+Inf" / "-Inf".
func FormatFixed(v float64) string {
	switch {
	case math.IsNaN(v):
		return nanText
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(v).StringFixed(Places)
}

// FormatPercent renders v like FormatFixed with a trailing "%".
// v is already a percentage.
func FormatPercent(v float64) string {
	if math.IsNaN(v) {
		return nanText
	}
	return FormatFixed(v) + "%"
}

// ParseFixed parses a string produced by FormatFixed.
func ParseFixed(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case nanText:
		return math.NaN(), nil
	case "+Inf":
		return math.Inf(1), nil
	case "-Inf":
		return math.Inf(-1), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}

// ParsePercent parses a string produced by FormatPercent.
func ParsePercent(s string) (float64, error) {
	return ParseFixed(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}
