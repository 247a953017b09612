// Package specs extracts numeric magnitudes from free-text hardware
// specification strings and normalizes heterogeneous units to a common base
// (megabytes for storage and memory, megahertz for clock speeds, millions of
// units for sales figures). Parsing never fails: malformed input yields 0.
package specs

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`[0-9.]+`)

// ParseMagnitude extracts the first numeric token from text and rescales it
// according to any unit marker present:
//
//	kb → /1024, gb → *1024, tb → *1024*1024  (result in MB)
//	ghz → *1000                              (result in MHz)
//
// Thousands separators are stripped first. Returns 0 when no numeric token
// is found.
func ParseMagnitude(text string) float64 {
	if text == "" {
		return 0
	}
	clean := strings.ToLower(strings.ReplaceAll(text, ",", ""))
	num := firstNumber(clean)

	switch {
	case strings.Contains(clean, "kb") || strings.Contains(clean, "kilobyte"):
		return num / 1024
	case strings.Contains(clean, "gb") || strings.Contains(clean, "gigabyte"):
		return num * 1024
	case strings.Contains(clean, "tb") || strings.Contains(clean, "terabyte"):
		return num * 1024 * 1024
	case strings.Contains(clean, "ghz"):
		return num * 1000
	}
	return num
}

// ParseSales interprets a free-text sales figure as millions of units.
// Values above 1000 are assumed to be literal unit counts ("60,000,000")
// and divided by one million; smaller values are assumed to already be in
// millions ("60 million"). Best-effort heuristic, not a precise contract.
func ParseSales(text string) float64 {
	if text == "" {
		return 0
	}
	clean := stripNonNumeric(strings.ToLower(text))
	num, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	if num > 1000 {
		return num / 1_000_000
	}
	return num
}

// ParsePrice extracts a numeric amount from a currency string by dropping
// everything except digits and the decimal point. Returns 0 on no amount.
func ParsePrice(text string) float64 {
	clean := stripNonNumeric(text)
	num, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return num
}

// firstNumber returns the first floating-point token in s, or 0.
func firstNumber(s string) float64 {
	match := numberPattern.FindString(s)
	if match == "" {
		return 0
	}
	num, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return num
}

// stripNonNumeric removes every character except digits and dots.
func stripNonNumeric(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
