package ledger

import (
	"strconv"
	"strings"
)

// ParseAmount coerces free-form numeric input into a non-negative amount.
// Comma decimal separators are accepted; anything unparseable becomes 0.
func ParseAmount(s string) float64 {
	clean := strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseQuantity coerces free-form input into a non-negative integer count.
func ParseQuantity(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
