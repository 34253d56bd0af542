// Package format renders funnel numbers for display. Formatting is a
// presentation concern: the funnel package never imports this.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Count formats a number with thousands separators and no decimals,
// e.g. 1997424 -> "1,997,424". Values are rounded, not truncated.
func Count(v float64) string {
	rounded := math.Round(v)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := strconv.FormatFloat(rounded, 'f', 0, 64)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// USD formats a dollar amount with a currency prefix, e.g. "$1,997,424".
func USD(v float64) string {
	if v < 0 {
		return "-$" + Count(-v)
	}
	return "$" + Count(v)
}

// SignedUSD formats a delta with an explicit sign, e.g. "+$1,533,376".
func SignedUSD(v float64) string {
	if v < 0 {
		return "-$" + Count(-v)
	}
	return "+$" + Count(v)
}

// Percent formats a whole-percent value, e.g. 22 -> "22%".
func Percent(v float64) string {
	return fmt.Sprintf("%g%%", v)
}
