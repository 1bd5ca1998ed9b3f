// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders d rounded to whole units with the currency prefix.
// e.g., (1234.6, "₹") -> "₹1,235"
func FormatAmount(d decimal.Decimal, currency string) string {
	return currency + groupDigits(d.Round(0).String())
}

// FormatRawAmount renders an entry's amount string as typed, "0" when unset.
func FormatRawAmount(raw, currency string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "0"
	}
	return currency + raw
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return groupDigits(strconv.FormatInt(n, 10))
}

// groupDigits inserts comma separators into a decimal integer string with an
// optional leading minus sign.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var result strings.Builder
	result.WriteString(sign)
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if i > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// Share returns part/total as a 0-1 float, 0 when total is zero.
func Share(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Div(total).InexactFloat64()
}
