// Package ledger implements the fixed-cost ledger: a persisted mapping of
// expense names to recurring amounts, with monthly-normalized totals.
package ledger

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Frequency is how often an entry is billed. Values outside the known set are
// kept as-is and normalized as monthly.
type Frequency string

// Billing frequencies.
const (
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// Frequencies lists the known frequencies in cycle order.
var Frequencies = []Frequency{Monthly, Quarterly, Yearly}

// Label returns the frequency for display; an empty value reads as monthly.
func (f Frequency) Label() string {
	if f == "" {
		return string(Monthly)
	}
	return string(f)
}

// Next returns the frequency after f in Frequencies, wrapping around.
// Unknown values restart at Monthly.
func (f Frequency) Next() Frequency {
	for i, known := range Frequencies {
		if f == known {
			return Frequencies[(i+1)%len(Frequencies)]
		}
	}
	return Monthly
}

// divisor is the number of months one billing period covers.
func (f Frequency) divisor() int64 {
	switch f {
	case Quarterly:
		return 3
	case Yearly:
		return 12
	default:
		return 1
	}
}

// Entry is one fixed cost. The name is the key it is stored under.
type Entry struct {
	Amount    string    `json:"amount"`
	Frequency Frequency `json:"frequency"`
	Notes     string    `json:"notes"`
}

// Placeholder is the empty entry seeded for catalog names and restored by clear.
func Placeholder() Entry {
	return Entry{Frequency: Monthly}
}

// activeEpsilon is the smallest absolute amount that counts as set.
var activeEpsilon = decimal.New(1, -6)

// Magnitude bounds, in decimal digits, of a finite non-zero float64.
const (
	maxFiniteDigits = 309
	minFiniteDigits = -324
)

// numericPrefix matches the leading number of an amount string.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads the leading number of s, ignoring leading whitespace and
// any trailing text ("12abc" is 12). ok is false when s has no leading number
// or the value does not fit a finite float64. Values too small for a float64
// read as zero.
func ParseAmount(s string) (decimal.Decimal, bool) {
	m := numericPrefix.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if m == "" {
		return decimal.Zero, false
	}
	m = strings.TrimPrefix(m, "+")

	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	if d.IsZero() {
		return decimal.Zero, true
	}

	// Float64 and decimal arithmetic both expand the exponent, so extreme
	// magnitudes are settled from the digit count alone.
	switch mag := int64(d.Exponent()) + int64(d.NumDigits()); {
	case mag > maxFiniteDigits:
		return decimal.Zero, false
	case mag < minFiniteDigits:
		return decimal.Zero, true
	}
	if f, _ := d.Float64(); math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	return d, true
}

// IsActive reports whether e has a finite, non-zero amount.
func (e Entry) IsActive() bool {
	d, ok := ParseAmount(e.Amount)
	if !ok {
		return false
	}
	return d.Abs().GreaterThan(activeEpsilon)
}

// MonthlyAmount returns the amount converted to a per-month figure.
// Unparsable amounts contribute zero.
func (e Entry) MonthlyAmount() decimal.Decimal {
	d, ok := ParseAmount(e.Amount)
	if !ok {
		return decimal.Zero
	}
	div := e.Frequency.divisor()
	if div == 1 {
		return d
	}
	return d.Div(decimal.NewFromInt(div))
}
