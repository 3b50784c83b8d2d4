package batch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Derived holds the read-only columns computed from stock, cost price,
// selling price and GST percent.
type Derived struct {
	GSTAmount decimal.Decimal `json:"gst_amount"`
	Profit    decimal.Decimal `json:"profit"`
	Amt       decimal.Decimal `json:"amt"`
	NetCost   decimal.Decimal `json:"net_cost"`
	NetAmt    decimal.Decimal `json:"net_amt"`
}

// ComputeDerivedFields is a pure function of its four inputs. Every output is
// computed exactly and then rounded half away from zero to two places.
func ComputeDerivedFields(stock, costPrice, sellingPrice, gstPercent decimal.Decimal) Derived {
	gstAmount := costPrice.Mul(gstPercent).Div(hundred)
	return Derived{
		GSTAmount: gstAmount.Round(moneyPlaces),
		Profit:    sellingPrice.Sub(costPrice).Round(moneyPlaces),
		Amt:       costPrice.Mul(stock).Round(moneyPlaces),
		NetCost:   costPrice.Add(gstAmount).Round(moneyPlaces),
		NetAmt:    sellingPrice.Mul(stock).Add(sellingPrice.Mul(gstPercent).Div(hundred)).Round(moneyPlaces),
	}
}

// ParseNumber reads the leading number of free text. Empty or non-numeric
// input yields zero, and negative values pass through unchanged. Numbers
// outside the float64 range also read as zero.
func ParseNumber(s string) decimal.Decimal {
	prefix := numericPrefix(s)
	if prefix == "" {
		return decimal.Zero
	}
	d, err := boundedDecimal(prefix)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// maxFractionDigits caps the exact scale kept for tiny values; anything
// finer goes through float64.
const maxFractionDigits = 32

// boundedDecimal parses a numeric prefix exactly when it fits float64 with a
// modest scale. Overflowing input is an error, and very small magnitudes are
// taken from the float64 reading so later rounding stays cheap.
func boundedDecimal(prefix string) (decimal.Decimal, error) {
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return decimal.Zero, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, strconv.ErrRange
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil || d.Exponent() < -maxFractionDigits {
		return decimal.NewFromFloat(f), nil
	}
	return d, nil
}

// ParseNumberStrict is ParseNumber for callers that want garbage rejected
// instead of read as zero.
func ParseNumberStrict(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty number")
	}
	prefix := numericPrefix(trimmed)
	if prefix == "" || len(strings.TrimPrefix(trimmed, "+")) != len(prefix) {
		return decimal.Zero, fmt.Errorf("invalid number %q", s)
	}
	d, err := boundedDecimal(prefix)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return d, nil
}

// numericPrefix returns the longest prefix of s that reads as a decimal
// number with an optional exponent, or "" when there is none. A leading '+'
// and a dangling '.' are dropped.
func numericPrefix(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	s = strings.TrimPrefix(s, "+")

	i, digits := 0, 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j, frac := i+1, 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return s[:i]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
