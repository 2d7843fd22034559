// Package inr formats rupee amounts the way Indian payslips print them: lakh/crore digit
// grouping and amounts spelled out in words.
package inr

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1000)
	lakh     = decimal.NewFromInt(100000)
	crore    = decimal.NewFromInt(10000000)
)

// Group formats the rounded whole amount with Indian grouping, e.g. 1234567 -> "12,34,567"
func Group(amount decimal.Decimal) string {
	neg := amount.Round(0).IsNegative()
	digits := amount.Abs().Round(0).StringFixed(0)

	grouped := digits
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		tail := digits[len(digits)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}
	if neg {
		return "-" + grouped
	}
	return grouped
}

// Format renders an amount as "₹12,34,567"
func Format(amount decimal.Decimal) string {
	if amount.Round(0).IsNegative() {
		return "-₹" + Group(amount.Abs())
	}
	return "₹" + Group(amount)
}

// Compact renders large amounts in lakh/crore shorthand, e.g. "₹18.50L" or "₹1.25Cr"
func Compact(amount decimal.Decimal) string {
	abs := amount.Abs()
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(crore):
		return sign + "₹" + abs.Div(crore).StringFixed(2) + "Cr"
	case abs.GreaterThanOrEqual(lakh):
		return sign + "₹" + abs.Div(lakh).StringFixed(2) + "L"
	case abs.GreaterThanOrEqual(thousand):
		return sign + "₹" + abs.Div(thousand).StringFixed(1) + "K"
	}
	return sign + "₹" + abs.StringFixed(0)
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// Words spells out the rounded rupee amount, e.g. 1234567 ->
// "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees"
func Words(amount decimal.Decimal) string {
	n := amount.Abs().Round(0).IntPart()
	if n == 0 {
		return "Zero Rupees"
	}

	var parts []string
	if c := n / 10000000; c > 0 {
		// Crores above 99 are spelled recursively ("One Hundred Twenty Crore")
		parts = append(parts, wordsBelowCrore(c)+" Crore")
		n %= 10000000
	}
	if n > 0 {
		parts = append(parts, wordsBelowCrore(n))
	}

	out := strings.Join(parts, " ") + " Rupees"
	if amount.Round(0).IsNegative() {
		return "Minus " + out
	}
	return out
}

func wordsBelowCrore(n int64) string {
	var parts []string
	if n >= 10000000 {
		parts = append(parts, wordsBelowCrore(n/10000000)+" Crore")
		n %= 10000000
	}
	if l := n / 100000; l > 0 {
		parts = append(parts, twoDigits(l)+" Lakh")
		n %= 100000
	}
	if t := n / 1000; t > 0 {
		parts = append(parts, twoDigits(t)+" Thousand")
		n %= 1000
	}
	if h := n / 100; h > 0 {
		parts = append(parts, ones[h]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, twoDigits(n))
	}
	return strings.Join(parts, " ")
}

func twoDigits(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}
