package inr

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestGroup(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1,500"},
		{-1500, "-1,500"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{10000000, "1,00,00,000"},
		{1177748.6, "11,77,749"},
	}
	for _, c := range cases {
		if got := Group(decimal.NewFromFloat(c.in)); got != c.want {
			t.Fatalf("Group(%v): got %s want %s", c.in, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(decimal.NewFromInt(1500000)); got != "₹15,00,000" {
		t.Fatalf("Format positive: got %s", got)
	}
	if got := Format(decimal.NewFromInt(-1500)); got != "-₹1,500" {
		t.Fatalf("Format negative: got %s", got)
	}
}

func TestCompact(t *testing.T) {
	cases := map[int64]string{
		999:      "₹999",
		2500:     "₹2.5K",
		1850000:  "₹18.50L",
		12500000: "₹1.25Cr",
		-150000:  "-₹1.50L",
	}
	for in, want := range cases {
		if got := Compact(decimal.NewFromInt(in)); got != want {
			t.Fatalf("Compact(%d): got %s want %s", in, got, want)
		}
	}
}

func TestWords(t *testing.T) {
	cases := map[int64]string{
		0:          "Zero Rupees",
		100:        "One Hundred Rupees",
		-15:        "Minus Fifteen Rupees",
		1234567:    "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees",
		1200000000: "One Hundred Twenty Crore Rupees",
	}
	for in, want := range cases {
		if got := Words(decimal.NewFromInt(in)); got != want {
			t.Fatalf("Words(%d): got %q want %q", in, got, want)
		}
	}
}
