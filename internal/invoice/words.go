package invoice

import (
	"math"
	"strconv"
	"strings"
)

// Overflow is returned by ToWords for amounts wider than nine digits.
const Overflow = "Overflow"

var (
	onesWords = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tensWords = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
)

// ToWords spells a rupee amount in English with Indian grouping
// (crore, lakh, thousand, hundred). The amount is floored first.
func ToWords(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Overflow
	}
	n := math.Floor(amount)
	if n < 0 {
		w := ToWords(-n)
		if w == Overflow {
			return w
		}
		return "Minus " + w
	}
	if n >= 1e9 {
		return Overflow
	}

	padded := strconv.FormatInt(int64(n), 10)
	padded = strings.Repeat("0", 9-len(padded)) + padded

	var parts []string
	groups := []struct {
		digits string
		name   string
	}{
		{padded[0:2], "Crore"},
		{padded[2:4], "Lakh"},
		{padded[4:6], "Thousand"},
		{padded[6:7], "Hundred"},
	}
	for _, g := range groups {
		v, _ := strconv.Atoi(g.digits)
		if v == 0 {
			continue
		}
		parts = append(parts, belowHundred(v)+" "+g.name)
	}

	if rest, _ := strconv.Atoi(padded[7:9]); rest != 0 {
		if len(parts) > 0 {
			parts = append(parts, "and")
		}
		parts = append(parts, belowHundred(rest))
	}

	if len(parts) == 0 {
		return "Zero"
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func belowHundred(v int) string {
	if v < 20 {
		return onesWords[v]
	}
	if v%10 == 0 {
		return tensWords[v/10]
	}
	return tensWords[v/10] + " " + onesWords[v%10]
}
