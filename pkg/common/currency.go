package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCurrency strips every occurrence of symbol from text and parses the
// leading number that remains. Text without a numeric prefix parses to 0,
// so "$" or "n/a" never fail a row. Anything after the prefix is ignored,
// which means "1,250.00" reads as 1.
func ParseCurrency(text, symbol string) float64 {
	if symbol != "" {
		text = strings.ReplaceAll(text, symbol, "")
	}
	num := numericPrefix(strings.TrimSpace(text))
	if num == "" {
		return 0
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// numericPrefix returns the longest leading [+-]digits[.digits][e[+-]digits]
// run of s, normalised so decimal.NewFromString accepts it.
func numericPrefix(s string) string {
	i := 0
	sign := ""
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = "-"
		}
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[start:i]

	fracPart := ""
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracPart = s[i+1 : j]
		i = j
	}

	if intPart == "" && fracPart == "" {
		return ""
	}
	if intPart == "" {
		intPart = "0"
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(intPart)
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		expSign := ""
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			expSign = s[j : j+1]
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			b.WriteByte('e')
			b.WriteString(expSign)
			b.WriteString(s[j:k])
		}
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
