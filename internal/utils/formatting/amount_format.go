package formatting

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount for entry descriptions and
// diagnostics using register conventions: dot thousand separators and a
// comma decimal mark.
// Example: -1234567.5 returns "-1.234.567,5".
func FormatAmount(amount decimal.Decimal) string {
	s := amount.String()

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}
