package common

import (
	"fmt"
	"strings"
)

// FormatMoney formats a float as a dollar amount with comma separators
// and two decimal places.
func FormatMoney(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	s := groupThousands(whole)
	if negative {
		return fmt.Sprintf("-$%s.%02d", s, cents)
	}
	return fmt.Sprintf("$%s.%02d", s, cents)
}

// FormatAmount formats a float as a whole-dollar amount with comma
// separators, the way deal sizes read in reports ("$5,000,000").
func FormatAmount(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	whole := int64(v + 0.5)

	s := groupThousands(whole)
	if negative {
		return "-$" + s
	}
	return "$" + s
}

func groupThousands(whole int64) string {
	s := fmt.Sprintf("%d", whole)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}
	return s
}
