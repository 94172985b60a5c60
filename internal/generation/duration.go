package generation

import "strings"

// ParseDays converts a free-text time commitment ("2 weeks", "1 month",
// "10 days", "5") into a day count. It is the single time-to-days policy:
// both generation sizing and the is-fully-generated check go through it.
//
// The first run of decimal digits is taken as the quantity; unit keywords
// are matched in precedence order month > week > year > day. A bare number
// with no unit is returned verbatim. Anything else parses to 0. The
// function is total and never fails.
func ParseDays(text string) int {
	lower := strings.ToLower(text)

	qty := firstNumber(lower)

	switch {
	case strings.Contains(lower, "month"):
		return qty * 30
	case strings.Contains(lower, "week"):
		return qty * 7
	case strings.Contains(lower, "year"):
		return qty * 365
	case strings.Contains(lower, "day"):
		return qty
	case qty > 0:
		return qty
	default:
		return 0
	}
}

// maxQuantity caps the parsed quantity so unit multiplication cannot
// overflow. Anything past it is an absurd request anyway.
const maxQuantity = 100000

// firstNumber extracts the first run of decimal digits as an integer,
// or 0 if none is found. Accumulation saturates at maxQuantity so the
// result is always non-negative.
func firstNumber(s string) int {
	n := 0
	found := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			found = true
			if n < maxQuantity {
				n = n*10 + int(c-'0')
				if n > maxQuantity {
					n = maxQuantity
				}
			}
			continue
		}
		if found {
			break
		}
	}
	if !found {
		return 0
	}
	return n
}
