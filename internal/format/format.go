package format

import "fmt"

// USD formats an amount held in cents.
// Example: USD(12999) => "$129.99"
func USD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	major := cents / 100
	minor := cents % 100
	out := "$" + thousandSep(major) + fmt.Sprintf(".%02d", minor)
	if neg {
		return "-" + out
	}
	return out
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	return out
}
