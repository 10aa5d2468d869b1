package format

import "strconv"

const expirySeparator = " / "

// CardExpiry normalizes raw expiry input into "MM / YY". The separator
// appears once a third digit exists, so deleting back past it behaves
// naturally in a form field.
func CardExpiry(raw string) string {
	digits := Digits(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + expirySeparator + digits[2:]
}

// ParseExpiry parses a formatted expiry ("MM / YY" or "MMYY") into a
// month and four-digit year. Two-digit years land in the 2000s.
func ParseExpiry(s string) (month, year int, ok bool) {
	digits := Digits(s)
	if len(digits) != 4 {
		return 0, 0, false
	}
	month, _ = strconv.Atoi(digits[:2])
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	yy, _ := strconv.Atoi(digits[2:])
	return month, 2000 + yy, true
}
