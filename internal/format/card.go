// Package format normalizes raw checkout keystrokes into display strings.
// Formatters are pure and idempotent: feeding a formatted value back in
// returns it unchanged.
package format

import "strings"

// maxCardDigits caps input at the visa/mastercard PAN length.
const maxCardDigits = 16

// CardNumber normalizes raw card input into groups of four digits
// separated by single spaces. Non-digits are stripped and input beyond
// the scheme length is dropped.
func CardNumber(raw string) string {
	digits := Digits(raw)
	if len(digits) > maxCardDigits {
		digits = digits[:maxCardDigits]
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/4)
	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// Digits strips everything but ASCII digits.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

// IsDigits reports whether s is non-empty and entirely ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
