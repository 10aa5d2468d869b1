package validation

// PAN lengths accepted before the checksum is even considered.
const (
	minPANLength = 13
	maxPANLength = 19
)

// luhnValid runs the mod-10 checksum over a digits-only card number:
// from the rightmost digit, every second digit is doubled (minus 9 when
// the double exceeds 9) and the total must divide by 10.
func luhnValid(digits string) bool {
	if l := len(digits); l < minPANLength || l > maxPANLength {
		return false
	}

	var sum int
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
