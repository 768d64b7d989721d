// Package luhn computes and verifies Luhn (mod 10) check digits.
//
// Weighting is anchored at the leftmost digit: position 0 keeps its value,
// position 1 is doubled, and so on. Doubled values above 9 have 9
// subtracted. For the fixed odd widths used by device identifiers this is
// the same weighting as the usual right-anchored formulation.
package luhn

// CheckDigit returns the digit that, appended to digits, makes the whole
// sequence valid.
func CheckDigit(digits []int) int {
	return (10 - weightedSum(digits)%10) % 10
}

// Valid reports whether the weighted sum of the full sequence, check digit
// included, is a multiple of 10.
func Valid(digits []int) bool {
	return weightedSum(digits)%10 == 0
}

func weightedSum(digits []int) int {
	sum := 0
	for i, d := range digits {
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum
}

// Digits extracts the decimal digits of s in order, dropping every other
// character.
func Digits(s string) []int {
	digits := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
		}
	}
	return digits
}

// VerifyString filters s to its digits and validates them. It returns
// false when the filtered sequence is not exactly width digits long.
func VerifyString(s string, width int) bool {
	digits := Digits(s)
	if len(digits) != width {
		return false
	}
	return Valid(digits)
}

// CheckDigitString computes the check digit over the digits of s.
func CheckDigitString(s string) int {
	return CheckDigit(Digits(s))
}
