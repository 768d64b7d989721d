package luhn

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit_KnownPrefix(t *testing.T) {
	// Odd positions 5 3 5 9 2 4 6 weigh 32, even positions weigh 17.
	assert.Equal(t, 1, CheckDigitString("35332509123456"))
	assert.True(t, VerifyString("353325091234561", 15))
	assert.False(t, VerifyString("353325091234567", 15))
}

func TestValid_KnownVector(t *testing.T) {
	assert.True(t, VerifyString("490154203237518", 15))
	assert.True(t, Valid(Digits("490154203237518")))
}

func TestRoundTrip(t *testing.T) {
	prefixes := []string{
		"00000000000000",
		"99999999999999",
		"35332509123456",
		"86794003000001",
		"35904211987654",
		"12345678901234",
	}
	for _, p := range prefixes {
		t.Run(p, func(t *testing.T) {
			full := p + strconv.Itoa(CheckDigitString(p))
			require.Len(t, full, 15)
			assert.True(t, VerifyString(full, 15))
		})
	}
}

func TestCheckDigit_Unique(t *testing.T) {
	prefix := "35391110246813"
	check := CheckDigitString(prefix)

	valid := 0
	for d := 0; d <= 9; d++ {
		full := prefix + strconv.Itoa(d)
		if VerifyString(full, 15) {
			valid++
			assert.Equal(t, check, d)
		}
	}
	assert.Equal(t, 1, valid)
}

func TestRoundTrip_Exhaustive(t *testing.T) {
	// Every serial under a fixed TAC prefix with a leading-digit sweep.
	for lead := 0; lead <= 9; lead++ {
		for serial := 0; serial < 100000; serial += 7919 {
			p := "3545550" + strconv.Itoa(lead) + leftPad(serial, 6)
			full := p + strconv.Itoa(CheckDigitString(p))
			if !VerifyString(full, 15) {
				t.Fatalf("round trip failed for %s", full)
			}
		}
	}
}

func TestVerifyString_WrongWidth(t *testing.T) {
	assert.False(t, VerifyString("49015420323751", 15))
	assert.False(t, VerifyString("4901542032375180", 15))
	assert.False(t, VerifyString("", 15))
}

func TestVerifyString_FiltersNonDigits(t *testing.T) {
	// Separators are dropped before the width check.
	assert.True(t, VerifyString("49-015420-323751-8", 15))
	// A letter in place of a digit shortens the filtered sequence.
	assert.False(t, VerifyString("49015420323751X", 15))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Digits("a1-2 3"))
	assert.Empty(t, Digits("abc"))
}

func TestCheckDigit_Empty(t *testing.T) {
	assert.Equal(t, 0, CheckDigit(nil))
	assert.True(t, Valid(nil))
}

func leftPad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
