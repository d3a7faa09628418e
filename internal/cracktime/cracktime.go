// Package cracktime estimates how long an exhaustive brute-force attack would take
// against a password.
//
// The model is a theoretical upper bound: it assumes the attacker knows which
// character classes are used and tries every combination at a fixed guess rate.
// Dictionary attacks, rate limiting and hashing cost are ignored, so results must
// not be presented as a real-world prediction.
package cracktime

import (
	"math"
	"math/big"
	"strconv"
	"unicode/utf8"

	"github.com/vaultpass/passcheck-go/internal/strength"
)

// GuessesPerSecond is the adversary's fixed guess rate.
const GuessesPerSecond = 10_000_000_000

const (
	// Empty is returned for a zero-length password.
	Empty = "Instantly (empty password)"

	lowercaseSize = 26
	uppercaseSize = 26
	digitSize     = 10
	// fallbackSize is used when no known class is present.
	fallbackSize = 26

	secondsPerYear = 31536000
)

var specialSize = utf8.RuneCountInString(strength.SpecialChars)

// CharsetSize sums the sizes of the character classes present anywhere in password.
func CharsetSize(password string) int {
	size := 0
	if strength.HasLowercase(password) {
		size += lowercaseSize
	}
	if strength.HasUppercase(password) {
		size += uppercaseSize
	}
	if strength.HasDigit(password) {
		size += digitSize
	}
	if strength.HasSpecial(password) {
		size += specialSize
	}
	if size == 0 {
		size = fallbackSize
	}
	return size
}

// SearchSpace returns CharsetSize(password) raised to the password length in characters.
func SearchSpace(password string) *big.Int {
	base := big.NewInt(int64(CharsetSize(password)))
	exp := big.NewInt(int64(utf8.RuneCountInString(password)))
	return new(big.Int).Exp(base, exp, nil)
}

// Seconds returns the estimated time to exhaust the search space, as an exact ratio.
func Seconds(password string) *big.Rat {
	return new(big.Rat).SetFrac(SearchSpace(password), big.NewInt(GuessesPerSecond))
}

// Estimate returns a human-readable brute-force duration for password.
func Estimate(password string) string {
	if password == "" {
		return Empty
	}

	secs := Seconds(password)
	f, _ := secs.Float64()
	if math.IsInf(f, 0) {
		return formatHuge(secs)
	}
	return FormatSeconds(f)
}

type unit struct {
	limit   float64
	divisor float64
	label   string
}

// units is evaluated in order; the first entry whose limit exceeds the value wins.
var units = []unit{
	{limit: 60, divisor: 1, label: "seconds"},
	{limit: 3600, divisor: 60, label: "minutes"},
	{limit: 86400, divisor: 3600, label: "hours"},
	{limit: secondsPerYear, divisor: 86400, label: "days"},
	{limit: math.Inf(1), divisor: secondsPerYear, label: "years"},
}

// FormatSeconds renders a duration in seconds using the largest fitting unit
// with two decimal places.
func FormatSeconds(seconds float64) string {
	if seconds < 1 {
		return "Less than 1 second"
	}
	for i, u := range units {
		if seconds < u.limit || i == len(units)-1 {
			return strconv.FormatFloat(seconds/u.divisor, 'f', 2, 64) + " " + u.label
		}
	}
	return ""
}

// formatHuge renders values beyond float64 range in years.
func formatHuge(seconds *big.Rat) string {
	years := new(big.Rat).Quo(seconds, big.NewRat(secondsPerYear, 1))
	return years.FloatString(2) + " years"
}
