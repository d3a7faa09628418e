package crypto

import (
	"errors"

	"github.com/vaultpass/passcheck-go/internal/strength"
)

const (
	// DefaultSuggestedLength is the length of a suggested password when none is requested.
	DefaultSuggestedLength = 12
	// MinSuggestedLength leaves room for one character of each required class.
	MinSuggestedLength = 4
)

var ErrSuggestedLengthTooShort = errors.New("suggested password length must be at least 4")

// requiredSets holds one entry per class that must appear in a suggestion.
var requiredSets = []string{
	strength.LowercaseChars,
	strength.UppercaseChars,
	strength.DigitChars,
	strength.SpecialChars,
}

var pool = strength.LowercaseChars + strength.UppercaseChars + strength.DigitChars + strength.SpecialChars

// GenerateSuggested creates a random password of the given length that satisfies every
// composition rule. The result only contains characters from the four rule classes.
func GenerateSuggested(length int, src Source) (string, error) {
	if length < MinSuggestedLength {
		return "", ErrSuggestedLengthTooShort
	}

	result := make([]byte, length)

	// Guarantee at least one character from each class.
	for i, charset := range requiredSets {
		result[i] = randChar(src, charset)
	}

	// Fill the remaining positions from the full pool.
	for i := len(requiredSets); i < length; i++ {
		result[i] = randChar(src, pool)
	}

	shuffle(src, result)

	return string(result), nil
}

// randChar picks a character from an ASCII charset.
func randChar(src Source, charset string) byte {
	return charset[src.IntN(len(charset))]
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(src Source, data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
