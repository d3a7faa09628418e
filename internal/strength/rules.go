package strength

import (
	"strings"
	"unicode/utf8"
)

// Character classes shared by the classifier and the suggested-password generator.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SpecialChars   = `!@#$%^&*(),.?":{}|<>`

	MinLength = 8
)

// Rule is a single composition predicate with the advice shown when it is not met.
type Rule struct {
	Name   string
	Advice string
	Met    func(password string) bool
}

// Rules is the fixed rule set, in feedback order.
var Rules = []Rule{
	{
		Name:   "length",
		Advice: "Make the password at least 8 characters long.",
		Met:    func(p string) bool { return utf8.RuneCountInString(p) >= MinLength },
	},
	{
		Name:   "uppercase",
		Advice: "Add at least one uppercase letter (A-Z).",
		Met:    HasUppercase,
	},
	{
		Name:   "lowercase",
		Advice: "Add at least one lowercase letter (a-z).",
		Met:    HasLowercase,
	},
	{
		Name:   "digit",
		Advice: "Add at least one number (0-9).",
		Met:    HasDigit,
	},
	{
		Name:   "special",
		Advice: "Add at least one special character (e.g., !@#$%^&*).",
		Met:    HasSpecial,
	},
}

// HasUppercase reports whether p contains an ASCII uppercase letter.
func HasUppercase(p string) bool { return strings.ContainsAny(p, UppercaseChars) }

// HasLowercase reports whether p contains an ASCII lowercase letter.
func HasLowercase(p string) bool { return strings.ContainsAny(p, LowercaseChars) }

// HasDigit reports whether p contains an ASCII digit.
func HasDigit(p string) bool { return strings.ContainsAny(p, DigitChars) }

// HasSpecial reports whether p contains one of SpecialChars.
func HasSpecial(p string) bool { return strings.ContainsAny(p, SpecialChars) }
