// Package strength classifies passwords against a fixed set of composition rules.
//
// The rating is a coarse count of satisfied rules, not an entropy score:
// two or fewer rules is Weak, three is Medium, four or more is Strong.
package strength

// Strength is the overall rating of a password.
type Strength string

const (
	Weak   Strength = "Weak"
	Medium Strength = "Medium"
	Strong Strength = "Strong"
)

// LeetspeakSuggestion is appended to every result regardless of the rating.
const LeetspeakSuggestion = "Consider using leetspeak (e.g., replace 'a' with '4', 'e' with '3', 'o' with '0') to make your password more complex and harder to guess."

// Result is the outcome of Classify.
type Result struct {
	Strength    Strength
	Feedback    []string
	MetCriteria int
}

// Classify evaluates password against Rules. Any string is accepted, including the empty one.
func Classify(password string) Result {
	res := Result{Feedback: make([]string, 0, len(Rules)+1)}

	for _, rule := range Rules {
		if rule.Met(password) {
			res.MetCriteria++
			continue
		}
		res.Feedback = append(res.Feedback, rule.Advice)
	}
	res.Feedback = append(res.Feedback, LeetspeakSuggestion)
	res.Strength = rate(res.MetCriteria)

	return res
}

func rate(met int) Strength {
	switch {
	case met <= 2:
		return Weak
	case met == 3:
		return Medium
	default:
		return Strong
	}
}
