package model

// CheckRequest carries the password to evaluate.
type CheckRequest struct {
	Password string `json:"password"`
}

// CheckResponse is the full advisory report for one password.
type CheckResponse struct {
	Strength    string   `json:"strength"`
	MetCriteria int      `json:"met_criteria"`
	Feedback    []string `json:"feedback"`
	CrackTime   string   `json:"crack_time"`
	Notice      string   `json:"notice"`

	Suggestion     string `json:"suggestion,omitempty"`
	SuggestionNote string `json:"suggestion_note,omitempty"`

	Analysis *Analysis `json:"analysis,omitempty"`
}

// Analysis is a pattern-aware second opinion that does not affect Strength.
type Analysis struct {
	EntropyBits      float64 `json:"entropy_bits"`
	Score            int     `json:"score"`
	CrackTimeDisplay string  `json:"crack_time_display"`
}
