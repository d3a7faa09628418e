package service

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/vaultpass/passcheck-go/internal/cracktime"
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

const (
	// CrackTimeNotice accompanies every crack-time estimate.
	CrackTimeNotice = "(Note: This is a rough estimate assuming modern hardware and brute-force attack. Actual time varies.)"
	// SuggestionNote accompanies every suggested password.
	SuggestionNote = "Note: This is randomly generated. Use it as inspiration or modify it."

	// MaxPasswordLength bounds passwords accepted by the checker service.
	MaxPasswordLength = 1024
	// maxAnalysisRunes bounds the pattern matcher, which is superlinear in length.
	// Longer passwords are scored on their first maxAnalysisRunes characters.
	maxAnalysisRunes = 100
)

var ErrPasswordTooLong = errors.New("password must be at most 1024 characters")

// Observer receives counts of completed operations.
type Observer interface {
	ObserveCheck(s strength.Strength)
	ObserveGenerated()
}

// CheckerService runs the classifier and crack-time estimator and, when the
// password has any feedback, attaches a suggested replacement.
type CheckerService struct {
	src             crypto.Source
	suggestedLength int
	observer        Observer
}

// NewCheckerService creates a new CheckerService. observer may be nil.
func NewCheckerService(src crypto.Source, suggestedLength int, observer Observer) *CheckerService {
	return &CheckerService{
		src:             src,
		suggestedLength: suggestedLength,
		observer:        observer,
	}
}

// Check evaluates the password in req. The password itself is never retained.
func (s *CheckerService) Check(req model.CheckRequest) (model.CheckResponse, error) {
	if utf8.RuneCountInString(req.Password) > MaxPasswordLength {
		return model.CheckResponse{}, ErrPasswordTooLong
	}

	result := strength.Classify(req.Password)

	resp := model.CheckResponse{
		Strength:    string(result.Strength),
		MetCriteria: result.MetCriteria,
		Feedback:    result.Feedback,
		CrackTime:   cracktime.Estimate(req.Password),
		Notice:      CrackTimeNotice,
		Analysis:    analyze(req.Password),
	}

	if len(result.Feedback) > 0 {
		suggestion, err := crypto.GenerateSuggested(s.suggestedLength, s.src)
		if err != nil {
			return model.CheckResponse{}, fmt.Errorf("generating suggestion: %w", err)
		}
		resp.Suggestion = suggestion
		resp.SuggestionNote = SuggestionNote
		if s.observer != nil {
			s.observer.ObserveGenerated()
		}
	}

	if s.observer != nil {
		s.observer.ObserveCheck(result.Strength)
	}

	return resp, nil
}

// analyze runs zxcvbn for a pattern-aware score. Empty passwords and inputs the matcher
// panics on are skipped.
func analyze(password string) (a *model.Analysis) {
	if password == "" {
		return nil
	}
	password = truncateRunes(password, maxAnalysisRunes)
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("zxcvbn analysis failed", "panic", r)
			a = nil
		}
	}()

	m := zxcvbn.PasswordStrength(password, nil)
	return &model.Analysis{
		EntropyBits:      m.Entropy,
		Score:            m.Score,
		CrackTimeDisplay: m.CrackTimeDisplay,
	}
}

// truncateRunes returns the first n characters of s.
func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
