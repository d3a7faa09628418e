package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passcheck-go/internal/config"
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/service"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

func testConfig() config.Config {
	return config.Config{SuggestedLength: 12, TokenExpiry: time.Hour, RateLimitRPS: 1, RateLimitBurst: 1}
}

func TestRunCheckPrintsReport(t *testing.T) {
	var out, errOut bytes.Buffer
	err := Run([]string{"-seed", "3"}, testConfig(), strings.NewReader("abcdefgh\n"), &out, &errOut)
	require.NoError(t, err)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, prompt))
	assert.Contains(t, got, "Password strength: Weak\n")
	assert.Contains(t, got, "Estimated time to crack via brute force: 20.88 seconds\n")
	assert.Contains(t, got, service.CrackTimeNotice)
	assert.Contains(t, got, "\nSuggestions to improve:\n")
	assert.Contains(t, got, "- "+strength.LeetspeakSuggestion+"\n")
	assert.Contains(t, got, "Here's a suggested stronger password: ")
	assert.Contains(t, got, service.SuggestionNote)
	assert.Empty(t, errOut.String())
}

func TestRunCheckJSON(t *testing.T) {
	var out bytes.Buffer
	err := Run([]string{"-json", "-length", "20"}, testConfig(), strings.NewReader("Abcdef1!"), &out, &bytes.Buffer{})
	require.NoError(t, err)

	report := strings.TrimPrefix(out.String(), prompt)
	var resp model.CheckResponse
	require.NoError(t, json.Unmarshal([]byte(report), &resp))
	assert.Equal(t, "Strong", resp.Strength)
	assert.Len(t, resp.Suggestion, 20)
}

func TestRunCheckSeededIsReproducible(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		require.NoError(t, Run([]string{"-seed", "99"}, testConfig(), strings.NewReader("x\n"), &out, &bytes.Buffer{}))
		return out.String()
	}
	assert.Equal(t, run(), run())
}

func TestRunCheckInvalidLength(t *testing.T) {
	err := Run([]string{"-length", "3"}, testConfig(), strings.NewReader("x\n"), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, crypto.ErrSuggestedLengthTooShort)
}

func TestRunCheckBadFlag(t *testing.T) {
	var errOut bytes.Buffer
	err := Run([]string{"-nope"}, testConfig(), strings.NewReader(""), &bytes.Buffer{}, &errOut)
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "flag provided but not defined")
}

func TestPrintReportWithoutFeedback(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintReport(&out, model.CheckResponse{
		Strength:  "Strong",
		CrackTime: "5.00 years",
		Notice:    service.CrackTimeNotice,
	}))

	assert.Contains(t, out.String(), "Your password is strong! No improvements needed.\n")
	assert.NotContains(t, out.String(), "Suggestions to improve")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintReportWriteError(t *testing.T) {
	err := PrintReport(failingWriter{}, model.CheckResponse{Strength: "Weak"})
	assert.EqualError(t, err, "closed")
}

func TestRunToken(t *testing.T) {
	cfg := testConfig()
	cfg.AuthSecret = strings.Repeat("k", 32)

	var out bytes.Buffer
	require.NoError(t, Run([]string{"token", "-subject", "ci"}, cfg, nil, &out, &bytes.Buffer{}))

	claims, err := crypto.ValidateToken(strings.TrimSpace(out.String()), cfg.AuthSecret)
	require.NoError(t, err)
	assert.Equal(t, "ci", claims.Client)
}

func TestRunTokenErrors(t *testing.T) {
	err := Run([]string{"token", "-subject", "ci"}, testConfig(), nil, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrAuthDisabled)

	cfg := testConfig()
	cfg.AuthSecret = strings.Repeat("k", 32)
	err = Run([]string{"token"}, cfg, nil, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, crypto.ErrEmptySubject)
}

func TestReadPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "line", input: "secret\n", want: "secret"},
		{name: "crlf", input: "secret\r\n", want: "secret"},
		{name: "no newline", input: "secret", want: "secret"},
		{name: "empty stream", input: "", want: ""},
		{name: "keeps spaces", input: " a b \n", want: " a b "},
		{name: "first line only", input: "one\ntwo\n", want: "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadPassword(strings.NewReader(tt.input), &out, "> ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "> ", out.String())
		})
	}
}

func TestReadPasswordTerminal(t *testing.T) {
	origRead, origIsTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origIsTerm })

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("hidden"), nil }

	var out bytes.Buffer
	got, err := ReadPassword(os.Stdin, &out, "pw: ")
	require.NoError(t, err)
	assert.Equal(t, "hidden", got)
	assert.Equal(t, "pw: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("tty gone") }
	_, err = ReadPassword(os.Stdin, &out, "pw: ")
	assert.ErrorContains(t, err, "tty gone")
}
