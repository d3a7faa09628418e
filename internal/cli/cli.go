// Package cli implements the passcheck command line driver.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/vaultpass/passcheck-go/internal/config"
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/service"
)

const prompt = "Enter a password to check its strength: "

var ErrAuthDisabled = errors.New("AUTH_SECRET is not set")

// Run executes the CLI with args (without the program name).
func Run(args []string, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "token" {
		return runToken(args[1:], cfg, stdout, stderr)
	}
	return runCheck(args, cfg, stdin, stdout, stderr)
}

func runCheck(args []string, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("passcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	length := fs.Int("length", cfg.SuggestedLength, "length of the suggested password (at least 4)")
	seed := fs.Uint64("seed", 0, "seed for reproducible suggestions (0 uses a secure source)")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src := crypto.NewSecureSource()
	if *seed != 0 {
		src = crypto.NewSeededSource(*seed)
	}

	password, err := ReadPassword(stdin, stdout, prompt)
	if err != nil {
		return err
	}

	svc := service.NewCheckerService(src, *length, nil)
	report, err := svc.Check(model.CheckRequest{Password: password})
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return PrintReport(stdout, report)
}

// PrintReport writes a human-readable report.
func PrintReport(w io.Writer, report model.CheckResponse) error {
	p := &printer{w: w}

	p.printf("Password strength: %s\n", report.Strength)
	p.printf("Estimated time to crack via brute force: %s\n", report.CrackTime)
	p.printf("%s\n", report.Notice)

	if len(report.Feedback) == 0 {
		p.printf("Your password is strong! No improvements needed.\n")
		return p.err
	}

	p.printf("\nSuggestions to improve:\n")
	for _, suggestion := range report.Feedback {
		p.printf("- %s\n", suggestion)
	}
	if report.Suggestion != "" {
		p.printf("\nHere's a suggested stronger password: %s\n", report.Suggestion)
		p.printf("%s\n", report.SuggestionNote)
	}
	return p.err
}

func runToken(args []string, cfg config.Config, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("passcheck token", flag.ContinueOnError)
	fs.SetOutput(stderr)
	subject := fs.String("subject", "", "name of the API client")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !cfg.AuthEnabled() {
		return ErrAuthDisabled
	}

	token, err := crypto.GenerateToken(*subject, cfg.AuthSecret, cfg.TokenExpiry)
	if err != nil {
		return fmt.Errorf("issuing token: %w", err)
	}
	_, err = fmt.Fprintln(stdout, token)
	return err
}

// printer keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
