package service

import (
	"errors"
	"testing"

	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

type countingObserver struct {
	checks    map[strength.Strength]int
	generated int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{checks: make(map[strength.Strength]int)}
}

func (o *countingObserver) ObserveCheck(s strength.Strength) { o.checks[s]++ }
func (o *countingObserver) ObserveGenerated()                { o.generated++ }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(crypto.NewSecureSource(), nil)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected length 12, got %d", resp.Length)
	}
	if len(resp.Password) != 12 {
		t.Errorf("expected password length 12, got %d", len(resp.Password))
	}
}

func TestGenerate_CustomLength(t *testing.T) {
	obs := newCountingObserver()
	svc := NewGeneratorService(crypto.NewSecureSource(), obs)
	resp, err := svc.Generate(model.GenerateRequest{Length: 32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	if got := strength.Classify(resp.Password).MetCriteria; got != 5 {
		t.Errorf("expected all 5 criteria met, got %d", got)
	}
	if obs.generated != 1 {
		t.Errorf("expected 1 generated observation, got %d", obs.generated)
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService(crypto.NewSecureSource(), nil)
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if !errors.Is(err, crypto.ErrSuggestedLengthTooShort) {
		t.Fatalf("expected ErrSuggestedLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService(crypto.NewSecureSource(), nil)
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if !errors.Is(err, ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}
