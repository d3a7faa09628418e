package service

import (
	"errors"

	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/model"
)

// MaxGenerateLength bounds suggestions requested over the API.
const MaxGenerateLength = 128

var ErrLengthTooLong = errors.New("password length must be at most 128")

// GeneratorService handles suggested-password generation.
type GeneratorService struct {
	src      crypto.Source
	observer Observer
}

// NewGeneratorService creates a new GeneratorService. observer may be nil.
func NewGeneratorService(src crypto.Source, observer Observer) *GeneratorService {
	return &GeneratorService{src: src, observer: observer}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = crypto.DefaultSuggestedLength
	}
	if length > MaxGenerateLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password, err := crypto.GenerateSuggested(length, s.src)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	if s.observer != nil {
		s.observer.ObserveGenerated()
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}
