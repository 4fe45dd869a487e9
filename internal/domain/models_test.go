package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/randomtoy/pokedexd/internal/domain"
)

func TestNewSpeciesQuery(t *testing.T) {
	q, err := domain.NewSpeciesQuery("ChariZard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Name != "charizard" {
		t.Errorf("expected charizard, got %q", q.Name)
	}

	if _, err := domain.NewSpeciesQuery(""); err != domain.ErrInvalidName {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestNewSpeciesQuery_OnlyLowercases(t *testing.T) {
	q, err := domain.NewSpeciesQuery(" Mr. Mime ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Name != " mr. mime " {
		t.Errorf("expected name to be lowercased only, got %q", q.Name)
	}
}

func TestNewlineMode_Normalize(t *testing.T) {
	in := "Spits fire...\nforest fires\funintentionally.\r\nDone."

	if got := domain.NewlineSpace.Normalize(in); got != "Spits fire... forest fires unintentionally. Done." {
		t.Errorf("space mode: got %q", got)
	}
	if got := domain.NewlineStrip.Normalize(in); got != "Spits fire...forest firesunintentionally.Done." {
		t.Errorf("strip mode: got %q", got)
	}
}

func TestNewlineMode_Valid(t *testing.T) {
	if !domain.NewlineSpace.Valid() || !domain.NewlineStrip.Valid() {
		t.Error("expected built-in modes to be valid")
	}
	if domain.NewlineMode("remove").Valid() {
		t.Error("expected unknown mode to be invalid")
	}
}

func TestTranslationError_Is(t *testing.T) {
	err := fmt.Errorf("translate: %w", &domain.TranslationError{
		Kind:       domain.TranslationRejected,
		StatusCode: 429,
	})

	if !errors.Is(err, domain.ErrTranslationFailed) {
		t.Fatal("expected errors.Is to match ErrTranslationFailed")
	}

	var te *domain.TranslationError
	if !errors.As(err, &te) {
		t.Fatal("expected errors.As to find TranslationError")
	}
	if te.StatusCode != 429 {
		t.Errorf("expected status 429, got %d", te.StatusCode)
	}
	if te.Error() != "translation failed: rejected (status 429)" {
		t.Errorf("unexpected message: %s", te.Error())
	}
}
