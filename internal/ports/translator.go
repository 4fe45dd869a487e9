package ports

import (
	"context"

	"github.com/randomtoy/pokedexd/internal/domain"
)

// Translator rewrites text in the given style. Failures are reported as
// *domain.TranslationError.
type Translator interface {
	Translate(ctx context.Context, style domain.TranslationStyle, text string) (string, error)
}
