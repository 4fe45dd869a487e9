package ports

import (
	"context"

	"github.com/randomtoy/pokedexd/internal/domain"
)

// SpeciesFetcher resolves a species name to its normalized facts.
// Implementations return domain.ErrSpeciesNotFound or
// domain.ErrUpstreamUnavailable (possibly wrapped).
type SpeciesFetcher interface {
	FetchSpecies(ctx context.Context, q domain.SpeciesQuery) (domain.SpeciesFacts, error)
}
