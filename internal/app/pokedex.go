package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/randomtoy/pokedexd/internal/domain"
	"github.com/randomtoy/pokedexd/internal/ports"
)

// PokedexService resolves species facts and, on request, rewrites their
// description through a translator. Translation failures never fail a request.
type PokedexService struct {
	species    ports.SpeciesFetcher
	translator ports.Translator
	logger     *zap.Logger
}

func NewPokedexService(sf ports.SpeciesFetcher, tr ports.Translator, logger *zap.Logger) *PokedexService {
	return &PokedexService{
		species:    sf,
		translator: tr,
		logger:     logger.Named("pokedex"),
	}
}

func (s *PokedexService) Resolve(ctx context.Context, q domain.SpeciesQuery, wantTranslation bool) (domain.ResultView, error) {
	facts, err := s.species.FetchSpecies(ctx, q)
	if err != nil {
		if errors.Is(err, domain.ErrSpeciesNotFound) || errors.Is(err, domain.ErrUpstreamUnavailable) {
			return domain.ResultView{}, fmt.Errorf("fetch species: %w", err)
		}
		return domain.ResultView{}, fmt.Errorf("fetch species: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	view := domain.ResultView{
		Name:        facts.CanonicalName,
		Description: facts.RawDescription,
		Habitat:     facts.Habitat,
		IsLegendary: facts.IsLegendary,
	}
	if !wantTranslation {
		return view, nil
	}

	view.Description = s.translate(ctx, facts)
	return view, nil
}

// translate returns the translated description, or the raw one if the
// translator fails for any reason.
func (s *PokedexService) translate(ctx context.Context, facts domain.SpeciesFacts) string {
	style := domain.SelectStyle(facts)

	start := time.Now()
	translated, err := s.translator.Translate(ctx, style, facts.RawDescription)
	latency := time.Since(start)

	if err != nil {
		s.logger.Warn("translation failed, using original description",
			zap.String("species", facts.CanonicalName),
			zap.Stringer("style", style),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
		return facts.RawDescription
	}

	s.logger.Debug("description translated",
		zap.String("species", facts.CanonicalName),
		zap.Stringer("style", style),
		zap.Duration("latency", latency),
	)
	return translated
}
