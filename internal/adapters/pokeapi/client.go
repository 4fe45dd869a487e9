package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/randomtoy/pokedexd/internal/domain"
)

const englishLanguage = "en"

// maxBodyBytes caps how much of a species payload is read.
const maxBodyBytes = 1 << 20

// Client implements ports.SpeciesFetcher against the PokeAPI species endpoint.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	timeout     time.Duration
	newlineMode domain.NewlineMode
	logger      *zap.Logger
}

func NewClient(httpClient *http.Client, baseURL string, timeout time.Duration, mode domain.NewlineMode, logger *zap.Logger) *Client {
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		timeout:     timeout,
		newlineMode: mode,
		logger:      logger.Named("pokeapi"),
	}
}

// namedResource is the {name, url} pair PokeAPI uses for every reference.
type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type flavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   namedResource `json:"language"`
}

// speciesResponse mirrors the subset of /pokemon-species/{name}/ we read.
// Pointers distinguish missing fields from zero values.
type speciesResponse struct {
	Name              *string           `json:"name"`
	Habitat           *namedResource    `json:"habitat"`
	IsLegendary       *bool             `json:"is_legendary"`
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries"`
}

func (c *Client) FetchSpecies(ctx context.Context, q domain.SpeciesQuery) (domain.SpeciesFacts, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqURL := fmt.Sprintf("%s/pokemon-species/%s/", c.baseURL, url.PathEscape(q.Name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.SpeciesFacts{}, fmt.Errorf("%w: build request: %w", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("species request failed", zap.String("species", q.Name), zap.Error(err))
		return domain.SpeciesFacts{}, fmt.Errorf("%w: http call: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.logger.Info("species not found", zap.String("species", q.Name))
		return domain.SpeciesFacts{}, fmt.Errorf("%w: %s", domain.ErrSpeciesNotFound, q.Name)
	default:
		c.logger.Warn("unexpected species status", zap.String("species", q.Name), zap.Int("status", resp.StatusCode))
		return domain.SpeciesFacts{}, fmt.Errorf("%w: upstream status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return domain.SpeciesFacts{}, fmt.Errorf("%w: read response: %w", domain.ErrUpstreamUnavailable, err)
	}
	if len(body) > maxBodyBytes {
		c.logger.Warn("species payload too large", zap.String("species", q.Name))
		return domain.SpeciesFacts{}, fmt.Errorf("%w: response exceeds %d bytes", domain.ErrUpstreamUnavailable, maxBodyBytes)
	}

	facts, err := c.parseSpecies(body)
	if err != nil {
		c.logger.Warn("unusable species payload", zap.String("species", q.Name), zap.Error(err))
		return domain.SpeciesFacts{}, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	c.logger.Debug("species fetched",
		zap.String("species", facts.CanonicalName),
		zap.String("habitat", facts.Habitat),
		zap.Bool("is_legendary", facts.IsLegendary),
	)
	return facts, nil
}

func (c *Client) parseSpecies(body []byte) (domain.SpeciesFacts, error) {
	var sr speciesResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return domain.SpeciesFacts{}, fmt.Errorf("decode response: %w", err)
	}

	switch {
	case sr.Name == nil:
		return domain.SpeciesFacts{}, errors.New("missing field: name")
	case sr.Habitat == nil:
		return domain.SpeciesFacts{}, errors.New("missing field: habitat")
	case sr.IsLegendary == nil:
		return domain.SpeciesFacts{}, errors.New("missing field: is_legendary")
	case sr.FlavorTextEntries == nil:
		return domain.SpeciesFacts{}, errors.New("missing field: flavor_text_entries")
	}

	description, ok := lastEnglishFlavorText(sr.FlavorTextEntries)
	if !ok {
		return domain.SpeciesFacts{}, errors.New("no english flavor text")
	}

	return domain.SpeciesFacts{
		CanonicalName:  *sr.Name,
		RawDescription: c.newlineMode.Normalize(description),
		Habitat:        sanitizeHabitat(sr.Habitat.Name),
		IsLegendary:    *sr.IsLegendary,
	}, nil
}

// lastEnglishFlavorText returns the last English entry in list order.
func lastEnglishFlavorText(entries []flavorTextEntry) (string, bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Language.Name == englishLanguage {
			return entries[i].FlavorText, true
		}
	}
	return "", false
}

var habitatCleaner = strings.NewReplacer(`\`, "", `"`, "")

func sanitizeHabitat(s string) string {
	return habitatCleaner.Replace(s)
}
