package http

import "github.com/randomtoy/pokedexd/internal/domain"

// PokemonResponse is the JSON shape returned by GET /api/v1/pokemon/{name}.
type PokemonResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Habitat     string `json:"habitat"`
	IsLegendary bool   `json:"is_legendary"`
}

func toResponse(v domain.ResultView) PokemonResponse {
	return PokemonResponse{
		Name:        v.Name,
		Description: v.Description,
		Habitat:     v.Habitat,
		IsLegendary: v.IsLegendary,
	}
}

// Stable error codes exposed to API clients.
const (
	CodeInvalidName         = "INVALID_NAME"
	CodeNotFound            = "NOT_FOUND"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeInternal            = "INTERNAL"
)

type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}
