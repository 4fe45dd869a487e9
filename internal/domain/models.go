package domain

import "strings"

// SpeciesQuery identifies the species a request is about.
type SpeciesQuery struct {
	Name string
}

// NewSpeciesQuery lowercases raw and applies no other transformation.
// Empty names are rejected.
func NewSpeciesQuery(raw string) (SpeciesQuery, error) {
	name := strings.ToLower(raw)
	if name == "" {
		return SpeciesQuery{}, ErrInvalidName
	}
	return SpeciesQuery{Name: name}, nil
}

// SpeciesFacts is the normalized record extracted from the species service.
type SpeciesFacts struct {
	CanonicalName  string
	RawDescription string
	Habitat        string
	IsLegendary    bool
}

// ResultView is what callers of the pokedex get back.
type ResultView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Habitat     string `json:"habitat"`
	IsLegendary bool   `json:"is_legendary"`
}

// NewlineMode controls how line breaks inside flavor text are normalized.
type NewlineMode string

const (
	NewlineSpace NewlineMode = "space"
	NewlineStrip NewlineMode = "strip"
)

// lineBreaks covers everything the species service uses to wrap flavor text.
var lineBreaks = []string{"\r\n", "\n", "\r", "\f"}

// Normalize applies the mode to s.
func (m NewlineMode) Normalize(s string) string {
	repl := " "
	if m == NewlineStrip {
		repl = ""
	}
	pairs := make([]string, 0, len(lineBreaks)*2)
	for _, lb := range lineBreaks {
		pairs = append(pairs, lb, repl)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Valid reports whether m is a known mode.
func (m NewlineMode) Valid() bool {
	return m == NewlineSpace || m == NewlineStrip
}
