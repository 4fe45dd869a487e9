package domain

// TranslationStyle selects which translation engine rewrites a description.
type TranslationStyle int

const (
	// StyleArchaic is the Shakespeare engine.
	StyleArchaic TranslationStyle = iota
	// StyleSolemn is the Yoda engine.
	StyleSolemn
)

func (s TranslationStyle) String() string {
	switch s {
	case StyleSolemn:
		return "yoda"
	case StyleArchaic:
		return "shakespeare"
	default:
		return "unknown"
	}
}

const caveHabitat = "cave"

// SelectStyle picks the solemn style for cave dwellers and legendaries and the
// archaic style for everything else. The habitat match is exact.
func SelectStyle(f SpeciesFacts) TranslationStyle {
	if f.Habitat == caveHabitat || f.IsLegendary {
		return StyleSolemn
	}
	return StyleArchaic
}
