package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/pokedexd/internal/domain"
)

const bulbasaurSpecies = `{
  "name": "bulbasaur",
  "is_legendary": false,
  "habitat": {"name": "grassland", "url": "https://pokeapi.co/api/v2/pokemon-habitat/3/"},
  "flavor_text_entries": [
    {"flavor_text": "A strange seed was\nplanted on its\nback at birth.", "language": {"name": "en", "url": ""}}
  ]
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		lookupTranslated = false
		configFile = ""
		envFile = ".env"
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func fakeUpstreams(t *testing.T) {
	t.Helper()

	species := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon-species/bulbasaur/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(bulbasaurSpecies))
	}))
	t.Cleanup(species.Close)

	translations := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(translations.Close)

	t.Setenv("POKEAPI_BASE_URL", species.URL)
	t.Setenv("FUNTRANSLATIONS_BASE_URL", translations.URL)
	t.Setenv("LOG_LEVEL", "error")
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "pokedexd version test-version-1.0.0")
}

func TestLookupCmd_PrintsResult(t *testing.T) {
	fakeUpstreams(t)

	out, err := execute(t, "lookup", "Bulbasaur", "--env-file", "")
	require.NoError(t, err)

	var view domain.ResultView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, domain.ResultView{
		Name:        "bulbasaur",
		Description: "A strange seed was planted on its back at birth.",
		Habitat:     "grassland",
		IsLegendary: false,
	}, view)
}

func TestLookupCmd_TranslatedFallsBack(t *testing.T) {
	fakeUpstreams(t)

	out, err := execute(t, "lookup", "bulbasaur", "--translated", "--env-file", "")
	require.NoError(t, err)

	var view domain.ResultView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "A strange seed was planted on its back at birth.", view.Description)
}

func TestLookupCmd_StdoutHoldsOnlyJSON(t *testing.T) {
	fakeUpstreams(t)
	t.Setenv("LOG_LEVEL", "info")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	t.Cleanup(func() {
		os.Stdout = stdout
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		lookupTranslated = false
		envFile = ".env"
	})

	rootCmd.SetOut(nil)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"lookup", "bulbasaur", "--translated", "--env-file", ""})
	runErr := rootCmd.Execute()

	os.Stdout = stdout
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, runErr)

	var view domain.ResultView
	require.NoError(t, json.Unmarshal(out, &view), string(out))
	assert.Equal(t, "A strange seed was planted on its back at birth.", view.Description)
}

func TestLookupCmd_NotFound(t *testing.T) {
	fakeUpstreams(t)

	_, err := execute(t, "lookup", "missingno", "--env-file", "")
	assert.EqualError(t, err, `species "missingno" not found`)
}

func TestLookupCmd_RequiresName(t *testing.T) {
	_, err := execute(t, "lookup")
	assert.Error(t, err)
}
