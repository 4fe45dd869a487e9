package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/randomtoy/pokedexd/internal/domain"
	"github.com/randomtoy/pokedexd/internal/logging"
)

type Config struct {
	HTTPAddr              string
	LogLevel              zapcore.Level
	LogFile               string
	PokeAPIBaseURL        string
	FunTranslationsURL    string
	FunTranslationsAPIKey string
	SpeciesTimeout        time.Duration
	TranslationTimeout    time.Duration
	DescriptionNewlines   domain.NewlineMode
}

// Options points Load at optional files. Missing files are skipped.
type Options struct {
	ConfigFile string
	EnvFile    string
}

// fileConfig is the on-disk shape shared by the TOML and YAML formats.
type fileConfig struct {
	HTTPAddr              string `toml:"http_addr" yaml:"http_addr"`
	LogLevel              string `toml:"log_level" yaml:"log_level"`
	LogFile               string `toml:"log_file" yaml:"log_file"`
	PokeAPIBaseURL        string `toml:"pokeapi_base_url" yaml:"pokeapi_base_url"`
	FunTranslationsURL    string `toml:"funtranslations_base_url" yaml:"funtranslations_base_url"`
	FunTranslationsAPIKey string `toml:"funtranslations_api_key" yaml:"funtranslations_api_key"`
	SpeciesTimeout        string `toml:"species_timeout" yaml:"species_timeout"`
	TranslationTimeout    string `toml:"translation_timeout" yaml:"translation_timeout"`
	DescriptionNewlines   string `toml:"description_newlines" yaml:"description_newlines"`
}

func defaults() fileConfig {
	return fileConfig{
		HTTPAddr:            ":8080",
		LogLevel:            "info",
		PokeAPIBaseURL:      "https://pokeapi.co/api/v2",
		FunTranslationsURL:  "https://api.funtranslations.com",
		SpeciesTimeout:      "5s",
		TranslationTimeout:  "3s",
		DescriptionNewlines: string(domain.NewlineSpace),
	}
}

// Load layers defaults, the config file and the environment (in that order of
// precedence, lowest first) and validates the result.
func Load(opts Options) (Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
		}
	}

	raw := defaults()
	if opts.ConfigFile != "" {
		if err := readFile(opts.ConfigFile, &raw); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&raw)

	c, err := raw.resolve()
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

func readFile(path string, into *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, into)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, into)
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(c *fileConfig) {
	c.HTTPAddr = envOr("HTTP_ADDR", c.HTTPAddr)
	c.LogLevel = envOr("LOG_LEVEL", c.LogLevel)
	c.LogFile = envOr("LOG_FILE", c.LogFile)
	c.PokeAPIBaseURL = envOr("POKEAPI_BASE_URL", c.PokeAPIBaseURL)
	c.FunTranslationsURL = envOr("FUNTRANSLATIONS_BASE_URL", c.FunTranslationsURL)
	c.FunTranslationsAPIKey = envOr("FUNTRANSLATIONS_API_KEY", c.FunTranslationsAPIKey)
	c.SpeciesTimeout = envOr("SPECIES_TIMEOUT", c.SpeciesTimeout)
	c.TranslationTimeout = envOr("TRANSLATION_TIMEOUT", c.TranslationTimeout)
	c.DescriptionNewlines = envOr("DESCRIPTION_NEWLINES", c.DescriptionNewlines)
}

func (f fileConfig) resolve() (Config, error) {
	level, err := logging.ParseLevel(f.LogLevel)
	if err != nil {
		return Config{}, err
	}

	speciesTimeout, err := time.ParseDuration(f.SpeciesTimeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SPECIES_TIMEOUT %q: %w", f.SpeciesTimeout, err)
	}
	translationTimeout, err := time.ParseDuration(f.TranslationTimeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid TRANSLATION_TIMEOUT %q: %w", f.TranslationTimeout, err)
	}

	return Config{
		HTTPAddr:              f.HTTPAddr,
		LogLevel:              level,
		LogFile:               f.LogFile,
		PokeAPIBaseURL:        f.PokeAPIBaseURL,
		FunTranslationsURL:    f.FunTranslationsURL,
		FunTranslationsAPIKey: f.FunTranslationsAPIKey,
		SpeciesTimeout:        speciesTimeout,
		TranslationTimeout:    translationTimeout,
		DescriptionNewlines:   domain.NewlineMode(strings.ToLower(f.DescriptionNewlines)),
	}, nil
}

func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	if err := validateBaseURL("POKEAPI_BASE_URL", c.PokeAPIBaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("FUNTRANSLATIONS_BASE_URL", c.FunTranslationsURL); err != nil {
		return err
	}
	if c.SpeciesTimeout <= 0 {
		return fmt.Errorf("SPECIES_TIMEOUT must be positive")
	}
	if c.TranslationTimeout <= 0 {
		return fmt.Errorf("TRANSLATION_TIMEOUT must be positive")
	}
	if !c.DescriptionNewlines.Valid() {
		return fmt.Errorf("DESCRIPTION_NEWLINES must be %q or %q, got %q",
			domain.NewlineSpace, domain.NewlineStrip, c.DescriptionNewlines)
	}
	return nil
}

func validateBaseURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", key, raw)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
