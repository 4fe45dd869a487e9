package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randomtoy/pokedexd/internal/adapters/pokeapi"
	"github.com/randomtoy/pokedexd/internal/adapters/translation/funtranslations"
	"github.com/randomtoy/pokedexd/internal/app"
	"github.com/randomtoy/pokedexd/internal/config"
	"github.com/randomtoy/pokedexd/internal/logging"
)

// Version information (set via -ldflags during build)
var version = "dev"

var (
	configFile string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "pokedexd",
	Short: "Species lookup service with optional description translation",
	Long: `pokedexd serves species facts from PokeAPI over HTTP and can rewrite
their descriptions through the FunTranslations engines.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional TOML or YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")
}

// runtime holds everything a command needs once config is loaded.
type runtime struct {
	cfg     config.Config
	logger  *zap.Logger
	service *app.PokedexService
}

func setup() (*runtime, error) {
	cfg, err := config.Load(config.Options{ConfigFile: configFile, EnvFile: envFile})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	// One client for both upstreams; per-call timeouts are applied by the adapters.
	httpClient := &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}

	species := pokeapi.NewClient(httpClient, cfg.PokeAPIBaseURL, cfg.SpeciesTimeout, cfg.DescriptionNewlines, logger)
	translator := funtranslations.NewClient(httpClient, cfg.FunTranslationsURL, cfg.FunTranslationsAPIKey, cfg.TranslationTimeout, logger)

	return &runtime{
		cfg:     cfg,
		logger:  logger,
		service: app.NewPokedexService(species, translator, logger),
	}, nil
}
