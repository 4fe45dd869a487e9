package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randomtoy/pokedexd/internal/domain"
)

var lookupTranslated bool

var lookupCmd = &cobra.Command{
	Use:   "lookup [name]",
	Short: "Resolve a single species and print it as JSON",
	Long: `Runs the same lookup the HTTP API performs, without starting a server.
With --translated the description is rewritten, falling back to the original
text if the translation service fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVarP(&lookupTranslated, "translated", "t", false, "translate the description")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	q, err := domain.NewSpeciesQuery(args[0])
	if err != nil {
		return err
	}

	rt, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	view, err := rt.service.Resolve(cmd.Context(), q, lookupTranslated)
	switch {
	case errors.Is(err, domain.ErrSpeciesNotFound):
		return fmt.Errorf("species %q not found", q.Name)
	case err != nil:
		return fmt.Errorf("lookup failed: %w", err)
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
