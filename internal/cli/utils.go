// Package cli implements the command line subcommands.
package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/yaduha/ovp/internal/agent"
	"github.com/yaduha/ovp/internal/config"
	"github.com/yaduha/ovp/internal/translator"
	"github.com/yaduha/ovp/internal/vocab"
)

// maskConnectionString masks sensitive parts of a database connection
// string for display.
func maskConnectionString(connStr string) string {
	if len(connStr) > 20 {
		return connStr[:10] + "..." + connStr[len(connStr)-10:]
	}
	return "***"
}

// buildStore resolves the lexicon backend from config.
func buildStore(ctx context.Context, cfg config.Config) (*vocab.Store, error) {
	var store *vocab.Store
	if cfg.IsPostgres() {
		repo, err := vocab.Connect(cfg.ConnectionString)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to lexicon database: %w", err)
		}
		defer repo.Close()
		store, err = vocab.NewStoreFromRepository(ctx, repo)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
	} else {
		store = vocab.NewStore()
	}
	if cfg.Permissive {
		store = store.WithPermissive()
	}
	return store, nil
}

// buildPipeline wires the translation pipeline. With no API key the mock
// collaborator stands in so the command still works offline. The returned
// cleanup func releases the Gemini client when one was created.
func buildPipeline(ctx context.Context, cfg config.Config, store *vocab.Store, opts ...translator.Option) (*translator.Pipeline, func(), error) {
	gemini, err := agent.NewGeminiAgent(ctx, cfg.APIKey, cfg.Model, store)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create collaborator: %w", err)
	}

	cleanup := func() {}
	if gemini == nil {
		log.Println("no API key set, using mock collaborator")
		mock := agent.NewMockAgent(store)
		opts = append(opts, translator.WithBackTranslator(mock))
		return translator.New(mock, store, opts...), cleanup, nil
	}

	cleanup = gemini.Close
	opts = append(opts, translator.WithBackTranslator(gemini))
	return translator.New(gemini, store, opts...), cleanup, nil
}
