// CLI harness runner for translation evaluation suites.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yaduha/ovp/internal/agent"
	"github.com/yaduha/ovp/internal/config"
	"github.com/yaduha/ovp/internal/harness"
	"github.com/yaduha/ovp/internal/translator"
	"github.com/yaduha/ovp/internal/vocab"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	suiteName := flag.String("suite", "", "Run a single suite (smoke, round-trip, vocabulary)")
	live := flag.Bool("live", false, "Require a live collaborator; refuse to fall back to the mock")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()
	store := vocab.NewStore()

	var (
		generator      agent.Generator
		backTranslator agent.BackTranslator
		exact          bool
	)
	gemini, err := agent.NewGeminiAgent(ctx, cfg.APIKey, cfg.Model, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collaborator setup failed: %v\n", err)
		os.Exit(1)
	}
	if gemini != nil {
		defer gemini.Close()
		generator, backTranslator = gemini, gemini
		fmt.Println("Collaborator: Gemini")
	} else {
		if *live {
			fmt.Fprintln(os.Stderr, "no API key set; --live requires GEMINI_API_KEY or GOOGLE_API_KEY")
			os.Exit(1)
		}
		mock := agent.NewMockAgent(store)
		generator, backTranslator = mock, mock
		exact = true
		fmt.Println("Collaborator: mock (deterministic targets checked)")
	}

	pipeline := translator.New(generator, store, translator.WithBackTranslator(backTranslator))
	runner := harness.NewRunner(pipeline).WithVerbose(*verbose)

	suites := []harness.Suite{
		harness.SmokeSuite(exact),
		harness.RoundTripSuite(),
		harness.VocabularySuite(),
	}
	if *suiteName != "" {
		var found bool
		for _, s := range suites {
			if s.Name == *suiteName {
				suites = []harness.Suite{s}
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "unknown suite %q\n", *suiteName)
			os.Exit(1)
		}
	}

	failed := 0
	for _, suite := range suites {
		result, err := runner.Run(ctx, suite)
		if err != nil {
			log.Printf("suite %s error: %v", suite.Name, err)
			failed++
			continue
		}
		result.Report(os.Stdout)
		fmt.Println()
		failed += result.Failed
	}

	if failed > 0 {
		os.Exit(1)
	}
}
