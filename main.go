package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/yaduha/ovp/internal/cli"
	"github.com/yaduha/ovp/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		printUsage()
		return 1
	}

	command := os.Args[1]
	args := os.Args[2:]

	if command == "help" {
		printUsage()
		return 0
	}

	cfg := config.Load()
	if cfg.APIKey != "" && os.Getenv("GEMINI_API_KEY") == "" {
		log.Println("using GOOGLE_API_KEY for the Gemini API (consider setting GEMINI_API_KEY)")
	}

	ctx := context.Background()

	var err error
	switch command {
	case "translate":
		err = cli.RunTranslate(ctx, cfg, args)
	case "render":
		err = cli.RunRender(ctx, cfg, args)
	case "sample":
		err = cli.RunSample(ctx, cfg, args)
	case "vocab":
		err = cli.RunVocab(ctx, cfg, args)
	case "prompt":
		err = cli.RunPrompt(ctx, cfg, args)
	case "migrate-vocabulary":
		err = cli.RunMigrateVocabulary(ctx, args)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		return 1
	}

	if err != nil {
		log.Printf("Command failed: %v", err)
		return 1
	}

	return 0
}

func printUsage() {
	fmt.Println("Owens Valley Paiute translation CLI")
	fmt.Println("Usage: yaduha <command> [options]")
	fmt.Println("\nTranslation Commands (GEMINI_API_KEY optional, mock collaborator without it):")
	fmt.Println("  translate [--json] [--concurrent] [--timeout=<dur>] <english sentence>")
	fmt.Println("              Translate an English sentence into Owens Valley Paiute")
	fmt.Println("  render [--shape=<shape>] [--file=<path>]")
	fmt.Println("              Render a structured clause (JSON on stdin or --file) to its surface form")
	fmt.Println("\nLexicon Commands:")
	fmt.Println("  sample [--n=<count>] [--seed=<n>] [--shape=<shape>] [--json]")
	fmt.Println("              Generate random valid sentences from the lexicon")
	fmt.Println("  vocab [--category=<c>] [--lenis] [--kinship]")
	fmt.Println("              List the lexicon, the fortis/lenis table, or the kinship paradigm")
	fmt.Println("  migrate-vocabulary [--db=<conn>] [--verify] [--dry-run]")
	fmt.Println("              Seed the built-in word lists into database storage")
	fmt.Println("  prompt [--vocab=<bool>] [--tools] [--examples=<shapes>]")
	fmt.Println("              Print the system prompt sent to the generation collaborator")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  GEMINI_API_KEY       Gemini API key (falls back to GOOGLE_API_KEY)")
	fmt.Println("  YADUHA_MODEL         Collaborator model name override")
	fmt.Println("  YADUHA_VOCAB_STORE   'static' (default) or 'postgres'")
	fmt.Println("  DB_CONN_STRING       PostgreSQL connection string for the postgres store")
	fmt.Println("  YADUHA_PERMISSIVE    Set to 'true' to render unknown lemmas as [lemma] placeholders")
	fmt.Println("\nClause shapes: subject_verb, subject_verb_object")
}
