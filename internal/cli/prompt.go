package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/yaduha/ovp/internal/config"
	"github.com/yaduha/ovp/internal/prompt"
	"github.com/yaduha/ovp/internal/sentence"
)

// RunPrompt handles the 'prompt' command: it prints the system prompt the
// generation collaborator receives, for inspection and prompt iteration.
func RunPrompt(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("prompt", flag.ExitOnError)
	vocabSection := fs.Bool("vocab", true, "Include the vocabulary listing")
	tools := fs.Bool("tools", false, "Include the tool-use instruction")
	shapes := fs.String("examples", "", "Comma-separated clause shapes to include worked examples for")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	b := prompt.NewBuilder(store)
	if *vocabSection {
		b = b.WithVocabulary()
	}
	if *tools {
		b = b.WithTools()
	}
	if *shapes != "" {
		for _, shape := range strings.Split(*shapes, ",") {
			shape = strings.TrimSpace(shape)
			if shape != sentence.ShapeSubjectVerb && shape != sentence.ShapeSubjectVerbObject {
				return fmt.Errorf("unknown shape %q", shape)
			}
			b = b.WithExamples(shape)
		}
	}

	system, err := b.System()
	if err != nil {
		return err
	}
	fmt.Println(system)
	return nil
}
