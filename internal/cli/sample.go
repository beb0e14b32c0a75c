package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/yaduha/ovp/internal/config"
	"github.com/yaduha/ovp/internal/sentence"
)

// RunSample handles the 'sample' command: it generates random valid
// clauses from the lexicon, for eyeballing the renderer and for building
// few-shot material.
func RunSample(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	n := fs.Int("n", 5, "Number of sentences to generate")
	seed := fs.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	shape := fs.String("shape", "", "Restrict to one clause shape")
	jsonOut := fs.Bool("json", false, "Emit structured clauses as JSON alongside the surface form")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if *n <= 0 {
		return fmt.Errorf("error: -n must be positive")
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	sampler := sentence.NewSampler(store, rand.New(rand.NewSource(*seed)))

	var sentences []sentence.Sentence
	switch *shape {
	case "":
		sentences = sampler.Sample(*n)
	case sentence.ShapeSubjectVerb:
		for i := 0; i < *n; i++ {
			sentences = append(sentences, sampler.SubjectVerb())
		}
	case sentence.ShapeSubjectVerbObject:
		for i := 0; i < *n; i++ {
			sentences = append(sentences, sampler.SubjectVerbObject())
		}
	default:
		return fmt.Errorf("unknown shape %q", *shape)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, s := range sentences {
		surface, err := s.Render(store)
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if *jsonOut {
			fmt.Printf("%s\t", surface)
			if err := enc.Encode(s); err != nil {
				return err
			}
		} else {
			fmt.Println(surface)
		}
	}
	return nil
}
