package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yaduha/ovp/internal/agent"
	"github.com/yaduha/ovp/internal/config"
	"github.com/yaduha/ovp/internal/sentence"
)

// RunRender handles the 'render' command: it decodes a structured clause
// from JSON and prints its surface form. This is the deterministic half
// of the pipeline, exposed for debugging collaborator output by hand.
func RunRender(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	shapeName := fs.String("shape", sentence.ShapeSubjectVerbObject, "Clause shape of the input JSON")
	file := fs.String("file", "", "Read clause JSON from file instead of stdin")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	var shape agent.CandidateShape
	switch *shapeName {
	case sentence.ShapeSubjectVerb:
		shape = agent.SubjectVerbShape(store)
	case sentence.ShapeSubjectVerbObject:
		shape = agent.SubjectVerbObjectShape(store)
	default:
		return fmt.Errorf("unknown shape %q", *shapeName)
	}

	var data []byte
	if *file != "" {
		data, err = os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", *file, err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	s, err := shape.Decode(data)
	if err != nil {
		return fmt.Errorf("invalid clause: %w", err)
	}

	surface, err := s.Render(store)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Println(surface)
	return nil
}
