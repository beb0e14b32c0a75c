package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaduha/ovp/internal/config"
	"github.com/yaduha/ovp/internal/translator"
)

// RunTranslate handles the 'translate' command.
func RunTranslate(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	jsonOut := fs.Bool("json", false, "Emit the full result as JSON")
	concurrent := fs.Bool("concurrent", false, "Try all candidate shapes in parallel")
	timeout := fs.Duration("timeout", 60*time.Second, "Per-sentence deadline")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	source := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if source == "" {
		fs.Usage()
		return fmt.Errorf("error: a source sentence is required")
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	var opts []translator.Option
	if *concurrent {
		opts = append(opts, translator.WithConcurrentCandidates())
	}
	pipeline, cleanup, err := buildPipeline(ctx, cfg, store, opts...)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	result, err := pipeline.Translate(ctx, source)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Println(result.Target)
	if result.BackTranslation != "" {
		fmt.Printf("back-translation: %s\n", result.BackTranslation)
	}
	if len(result.Attempts) > 1 {
		for _, a := range result.Attempts[:len(result.Attempts)-1] {
			fmt.Printf("shape %s rejected: %v\n", a.Shape, a.Err)
		}
	}
	return nil
}
