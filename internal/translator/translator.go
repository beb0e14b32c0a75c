// Package translator orchestrates the translation pipeline: a structured
// generation attempt per candidate clause shape, deterministic rendering of
// the winning shape, and an optional back-translation check.
package translator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/yaduha/ovp/internal/agent"
	"github.com/yaduha/ovp/internal/sentence"
	"github.com/yaduha/ovp/internal/vocab"
)

// Attempt records one candidate shape try and its outcome.
type Attempt struct {
	Shape string
	Err   error
}

// TranslationError is the terminal pipeline failure. It carries every
// attempted shape and the last underlying cause; no partial translation
// ever accompanies it.
type TranslationError struct {
	Attempts []Attempt
	LastErr  error
}

func (e *TranslationError) Error() string {
	shapes := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		shapes = append(shapes, a.Shape)
	}
	return fmt.Sprintf("translation failed after shapes [%s]: %v", strings.Join(shapes, ", "), e.LastErr)
}

func (e *TranslationError) Unwrap() error { return e.LastErr }

// Result is a successful translation. BackTranslation is only populated
// when a back-translator is configured and succeeded; its failure is
// recorded in BackTranslationErr and never invalidates the rendering.
type Result struct {
	Source             string
	Target             string
	Sentence           sentence.Sentence
	Shape              string
	Attempts           []Attempt
	BackTranslation    string
	BackTranslationErr error
}

// Pipeline drives translation requests through the collaborators.
type Pipeline struct {
	generator      agent.Generator
	backTranslator agent.BackTranslator
	store          *vocab.Store
	shapes         []agent.CandidateShape
	concurrent     bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBackTranslator enables the back-translation verification step.
func WithBackTranslator(bt agent.BackTranslator) Option {
	return func(p *Pipeline) { p.backTranslator = bt }
}

// WithShapes overrides the ordered candidate shape list.
func WithShapes(shapes ...agent.CandidateShape) Option {
	return func(p *Pipeline) { p.shapes = shapes }
}

// WithConcurrentCandidates issues all candidate shape attempts at once and
// picks the first success in shape priority order. Results are only ever
// selected from, never merged; the shapes are mutually exclusive.
func WithConcurrentCandidates() Option {
	return func(p *Pipeline) { p.concurrent = true }
}

// New creates a translation pipeline over the given generator and lexicon.
// The default candidate order tries the transitive shape first.
func New(generator agent.Generator, store *vocab.Store, opts ...Option) *Pipeline {
	p := &Pipeline{
		generator: generator,
		store:     store,
		shapes:    agent.DefaultShapes(store),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Translate runs one source sentence through the pipeline. It honors ctx
// cancellation at every suspension point; an expired deadline surfaces as
// a *TranslationError wrapping the context error.
func (p *Pipeline) Translate(ctx context.Context, source string) (*Result, error) {
	if len(p.shapes) == 0 {
		return nil, &TranslationError{LastErr: errors.New("no candidate shapes configured")}
	}

	var (
		s        sentence.Sentence
		attempts []Attempt
		err      error
	)
	if p.concurrent {
		s, attempts, err = p.generateConcurrent(ctx, source)
	} else {
		s, attempts, err = p.generateSequential(ctx, source)
	}
	if err != nil {
		return nil, err
	}

	target, err := s.Render(p.store)
	if err != nil {
		// A schema-valid sentence that fails to render means the shape
		// validation missed something; treat it as a terminal failure.
		attempts = append(attempts, Attempt{Shape: s.Shape(), Err: err})
		return nil, &TranslationError{Attempts: attempts, LastErr: err}
	}

	result := &Result{
		Source:   source,
		Target:   target,
		Sentence: s,
		Shape:    s.Shape(),
		Attempts: attempts,
	}

	// Back-translation is strictly ordered after a successful render and
	// is never fatal.
	if p.backTranslator != nil {
		back, btErr := p.backTranslator.BackTranslate(ctx, target)
		if btErr != nil {
			log.Printf("back-translation failed (non-fatal): %v", btErr)
			result.BackTranslationErr = btErr
		} else {
			result.BackTranslation = back
		}
	}

	return result, nil
}

func (p *Pipeline) generateSequential(ctx context.Context, source string) (sentence.Sentence, []Attempt, error) {
	var attempts []Attempt
	var lastErr error

	for _, shape := range p.shapes {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, &TranslationError{Attempts: attempts, LastErr: ctxErr}
		}

		s, err := p.generator.GenerateSentence(ctx, source, shape)
		if err == nil {
			attempts = append(attempts, Attempt{Shape: shape.Name})
			return s, attempts, nil
		}

		attempts = append(attempts, Attempt{Shape: shape.Name, Err: err})
		lastErr = err

		// Schema failures fall through to the next candidate; transport
		// failures end the request.
		var schemaErr *agent.SchemaValidationError
		if !errors.As(err, &schemaErr) {
			return nil, nil, &TranslationError{Attempts: attempts, LastErr: err}
		}
	}

	return nil, nil, &TranslationError{Attempts: attempts, LastErr: lastErr}
}

func (p *Pipeline) generateConcurrent(ctx context.Context, source string) (sentence.Sentence, []Attempt, error) {
	type outcome struct {
		s   sentence.Sentence
		err error
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make([]outcome, len(p.shapes))
	var wg sync.WaitGroup
	for i, shape := range p.shapes {
		wg.Add(1)
		go func(i int, shape agent.CandidateShape) {
			defer wg.Done()
			s, err := p.generator.GenerateSentence(ctx, source, shape)
			outcomes[i] = outcome{s: s, err: err}
		}(i, shape)
	}
	wg.Wait()

	attempts := make([]Attempt, 0, len(p.shapes))
	var lastErr error
	for i, shape := range p.shapes {
		if outcomes[i].err == nil {
			attempts = append(attempts, Attempt{Shape: shape.Name})
			return outcomes[i].s, attempts, nil
		}
		attempts = append(attempts, Attempt{Shape: shape.Name, Err: outcomes[i].err})
		lastErr = outcomes[i].err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		lastErr = ctxErr
	}
	return nil, nil, &TranslationError{Attempts: attempts, LastErr: lastErr}
}
