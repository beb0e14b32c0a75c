// Package agent defines the external collaborator contracts of the
// translation pipeline and their implementations: a structured-generation
// collaborator that populates one candidate clause shape from English text,
// and a back-translation collaborator that renders Paiute back to English.
package agent

import (
	"context"
	"fmt"

	"github.com/yaduha/ovp/internal/sentence"
)

// Generator populates one candidate clause shape from free English text.
// The returned sentence conforms to exactly the requested shape; anything
// else is a *SchemaValidationError.
type Generator interface {
	GenerateSentence(ctx context.Context, source string, shape CandidateShape) (sentence.Sentence, error)
}

// BackTranslator renders a target-language string back into free English.
type BackTranslator interface {
	BackTranslate(ctx context.Context, target string) (string, error)
}

// SchemaValidationError reports collaborator output that does not conform
// to the requested candidate shape. The pipeline recovers from it by
// falling back to the next shape.
type SchemaValidationError struct {
	Shape string
	Cause error
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("response does not conform to shape %s: %v", e.Shape, e.Cause)
}

func (e *SchemaValidationError) Unwrap() error { return e.Cause }

// CollaboratorError reports a transport, auth, or rate-limit failure from
// an external collaborator. The core never retries these; retry policy
// belongs to the collaborator client itself.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator %s failed: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
