package agent

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yaduha/ovp/internal/sentence"
	"github.com/yaduha/ovp/internal/vocab"
)

// CandidateShape describes one clause structure the generation collaborator
// may populate. Decode is strict: unknown fields are rejected, features are
// validated against the closed enumerations, and lemmas against the
// lexicon. A decode failure is always a *SchemaValidationError.
type CandidateShape struct {
	Name       string
	SchemaHint string
	Decode     func(data []byte) (sentence.Sentence, error)
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	// Trailing garbage after the object also fails the schema.
	if dec.More() {
		return fmt.Errorf("trailing data after JSON object")
	}
	return nil
}

const subjectVerbSchemaHint = `{
  "subject": {"noun": {"head": "<noun lemma>", "proximity": "proximal|distal", "plurality": "singular|dual|plural"}}
             OR {"pronoun": {"person": "first|second|third", "plurality": "singular|dual|plural", "proximity": "proximal|distal", "inclusivity": "inclusive|exclusive", "reflexive": false}},
  "verb": {"lemma": "<verb lemma>", "tense_aspect": "past_simple|past_continuous|present_perfect|present_simple|present_continuous|future_simple"}
}`

const subjectVerbObjectSchemaHint = `{
  "subject": {"noun": {...}} OR {"pronoun": {...}},
  "verb": {"lemma": "<transitive verb lemma>", "tense_aspect": "past_simple|past_continuous|present_perfect|present_simple|present_continuous|future_simple"},
  "object": {"noun": {"head": "<noun lemma>", "proximity": "proximal|distal", "plurality": "singular|dual|plural"}}
            OR {"pronoun": {"person": "first|second|third", "plurality": "singular|dual|plural", "proximity": "proximal|distal", "inclusivity": "inclusive|exclusive", "reflexive": false}}
}`

// SubjectVerbShape is the intransitive candidate shape.
func SubjectVerbShape(store *vocab.Store) CandidateShape {
	return CandidateShape{
		Name:       sentence.ShapeSubjectVerb,
		SchemaHint: subjectVerbSchemaHint,
		Decode: func(data []byte) (sentence.Sentence, error) {
			var s sentence.SubjectVerb
			if err := strictUnmarshal(data, &s); err != nil {
				return nil, &SchemaValidationError{Shape: sentence.ShapeSubjectVerb, Cause: err}
			}
			s.Normalize()
			if err := s.Validate(store); err != nil {
				return nil, &SchemaValidationError{Shape: sentence.ShapeSubjectVerb, Cause: err}
			}
			return &s, nil
		},
	}
}

// SubjectVerbObjectShape is the transitive candidate shape.
func SubjectVerbObjectShape(store *vocab.Store) CandidateShape {
	return CandidateShape{
		Name:       sentence.ShapeSubjectVerbObject,
		SchemaHint: subjectVerbObjectSchemaHint,
		Decode: func(data []byte) (sentence.Sentence, error) {
			var s sentence.SubjectVerbObject
			if err := strictUnmarshal(data, &s); err != nil {
				return nil, &SchemaValidationError{Shape: sentence.ShapeSubjectVerbObject, Cause: err}
			}
			s.Normalize()
			if err := s.Validate(store); err != nil {
				return nil, &SchemaValidationError{Shape: sentence.ShapeSubjectVerbObject, Cause: err}
			}
			return &s, nil
		},
	}
}

// DefaultShapes returns the candidate shapes in default priority order:
// the more specific transitive shape first, the intransitive shape as
// fallback.
func DefaultShapes(store *vocab.Store) []CandidateShape {
	return []CandidateShape{
		SubjectVerbObjectShape(store),
		SubjectVerbShape(store),
	}
}
