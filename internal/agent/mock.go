package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaduha/ovp/internal/grammar"
	"github.com/yaduha/ovp/internal/sentence"
	"github.com/yaduha/ovp/internal/vocab"
)

// MockAgent provides simulated collaborator responses for testing and
// demonstration without API keys. It fakes comprehension with crude
// keyword matching over the lexicon; it is deterministic for a given
// source sentence.
type MockAgent struct {
	store *vocab.Store
}

// NewMockAgent creates a mock collaborator over the lexicon.
func NewMockAgent(store *vocab.Store) *MockAgent {
	return &MockAgent{store: store}
}

// GenerateSentence populates the requested shape by scanning the source
// text for known lemmas. A source that yields no verb of the required
// class fails with a *SchemaValidationError, which exercises the
// pipeline's candidate fallback exactly like a non-conforming LLM reply.
func (m *MockAgent) GenerateSentence(ctx context.Context, source string, shape CandidateShape) (sentence.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, &CollaboratorError{Op: "generate", Err: err}
	}

	text := strings.ToLower(source)
	tense := guessTense(text)

	switch shape.Name {
	case sentence.ShapeSubjectVerb:
		lemma, ok := m.findVerb(text, vocab.IntransitiveVerbs)
		if !ok {
			if lemma, ok = m.findVerb(text, vocab.TransitiveVerbs); !ok {
				return nil, &SchemaValidationError{Shape: shape.Name, Cause: fmt.Errorf("no known verb in %q", source)}
			}
		}
		s := &sentence.SubjectVerb{
			Subject: m.findSubject(text),
			Verb:    sentence.Verb{Lemma: lemma, TenseAspect: tense},
		}
		if err := s.Validate(m.store); err != nil {
			return nil, &SchemaValidationError{Shape: shape.Name, Cause: err}
		}
		return s, nil

	case sentence.ShapeSubjectVerbObject:
		lemma, ok := m.findVerb(text, vocab.TransitiveVerbs)
		if !ok {
			return nil, &SchemaValidationError{Shape: shape.Name, Cause: fmt.Errorf("no known transitive verb in %q", source)}
		}
		object, ok := m.findObject(text, lemma)
		if !ok {
			return nil, &SchemaValidationError{Shape: shape.Name, Cause: fmt.Errorf("no object in %q", source)}
		}
		s := &sentence.SubjectVerbObject{
			Subject: m.findSubject(text),
			Verb:    sentence.TransitiveVerb{Verb: sentence.Verb{Lemma: lemma, TenseAspect: tense}},
			Object:  object,
		}
		if err := s.Validate(m.store); err != nil {
			return nil, &SchemaValidationError{Shape: shape.Name, Cause: err}
		}
		return s, nil
	}

	return nil, &SchemaValidationError{Shape: shape.Name, Cause: fmt.Errorf("unknown candidate shape")}
}

// BackTranslate fakes a round trip by echoing the target sentence.
func (m *MockAgent) BackTranslate(ctx context.Context, target string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &CollaboratorError{Op: "back-translate", Err: err}
	}
	return fmt.Sprintf("(mock back-translation of %q)", target), nil
}

func (m *MockAgent) findVerb(text string, category vocab.Category) (string, bool) {
	for _, lemma := range m.store.Lemmas(category) {
		if strings.Contains(text, strings.ReplaceAll(lemma, "_", " ")) {
			return lemma, true
		}
	}
	return "", false
}

func (m *MockAgent) findSubject(text string) sentence.Nominal {
	if strings.HasPrefix(text, "i ") || strings.HasPrefix(text, "i'") {
		return sentence.PronounNominal(grammar.Pronoun{
			Person:      grammar.First,
			Plurality:   grammar.Singular,
			Proximity:   grammar.Proximal,
			Inclusivity: grammar.Exclusive,
		})
	}
	if strings.HasPrefix(text, "we ") {
		return sentence.PronounNominal(grammar.Pronoun{
			Person:      grammar.First,
			Plurality:   grammar.Plural,
			Proximity:   grammar.Proximal,
			Inclusivity: grammar.Exclusive,
		})
	}
	if strings.HasPrefix(text, "you ") {
		return sentence.PronounNominal(grammar.Pronoun{
			Person:      grammar.Second,
			Plurality:   grammar.Singular,
			Proximity:   grammar.Proximal,
			Inclusivity: grammar.Exclusive,
		})
	}
	if noun, ok := m.findNoun(text); ok {
		return sentence.NounNominal(sentence.Noun{
			Head:      noun,
			Proximity: guessProximity(text),
			Plurality: grammar.Singular,
		})
	}
	// Third person fallback when nothing in the sentence is recognizable.
	return sentence.PronounNominal(grammar.Pronoun{
		Person:      grammar.Third,
		Plurality:   grammar.Singular,
		Proximity:   grammar.Distal,
		Inclusivity: grammar.Exclusive,
	})
}

func (m *MockAgent) findObject(text, verbLemma string) (sentence.Nominal, bool) {
	verbWord := strings.ReplaceAll(verbLemma, "_", " ")
	idx := strings.Index(text, verbWord)
	if idx < 0 {
		return sentence.Nominal{}, false
	}
	after := text[idx+len(verbWord):]

	if noun, ok := m.findNoun(after); ok {
		return sentence.NounNominal(sentence.Noun{
			Head:      noun,
			Proximity: guessProximity(after),
			Plurality: grammar.Singular,
		}), true
	}
	for _, word := range []string{" it", " him", " her", " them"} {
		if strings.Contains(after, word) {
			plurality := grammar.Singular
			if word == " them" {
				plurality = grammar.Plural
			}
			return sentence.PronounNominal(grammar.Pronoun{
				Person:      grammar.Third,
				Plurality:   plurality,
				Proximity:   grammar.Distal,
				Inclusivity: grammar.Exclusive,
			}), true
		}
	}
	return sentence.Nominal{}, false
}

func (m *MockAgent) findNoun(text string) (string, bool) {
	for _, lemma := range m.store.Lemmas(vocab.Nouns) {
		if strings.Contains(text, strings.ReplaceAll(lemma, "_", " ")) {
			return lemma, true
		}
	}
	return "", false
}

func guessTense(text string) grammar.TenseAspect {
	switch {
	case strings.Contains(text, "will "):
		return grammar.FutureSimple
	case strings.Contains(text, "ing"):
		return grammar.PresentContinuous
	case strings.Contains(text, "ed "), strings.HasSuffix(strings.TrimRight(text, ". "), "ed"):
		return grammar.PastSimple
	default:
		return grammar.PresentSimple
	}
}

func guessProximity(text string) grammar.Proximity {
	if strings.Contains(text, "this ") || strings.Contains(text, "these ") {
		return grammar.Proximal
	}
	return grammar.Distal
}
