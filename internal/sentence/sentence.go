// Package sentence defines the structured clause representations of Owens
// Valley Paiute and the deterministic renderer that turns a populated
// clause into its surface form. Two clause shapes exist: subject-verb and
// subject-object-verb. The renderer is pure; all lexical material comes
// from the vocab store and all bound morphemes from the grammar tables.
package sentence

import (
	"fmt"
	"strings"

	"github.com/yaduha/ovp/internal/grammar"
	"github.com/yaduha/ovp/internal/vocab"
)

// Shape discriminators for the closed set of clause structures.
const (
	ShapeSubjectVerb       = "subject_verb"
	ShapeSubjectVerbObject = "subject_verb_object"
)

// Noun is a noun phrase head with its grammatical features. The possessive
// determiner rides along for collaborator output compatibility but has no
// surface realization in the two supported clause shapes.
type Noun struct {
	Head                 string           `json:"head"`
	PossessiveDeterminer *grammar.Pronoun `json:"possessive_determiner,omitempty"`
	Proximity            grammar.Proximity `json:"proximity"`
	Plurality            grammar.Plurality `json:"plurality"`
}

// Validate checks the noun against the lexicon and the feature enums. An
// unresolved head lemma is a validation error, never a silent fallback.
func (n Noun) Validate(store *vocab.Store) error {
	if n.Head == "" {
		return fmt.Errorf("noun: empty head lemma")
	}
	if !store.Has(n.Head, vocab.Nouns) {
		return &vocab.UnknownLemmaError{Lemma: n.Head, Category: vocab.Nouns}
	}
	if !n.Proximity.Valid() {
		return fmt.Errorf("noun %q: invalid proximity %q", n.Head, string(n.Proximity))
	}
	if !n.Plurality.Valid() {
		return fmt.Errorf("noun %q: invalid plurality %q", n.Head, string(n.Plurality))
	}
	if n.PossessiveDeterminer != nil {
		if err := n.PossessiveDeterminer.Validate(); err != nil {
			return fmt.Errorf("noun %q: possessive determiner: %w", n.Head, err)
		}
	}
	return nil
}

// Verb is a verb lemma with its tense/aspect. The loose form is used in
// subject-verb clauses, where a verb of either lexical class may appear.
type Verb struct {
	Lemma       string              `json:"lemma"`
	TenseAspect grammar.TenseAspect `json:"tense_aspect"`
}

func (v Verb) validateFeatures() error {
	if v.Lemma == "" {
		return fmt.Errorf("verb: empty lemma")
	}
	if !v.TenseAspect.Valid() {
		return fmt.Errorf("verb %q: invalid tense/aspect %q", v.Lemma, string(v.TenseAspect))
	}
	return nil
}

// TransitiveVerb is a verb that must resolve in the transitive collection.
type TransitiveVerb struct {
	Verb
}

func (v TransitiveVerb) Validate(store *vocab.Store) error {
	if err := v.validateFeatures(); err != nil {
		return err
	}
	if !store.Has(v.Lemma, vocab.TransitiveVerbs) {
		return &vocab.UnknownLemmaError{Lemma: v.Lemma, Category: vocab.TransitiveVerbs}
	}
	return nil
}

// IntransitiveVerb is a verb that must resolve in the intransitive
// collection.
type IntransitiveVerb struct {
	Verb
}

func (v IntransitiveVerb) Validate(store *vocab.Store) error {
	if err := v.validateFeatures(); err != nil {
		return err
	}
	if !store.Has(v.Lemma, vocab.IntransitiveVerbs) {
		return &vocab.UnknownLemmaError{Lemma: v.Lemma, Category: vocab.IntransitiveVerbs}
	}
	return nil
}

// Nominal fills a subject or object slot with either a noun phrase or a
// pronoun bundle. Exactly one of the two fields is set.
type Nominal struct {
	Noun    *Noun            `json:"noun,omitempty"`
	Pronoun *grammar.Pronoun `json:"pronoun,omitempty"`
}

// NounNominal wraps a noun for a clause slot.
func NounNominal(n Noun) Nominal { return Nominal{Noun: &n} }

// PronounNominal wraps a pronoun bundle for a clause slot.
func PronounNominal(p grammar.Pronoun) Nominal { return Nominal{Pronoun: &p} }

func (n Nominal) validate(store *vocab.Store, slot string) error {
	switch {
	case n.Noun != nil && n.Pronoun != nil:
		return fmt.Errorf("%s: both noun and pronoun set", slot)
	case n.Noun != nil:
		if err := n.Noun.Validate(store); err != nil {
			return fmt.Errorf("%s: %w", slot, err)
		}
	case n.Pronoun != nil:
		if err := n.Pronoun.Validate(); err != nil {
			return fmt.Errorf("%s: %w", slot, err)
		}
	default:
		return fmt.Errorf("%s: neither noun nor pronoun set", slot)
	}
	return nil
}

// normalize fills feature defaults a collaborator may legitimately omit:
// inclusivity only means anything for first person plural, so an absent
// value defaults to exclusive.
func (n *Nominal) normalize() {
	if n.Pronoun != nil && n.Pronoun.Inclusivity == "" {
		n.Pronoun.Inclusivity = grammar.Exclusive
	}
	if n.Noun != nil && n.Noun.PossessiveDeterminer != nil && n.Noun.PossessiveDeterminer.Inclusivity == "" {
		n.Noun.PossessiveDeterminer.Inclusivity = grammar.Exclusive
	}
}

// renderSubject produces the free-standing subject phrase: a subject
// pronoun, or the noun's target stem with the proximity subject suffix.
func (n Nominal) renderSubject(store *vocab.Store) (string, error) {
	if n.Pronoun != nil {
		return n.Pronoun.SubjectForm()
	}
	if n.Noun != nil {
		target, err := store.Lookup(n.Noun.Head, vocab.Nouns)
		if err != nil {
			return "", err
		}
		return target + "-" + n.Noun.Proximity.SubjectSuffix(), nil
	}
	return "", fmt.Errorf("empty subject slot")
}

// Sentence is the closed union of supported clause shapes.
type Sentence interface {
	// Shape returns the clause shape discriminator.
	Shape() string
	// Validate checks structural invariants against the lexicon.
	Validate(store *vocab.Store) error
	// Render produces the surface string. It is deterministic and either
	// returns a fully assembled sentence or fails; no partial output.
	Render(store *vocab.Store) (string, error)
}

// SubjectVerb is the intransitive clause shape. The verb slot accepts
// either lexical class: a transitive verb used without an object renders
// intransitively.
type SubjectVerb struct {
	Subject Nominal `json:"subject"`
	Verb    Verb    `json:"verb"`
}

func (s *SubjectVerb) Shape() string { return ShapeSubjectVerb }

// Normalize fills omitted feature defaults in place.
func (s *SubjectVerb) Normalize() { s.Subject.normalize() }

func (s *SubjectVerb) Validate(store *vocab.Store) error {
	if err := s.Subject.validate(store, "subject"); err != nil {
		return err
	}
	if err := s.Verb.validateFeatures(); err != nil {
		return err
	}
	if _, err := store.LookupAnyVerb(s.Verb.Lemma); err != nil {
		return err
	}
	return nil
}

func (s *SubjectVerb) Render(store *vocab.Store) (string, error) {
	subject, err := s.Subject.renderSubject(store)
	if err != nil {
		return "", err
	}

	stem, err := store.LookupAnyVerb(s.Verb.Lemma)
	if err != nil {
		return "", err
	}
	suffix, err := s.Verb.TenseAspect.Suffix()
	if err != nil {
		return "", err
	}

	return subject + " " + stem + "-" + suffix, nil
}

// SubjectVerbObject is the transitive clause shape. The object is required;
// the verb carries an object-agreement prefix and its stem undergoes the
// fortis/lenis alternation.
type SubjectVerbObject struct {
	Subject Nominal        `json:"subject"`
	Verb    TransitiveVerb `json:"verb"`
	Object  Nominal        `json:"object"`
}

func (s *SubjectVerbObject) Shape() string { return ShapeSubjectVerbObject }

// Normalize fills omitted feature defaults in place.
func (s *SubjectVerbObject) Normalize() {
	s.Subject.normalize()
	s.Object.normalize()
}

func (s *SubjectVerbObject) Validate(store *vocab.Store) error {
	if err := s.Subject.validate(store, "subject"); err != nil {
		return err
	}
	if err := s.Verb.Validate(store); err != nil {
		return err
	}
	if err := s.Object.validate(store, "object"); err != nil {
		return err
	}
	return nil
}

func (s *SubjectVerbObject) Render(store *vocab.Store) (string, error) {
	// The object is a required field of this shape; an empty slot is a
	// broken contract, not a renderable sentence.
	var prefix string
	switch {
	case s.Object.Pronoun != nil:
		form, err := s.Object.Pronoun.ObjectForm()
		if err != nil {
			return "", err
		}
		prefix = form
	case s.Object.Noun != nil:
		form, err := grammar.ThirdPersonObject(s.Object.Noun.Proximity, s.Object.Noun.Plurality).ObjectForm()
		if err != nil {
			return "", err
		}
		prefix = form
	default:
		return "", fmt.Errorf("transitive clause: object slot is empty")
	}

	stem, err := store.Lookup(s.Verb.Lemma, vocab.TransitiveVerbs)
	if err != nil {
		return "", err
	}
	suffix, err := s.Verb.TenseAspect.Suffix()
	if err != nil {
		return "", err
	}
	verb := prefix + "-" + grammar.ToLenis(stem) + "-" + suffix

	subject, err := s.Subject.renderSubject(store)
	if err != nil {
		return "", err
	}

	// A pronoun object surfaces only as the verb prefix, flipping the
	// clause to verb-subject order.
	if s.Object.Noun == nil {
		return verb + " " + subject, nil
	}

	target, err := store.Lookup(s.Object.Noun.Head, vocab.Nouns)
	if err != nil {
		return "", err
	}
	// The glottal stop test applies to the rendered target stem, not the
	// English lemma.
	objectSuffix := s.Object.Noun.Proximity.ObjectSuffix(strings.HasSuffix(target, "'"))
	object := target + "-" + objectSuffix

	return subject + " " + object + " " + verb, nil
}
