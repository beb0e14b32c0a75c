package sentence

import (
	"math/rand"

	"github.com/yaduha/ovp/internal/grammar"
	"github.com/yaduha/ovp/internal/vocab"
)

// Sampler generates pseudo-random, feature-valid sentences for few-shot
// prompt examples and self-testing. The random source is injected so a
// seeded sampler reproduces the same corpus.
type Sampler struct {
	store *vocab.Store
	rng   *rand.Rand
}

// NewSampler creates a sampler over the given lexicon and random source.
func NewSampler(store *vocab.Store, rng *rand.Rand) *Sampler {
	return &Sampler{store: store, rng: rng}
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}

func (s *Sampler) pronoun(object bool) grammar.Pronoun {
	p := grammar.Pronoun{
		Person:      pick(s.rng, grammar.Persons()),
		Plurality:   pick(s.rng, grammar.Pluralities()),
		Proximity:   pick(s.rng, grammar.Proximities()),
		Inclusivity: pick(s.rng, grammar.Inclusivities()),
	}
	// Reflexive only has a surface form in the object position.
	if object && p.Person == grammar.Third {
		p.Reflexive = s.rng.Intn(4) == 0
	}
	return p
}

func (s *Sampler) noun() Noun {
	return Noun{
		Head:      pick(s.rng, s.store.Lemmas(vocab.Nouns)),
		Proximity: pick(s.rng, grammar.Proximities()),
		Plurality: pick(s.rng, grammar.Pluralities()),
	}
}

func (s *Sampler) nominal(object bool) Nominal {
	if s.rng.Intn(2) == 0 {
		return PronounNominal(s.pronoun(object))
	}
	return NounNominal(s.noun())
}

// SubjectVerb generates one random intransitive clause. The verb is drawn
// from either lexical class, mirroring the shape's polymorphic verb slot.
func (s *Sampler) SubjectVerb() *SubjectVerb {
	var lemma string
	if s.rng.Intn(2) == 0 {
		lemma = pick(s.rng, s.store.Lemmas(vocab.IntransitiveVerbs))
	} else {
		lemma = pick(s.rng, s.store.Lemmas(vocab.TransitiveVerbs))
	}
	return &SubjectVerb{
		Subject: s.nominal(false),
		Verb: Verb{
			Lemma:       lemma,
			TenseAspect: pick(s.rng, grammar.TenseAspects()),
		},
	}
}

// SubjectVerbObject generates one random transitive clause.
func (s *Sampler) SubjectVerbObject() *SubjectVerbObject {
	return &SubjectVerbObject{
		Subject: s.nominal(false),
		Verb: TransitiveVerb{Verb: Verb{
			Lemma:       pick(s.rng, s.store.Lemmas(vocab.TransitiveVerbs)),
			TenseAspect: pick(s.rng, grammar.TenseAspects()),
		}},
		Object: s.nominal(true),
	}
}

// Sample generates n random sentences across both clause shapes.
func (s *Sampler) Sample(n int) []Sentence {
	out := make([]Sentence, 0, n)
	for i := 0; i < n; i++ {
		if s.rng.Intn(2) == 0 {
			out = append(out, s.SubjectVerb())
		} else {
			out = append(out, s.SubjectVerbObject())
		}
	}
	return out
}
