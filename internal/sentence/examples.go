package sentence

import "github.com/yaduha/ovp/internal/grammar"

// Example pairs an English source sentence with its populated clause, used
// as worked examples in the system prompt.
type Example struct {
	English  string
	Sentence Sentence
}

// SubjectVerbExamples returns the worked examples for the intransitive
// shape.
func SubjectVerbExamples() []Example {
	return []Example{
		{
			English: "I sleep.",
			Sentence: &SubjectVerb{
				Subject: PronounNominal(grammar.Pronoun{
					Person:      grammar.First,
					Plurality:   grammar.Singular,
					Proximity:   grammar.Proximal,
					Inclusivity: grammar.Exclusive,
				}),
				Verb: Verb{Lemma: "sleep", TenseAspect: grammar.PresentSimple},
			},
		},
		{
			English: "The coyote runs.",
			Sentence: &SubjectVerb{
				Subject: NounNominal(Noun{
					Head:      "coyote",
					Proximity: grammar.Distal,
					Plurality: grammar.Singular,
				}),
				Verb: Verb{Lemma: "run", TenseAspect: grammar.PresentSimple},
			},
		},
		{
			English: "The mountains will hit.",
			Sentence: &SubjectVerb{
				Subject: NounNominal(Noun{
					Head:      "mountain",
					Proximity: grammar.Distal,
					Plurality: grammar.Plural,
				}),
				Verb: Verb{Lemma: "hit", TenseAspect: grammar.FutureSimple},
			},
		},
	}
}

// SubjectVerbObjectExamples returns the worked examples for the transitive
// shape.
func SubjectVerbObjectExamples() []Example {
	return []Example{
		{
			English: "You read the mountains.",
			Sentence: &SubjectVerbObject{
				Subject: PronounNominal(grammar.Pronoun{
					Person:      grammar.Second,
					Plurality:   grammar.Singular,
					Proximity:   grammar.Proximal,
					Inclusivity: grammar.Exclusive,
				}),
				Verb: TransitiveVerb{Verb: Verb{Lemma: "read", TenseAspect: grammar.PresentSimple}},
				Object: NounNominal(Noun{
					Head:      "mountain",
					Proximity: grammar.Distal,
					Plurality: grammar.Plural,
				}),
			},
		},
		{
			English: "That worm will hear it.",
			Sentence: &SubjectVerbObject{
				Subject: NounNominal(Noun{
					Head:      "worm",
					Proximity: grammar.Distal,
					Plurality: grammar.Singular,
				}),
				Verb: TransitiveVerb{Verb: Verb{Lemma: "hear", TenseAspect: grammar.FutureSimple}},
				Object: PronounNominal(grammar.Pronoun{
					Person:      grammar.Third,
					Plurality:   grammar.Singular,
					Proximity:   grammar.Distal,
					Inclusivity: grammar.Exclusive,
				}),
			},
		},
		{
			English: "That food cooks this weasle.",
			Sentence: &SubjectVerbObject{
				Subject: NounNominal(Noun{
					Head:      "food",
					Proximity: grammar.Distal,
					Plurality: grammar.Singular,
				}),
				Verb: TransitiveVerb{Verb: Verb{Lemma: "cook", TenseAspect: grammar.PresentSimple}},
				Object: NounNominal(Noun{
					Head:      "weasle",
					Proximity: grammar.Proximal,
					Plurality: grammar.Singular,
				}),
			},
		},
	}
}

// ExamplesForShape returns the worked examples for a clause shape, or nil
// for an unknown shape.
func ExamplesForShape(shape string) []Example {
	switch shape {
	case ShapeSubjectVerb:
		return SubjectVerbExamples()
	case ShapeSubjectVerbObject:
		return SubjectVerbObjectExamples()
	}
	return nil
}
