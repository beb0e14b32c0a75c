package sentence

import (
	"errors"
	"testing"

	"github.com/yaduha/ovp/internal/grammar"
	"github.com/yaduha/ovp/internal/vocab"
)

func firstSingular() grammar.Pronoun {
	return grammar.Pronoun{
		Person:      grammar.First,
		Plurality:   grammar.Singular,
		Proximity:   grammar.Proximal,
		Inclusivity: grammar.Exclusive,
	}
}

func TestRenderSubjectVerb(t *testing.T) {
	store := vocab.NewStore()

	tests := []struct {
		name     string
		sentence *SubjectVerb
		want     string
	}{
		{
			name: "pronoun subject",
			sentence: &SubjectVerb{
				Subject: PronounNominal(firstSingular()),
				Verb:    Verb{Lemma: "sleep", TenseAspect: grammar.PresentSimple},
			},
			want: "nüü üwi-dü",
		},
		{
			name: "noun subject",
			sentence: &SubjectVerb{
				Subject: NounNominal(Noun{Head: "coyote", Proximity: grammar.Distal, Plurality: grammar.Singular}),
				Verb:    Verb{Lemma: "run", TenseAspect: grammar.PresentSimple},
			},
			want: "isha'-uu poyoha-dü",
		},
		{
			name: "plural noun subject with future verb",
			sentence: &SubjectVerb{
				Subject: NounNominal(Noun{Head: "mountain", Proximity: grammar.Distal, Plurality: grammar.Plural}),
				Verb:    Verb{Lemma: "hit", TenseAspect: grammar.FutureSimple},
			},
			want: "toyabi-uu kwati-wei",
		},
		{
			name: "transitive verb without object renders intransitively",
			sentence: &SubjectVerb{
				Subject: PronounNominal(firstSingular()),
				Verb:    Verb{Lemma: "eat", TenseAspect: grammar.PastSimple},
			},
			want: "nüü tüka-ku",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sentence.Validate(store); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			got, err := tt.sentence.Render(store)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSubjectVerbObject(t *testing.T) {
	store := vocab.NewStore()

	tests := []struct {
		name     string
		sentence *SubjectVerbObject
		want     string
	}{
		{
			name: "pronoun object flips to verb-subject order",
			sentence: &SubjectVerbObject{
				Subject: NounNominal(Noun{Head: "worm", Proximity: grammar.Distal, Plurality: grammar.Singular}),
				Verb:    TransitiveVerb{Verb: Verb{Lemma: "hear", TenseAspect: grammar.FutureSimple}},
				Object: PronounNominal(grammar.Pronoun{
					Person:      grammar.Third,
					Plurality:   grammar.Singular,
					Proximity:   grammar.Distal,
					Inclusivity: grammar.Exclusive,
				}),
			},
			want: "u-naka-wei wo'abi-uu",
		},
		{
			name: "noun object keeps subject-object-verb order",
			sentence: &SubjectVerbObject{
				Subject: PronounNominal(grammar.Pronoun{
					Person:      grammar.Second,
					Plurality:   grammar.Singular,
					Proximity:   grammar.Proximal,
					Inclusivity: grammar.Exclusive,
				}),
				Verb:   TransitiveVerb{Verb: Verb{Lemma: "read", TenseAspect: grammar.PresentSimple}},
				Object: NounNominal(Noun{Head: "mountain", Proximity: grammar.Distal, Plurality: grammar.Plural}),
			},
			want: "üü toyabi-noka ui-nia-dü",
		},
		{
			name: "lenis mutation on the verb stem",
			sentence: &SubjectVerbObject{
				Subject: NounNominal(Noun{Head: "food", Proximity: grammar.Distal, Plurality: grammar.Singular}),
				Verb:    TransitiveVerb{Verb: Verb{Lemma: "cook", TenseAspect: grammar.PresentSimple}},
				Object:  NounNominal(Noun{Head: "weasle", Proximity: grammar.Proximal, Plurality: grammar.Singular}),
			},
			want: "tuunapi-uu tüsüga-neika a-zawa-dü",
		},
		{
			name: "reflexive object",
			sentence: &SubjectVerbObject{
				Subject: NounNominal(Noun{Head: "cat", Proximity: grammar.Proximal, Plurality: grammar.Singular}),
				Verb:    TransitiveVerb{Verb: Verb{Lemma: "see", TenseAspect: grammar.PresentContinuous}},
				Object: PronounNominal(grammar.Pronoun{
					Person:      grammar.Third,
					Plurality:   grammar.Singular,
					Proximity:   grammar.Proximal,
					Inclusivity: grammar.Exclusive,
					Reflexive:   true,
				}),
			},
			want: "na-buni-ti kidi'-ii",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sentence.Validate(store); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			got, err := tt.sentence.Render(store)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

// Object suffixes depend on whether the rendered target stem ends in a
// glottal stop, checked per proximity.
func TestGlottalAwareObjectSuffix(t *testing.T) {
	store := vocab.NewStore()

	tests := []struct {
		head      string
		proximity grammar.Proximity
		want      string // rendered object phrase
	}{
		{"coyote", grammar.Proximal, "isha'-eika"},
		{"coyote", grammar.Distal, "isha'-uka"},
		{"mountain", grammar.Proximal, "toyabi-neika"},
		{"mountain", grammar.Distal, "toyabi-noka"},
	}
	for _, tt := range tests {
		s := &SubjectVerbObject{
			Subject: PronounNominal(firstSingular()),
			Verb:    TransitiveVerb{Verb: Verb{Lemma: "see", TenseAspect: grammar.PresentSimple}},
			Object:  NounNominal(Noun{Head: tt.head, Proximity: tt.proximity, Plurality: grammar.Singular}),
		}
		got, err := s.Render(store)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if want := "nüü " + tt.want; len(got) < len(want) || got[:len(want)] != want {
			t.Errorf("Render = %q, want prefix %q", got, want)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	store := vocab.NewStore()
	s := &SubjectVerbObject{
		Subject: NounNominal(Noun{Head: "dog", Proximity: grammar.Proximal, Plurality: grammar.Dual}),
		Verb:    TransitiveVerb{Verb: Verb{Lemma: "chase", TenseAspect: grammar.PastContinuous}},
		Object:  NounNominal(Noun{Head: "cottontail", Proximity: grammar.Distal, Plurality: grammar.Plural}),
	}

	first, err := s.Render(store)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := s.Render(store)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Errorf("repeat render differs: %q vs %q", first, second)
	}
}

func TestRenderUnknownLemma(t *testing.T) {
	store := vocab.NewStore()

	s := &SubjectVerb{
		Subject: NounNominal(Noun{Head: "helicopter", Proximity: grammar.Distal, Plurality: grammar.Singular}),
		Verb:    Verb{Lemma: "run", TenseAspect: grammar.PresentSimple},
	}

	if err := s.Validate(store); err == nil {
		t.Error("expected validation error for unknown noun")
	}

	out, err := s.Render(store)
	if err == nil {
		t.Fatal("expected render error for unknown noun")
	}
	var unknownErr *vocab.UnknownLemmaError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownLemmaError, got %T", err)
	}
	if out != "" {
		t.Errorf("failed render must not return partial output, got %q", out)
	}
}

func TestRenderMissingObject(t *testing.T) {
	store := vocab.NewStore()

	s := &SubjectVerbObject{
		Subject: PronounNominal(firstSingular()),
		Verb:    TransitiveVerb{Verb: Verb{Lemma: "see", TenseAspect: grammar.PresentSimple}},
	}

	if err := s.Validate(store); err == nil {
		t.Error("expected validation error for empty object slot")
	}
	if _, err := s.Render(store); err == nil {
		t.Error("expected render error for empty object slot")
	}
}

func TestValidateRejectsBadFeatures(t *testing.T) {
	store := vocab.NewStore()

	s := &SubjectVerb{
		Subject: NounNominal(Noun{Head: "coyote", Proximity: "nearby", Plurality: grammar.Singular}),
		Verb:    Verb{Lemma: "run", TenseAspect: grammar.PresentSimple},
	}
	if err := s.Validate(store); err == nil {
		t.Error("expected validation error for invalid proximity")
	}

	s2 := &SubjectVerb{
		Subject: PronounNominal(firstSingular()),
		Verb:    Verb{Lemma: "run", TenseAspect: "past_perfect"},
	}
	if err := s2.Validate(store); err == nil {
		t.Error("expected validation error for invalid tense/aspect")
	}
}
