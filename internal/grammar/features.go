// Package grammar encodes the closed grammatical feature system of Owens
// Valley Paiute and the rule tables that map feature combinations to bound
// morphemes. All functions here are pure and operate on the string-typed
// enumerations; the surface forms come from the reference word lists.
package grammar

import "fmt"

// Proximity marks whether a referent is near (proximal) or far (distal)
// from the speaker.
type Proximity string

const (
	Proximal Proximity = "proximal"
	Distal   Proximity = "distal"
)

// Valid reports whether p is one of the two proximity values.
func (p Proximity) Valid() bool {
	return p == Proximal || p == Distal
}

// SubjectSuffix returns the nominal subject suffix for this proximity.
func (p Proximity) SubjectSuffix() string {
	if p == Proximal {
		return "ii"
	}
	return "uu"
}

// ObjectSuffix returns the nominal object suffix for this proximity. The
// suffix alternates depending on whether the noun's target stem ends in a
// glottal stop.
func (p Proximity) ObjectSuffix(endsInGlottal bool) string {
	if p == Proximal {
		if endsInGlottal {
			return "eika"
		}
		return "neika"
	}
	if endsInGlottal {
		return "uka"
	}
	return "noka"
}

// Plurality is the three-way number distinction.
type Plurality string

const (
	Singular Plurality = "singular"
	Dual     Plurality = "dual"
	Plural   Plurality = "plural"
)

func (p Plurality) Valid() bool {
	return p == Singular || p == Dual || p == Plural
}

// Person is the grammatical person of a pronoun.
type Person string

const (
	First  Person = "first"
	Second Person = "second"
	Third  Person = "third"
)

func (p Person) Valid() bool {
	return p == First || p == Second || p == Third
}

// Inclusivity distinguishes "we including you" from "we excluding you".
// It only carries meaning for first person plural pronouns.
type Inclusivity string

const (
	Inclusive Inclusivity = "inclusive"
	Exclusive Inclusivity = "exclusive"
)

func (i Inclusivity) Valid() bool {
	return i == Inclusive || i == Exclusive
}

// TenseAspect is the combined tense/aspect category carried by verbs.
type TenseAspect string

const (
	PastSimple        TenseAspect = "past_simple"
	PastContinuous    TenseAspect = "past_continuous"
	PresentPerfect    TenseAspect = "present_perfect"
	PresentSimple     TenseAspect = "present_simple"
	PresentContinuous TenseAspect = "present_continuous"
	FutureSimple      TenseAspect = "future_simple"
)

func (t TenseAspect) Valid() bool {
	switch t {
	case PastSimple, PastContinuous, PresentPerfect, PresentSimple, PresentContinuous, FutureSimple:
		return true
	}
	return false
}

// TenseAspects lists every tense/aspect value in a stable order.
func TenseAspects() []TenseAspect {
	return []TenseAspect{
		PastSimple, PastContinuous, PresentPerfect,
		PresentSimple, PresentContinuous, FutureSimple,
	}
}

// Proximities lists both proximity values.
func Proximities() []Proximity { return []Proximity{Proximal, Distal} }

// Pluralities lists the three number values.
func Pluralities() []Plurality { return []Plurality{Singular, Dual, Plural} }

// Persons lists the three person values.
func Persons() []Person { return []Person{First, Second, Third} }

// Inclusivities lists both inclusivity values.
func Inclusivities() []Inclusivity { return []Inclusivity{Inclusive, Exclusive} }

// Suffix returns the verbal tense/aspect suffix. Every valid TenseAspect
// maps to a suffix; an unmapped value is a broken caller contract, not a
// runtime condition to recover from.
func (t TenseAspect) Suffix() (string, error) {
	switch t {
	case PastSimple:
		return "ku", nil
	case PastContinuous, PresentContinuous:
		return "ti", nil
	case PresentPerfect:
		return "pü", nil
	case PresentSimple:
		return "dü", nil
	case FutureSimple:
		return "wei", nil
	}
	return "", fmt.Errorf("invalid tense/aspect %q", string(t))
}

// PossessivePrefix returns the singular possessor prefix used by kinship
// terms (my/your/his-her).
func (p Person) PossessivePrefix() (string, error) {
	switch p {
	case First:
		return "i-", nil
	case Second:
		return "ü-", nil
	case Third:
		return "ma-", nil
	}
	return "", fmt.Errorf("invalid person %q", string(p))
}
