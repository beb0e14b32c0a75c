package grammar

import "fmt"

// Pronoun is a feature bundle that resolves to both a free-standing subject
// form and a bound object form. The same bundle is reused as a possessive
// determiner on nouns.
//
// Inclusivity only matters for first person plural, and Reflexive only for
// third person objects; both are carried anyway so the bundle covers the
// full feature space, and the resolution functions ignore them everywhere
// else.
type Pronoun struct {
	Person      Person      `json:"person"`
	Plurality   Plurality   `json:"plurality"`
	Proximity   Proximity   `json:"proximity"`
	Inclusivity Inclusivity `json:"inclusivity"`
	Reflexive   bool        `json:"reflexive"`
}

// Validate checks that every feature is drawn from its closed enumeration.
func (p Pronoun) Validate() error {
	if !p.Person.Valid() {
		return fmt.Errorf("pronoun: invalid person %q", string(p.Person))
	}
	if !p.Plurality.Valid() {
		return fmt.Errorf("pronoun: invalid plurality %q", string(p.Plurality))
	}
	if !p.Proximity.Valid() {
		return fmt.Errorf("pronoun: invalid proximity %q", string(p.Proximity))
	}
	if !p.Inclusivity.Valid() {
		return fmt.Errorf("pronoun: invalid inclusivity %q", string(p.Inclusivity))
	}
	return nil
}

// SubjectForm resolves the bundle to its free-standing subject pronoun.
// Branch order: person, then plurality, then inclusivity (first plural),
// then proximity (third person). There is no reflexive subject form.
func (p Pronoun) SubjectForm() (string, error) {
	switch p.Person {
	case First:
		switch p.Plurality {
		case Singular:
			return "nüü", nil
		case Dual:
			return "taa", nil
		case Plural:
			if p.Inclusivity == Inclusive {
				return "taagwa", nil
			}
			return "nüügwa", nil
		}
	case Second:
		if p.Plurality == Singular {
			return "üü", nil
		}
		return "üügwa", nil
	case Third:
		if p.Plurality == Singular {
			if p.Proximity == Proximal {
				return "mahu", nil
			}
			return "uhu", nil
		}
		if p.Proximity == Proximal {
			return "mahuw̃a", nil
		}
		return "uhuw̃a", nil
	}
	return "", fmt.Errorf("no subject pronoun for %+v", p)
}

// ObjectForm resolves the bundle to the bound object-agreement prefix that
// attaches to a transitive verb. A reflexive third person object is always
// "na", regardless of plurality and proximity.
func (p Pronoun) ObjectForm() (string, error) {
	switch p.Person {
	case First:
		switch p.Plurality {
		case Singular:
			return "i", nil
		case Dual:
			return "ta", nil
		case Plural:
			if p.Inclusivity == Inclusive {
				return "tei", nil
			}
			return "ni", nil
		}
	case Second:
		if p.Plurality == Singular {
			return "ü", nil
		}
		return "üi", nil
	case Third:
		if p.Reflexive {
			return "na", nil
		}
		if p.Plurality == Singular {
			if p.Proximity == Proximal {
				return "a", nil
			}
			return "u", nil
		}
		if p.Proximity == Proximal {
			return "ai", nil
		}
		return "ui", nil
	}
	return "", fmt.Errorf("no object pronoun for %+v", p)
}

// ThirdPersonObject builds the pronoun bundle that agrees with a third
// person noun object of the given proximity and number.
func ThirdPersonObject(proximity Proximity, plurality Plurality) Pronoun {
	return Pronoun{
		Person:      Third,
		Plurality:   plurality,
		Proximity:   proximity,
		Inclusivity: Exclusive,
		Reflexive:   false,
	}
}
