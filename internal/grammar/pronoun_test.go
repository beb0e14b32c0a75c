package grammar

import "testing"

func TestSubjectForms(t *testing.T) {
	tests := []struct {
		name    string
		pronoun Pronoun
		want    string
	}{
		{"I", Pronoun{Person: First, Plurality: Singular, Proximity: Proximal, Inclusivity: Exclusive}, "nüü"},
		{"we two", Pronoun{Person: First, Plurality: Dual, Proximity: Proximal, Inclusivity: Inclusive}, "taa"},
		{"we inclusive", Pronoun{Person: First, Plurality: Plural, Proximity: Proximal, Inclusivity: Inclusive}, "taagwa"},
		{"we exclusive", Pronoun{Person: First, Plurality: Plural, Proximity: Proximal, Inclusivity: Exclusive}, "nüügwa"},
		{"you", Pronoun{Person: Second, Plurality: Singular, Proximity: Proximal, Inclusivity: Exclusive}, "üü"},
		{"you all", Pronoun{Person: Second, Plurality: Plural, Proximity: Proximal, Inclusivity: Exclusive}, "üügwa"},
		{"he/she proximal", Pronoun{Person: Third, Plurality: Singular, Proximity: Proximal, Inclusivity: Exclusive}, "mahu"},
		{"he/she distal", Pronoun{Person: Third, Plurality: Singular, Proximity: Distal, Inclusivity: Exclusive}, "uhu"},
		{"they proximal", Pronoun{Person: Third, Plurality: Plural, Proximity: Proximal, Inclusivity: Exclusive}, "mahuw̃a"},
		{"they distal", Pronoun{Person: Third, Plurality: Plural, Proximity: Distal, Inclusivity: Exclusive}, "uhuw̃a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pronoun.SubjectForm()
			if err != nil {
				t.Fatalf("SubjectForm: %v", err)
			}
			if got != tt.want {
				t.Errorf("SubjectForm = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObjectForms(t *testing.T) {
	tests := []struct {
		name    string
		pronoun Pronoun
		want    string
	}{
		{"me", Pronoun{Person: First, Plurality: Singular, Proximity: Proximal, Inclusivity: Exclusive}, "i"},
		{"us two", Pronoun{Person: First, Plurality: Dual, Proximity: Proximal, Inclusivity: Inclusive}, "ta"},
		{"us inclusive", Pronoun{Person: First, Plurality: Plural, Proximity: Proximal, Inclusivity: Inclusive}, "tei"},
		{"us exclusive", Pronoun{Person: First, Plurality: Plural, Proximity: Proximal, Inclusivity: Exclusive}, "ni"},
		{"you", Pronoun{Person: Second, Plurality: Singular, Proximity: Proximal, Inclusivity: Exclusive}, "ü"},
		{"you all", Pronoun{Person: Second, Plurality: Plural, Proximity: Proximal, Inclusivity: Exclusive}, "üi"},
		{"him/her proximal", Pronoun{Person: Third, Plurality: Singular, Proximity: Proximal, Inclusivity: Exclusive}, "a"},
		{"him/her distal", Pronoun{Person: Third, Plurality: Singular, Proximity: Distal, Inclusivity: Exclusive}, "u"},
		{"them proximal", Pronoun{Person: Third, Plurality: Plural, Proximity: Proximal, Inclusivity: Exclusive}, "ai"},
		{"them distal", Pronoun{Person: Third, Plurality: Plural, Proximity: Distal, Inclusivity: Exclusive}, "ui"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pronoun.ObjectForm()
			if err != nil {
				t.Fatalf("ObjectForm: %v", err)
			}
			if got != tt.want {
				t.Errorf("ObjectForm = %q, want %q", got, tt.want)
			}
		})
	}
}

// The reflexive object form wins over plurality and proximity for third
// person, and is ignored entirely for first and second person.
func TestReflexiveObjectForm(t *testing.T) {
	for _, plurality := range Pluralities() {
		for _, proximity := range Proximities() {
			p := Pronoun{Person: Third, Plurality: plurality, Proximity: proximity, Inclusivity: Exclusive, Reflexive: true}
			got, err := p.ObjectForm()
			if err != nil {
				t.Fatalf("ObjectForm(%+v): %v", p, err)
			}
			if got != "na" {
				t.Errorf("reflexive third person object = %q, want na", got)
			}
		}
	}

	me := Pronoun{Person: First, Plurality: Singular, Proximity: Proximal, Inclusivity: Exclusive, Reflexive: true}
	got, err := me.ObjectForm()
	if err != nil {
		t.Fatalf("ObjectForm: %v", err)
	}
	if got != "i" {
		t.Errorf("reflexive flag should not affect first person, got %q", got)
	}
}

func TestThirdPersonObject(t *testing.T) {
	p := ThirdPersonObject(Distal, Singular)
	got, err := p.ObjectForm()
	if err != nil {
		t.Fatalf("ObjectForm: %v", err)
	}
	if got != "u" {
		t.Errorf("ThirdPersonObject(distal, singular) = %q, want u", got)
	}
}
