package vocab

// KinshipTerm is a kinship noun with possessed and unpossessed forms.
// Kinship nouns are inherently possessed but carry an unpossessed citation
// form; the possessed stem combines with a possessor prefix and optionally
// the plural suffix.
type KinshipTerm struct {
	Lemma         string `json:"lemma" db:"lemma"`
	Unpossessed   string `json:"unpossessed" db:"unpossessed"`
	PossessedStem string `json:"possessed_stem" db:"possessed_stem"`
}

// kinshipPluralSuffix attaches after the possessed stem for plural
// possessed forms.
const kinshipPluralSuffix = "mü"

// Possessed returns the possessed form with the given possessor prefix,
// e.g. "i-" for a first person singular possessor.
func (k KinshipTerm) Possessed(prefix string) string {
	return prefix + k.PossessedStem
}

// PossessedPlural returns the plural possessed form.
func (k KinshipTerm) PossessedPlural(prefix string) string {
	return prefix + k.PossessedStem + kinshipPluralSuffix
}

var kinshipTerms = []KinshipTerm{
	{Lemma: "mother", Unpossessed: "piabi", PossessedStem: "bia"},
}

// KinshipTerms returns the known kinship terms.
func KinshipTerms() []KinshipTerm {
	out := make([]KinshipTerm, len(kinshipTerms))
	copy(out, kinshipTerms)
	return out
}

// LookupKinship finds a kinship term by its English lemma.
func LookupKinship(lemma string) (KinshipTerm, bool) {
	for _, k := range kinshipTerms {
		if k.Lemma == lemma {
			return k, true
		}
	}
	return KinshipTerm{}, false
}
