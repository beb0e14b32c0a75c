// Package vocab holds the Owens Valley Paiute lexicon: three immutable
// lemma-to-stem collections built once at startup and shared read-only by
// every component that needs lookups.
package vocab

import "fmt"

// UnknownLemmaError reports a lemma absent from the requested collection.
type UnknownLemmaError struct {
	Lemma    string
	Category Category
}

func (e *UnknownLemmaError) Error() string {
	return fmt.Sprintf("unknown lemma %q in %s", e.Lemma, e.Category)
}

// Store is the process-wide lexicon. It is never mutated after
// construction, so unsynchronized concurrent readers are safe.
type Store struct {
	entries    map[Category][]Entry
	byLemma    map[Category]map[string]string
	permissive bool
}

// NewStore builds the lexicon from the built-in word lists.
func NewStore() *Store {
	return newStore(map[Category][]Entry{
		Nouns:             nounEntries,
		TransitiveVerbs:   transitiveVerbEntries,
		IntransitiveVerbs: intransitiveVerbEntries,
	})
}

// NewStoreFromEntries builds a lexicon from externally supplied tables,
// e.g. rows loaded from the lexicon database.
func NewStoreFromEntries(entries map[Category][]Entry) *Store {
	return newStore(entries)
}

func newStore(entries map[Category][]Entry) *Store {
	s := &Store{
		entries: make(map[Category][]Entry, len(entries)),
		byLemma: make(map[Category]map[string]string, len(entries)),
	}
	for category, list := range entries {
		copied := make([]Entry, len(list))
		copy(copied, list)
		s.entries[category] = copied

		index := make(map[string]string, len(list))
		for _, e := range list {
			if _, exists := index[e.Lemma]; !exists {
				index[e.Lemma] = e.Target
			}
		}
		s.byLemma[category] = index
	}
	return s
}

// WithPermissive returns a view of the store that substitutes a bracketed
// "[lemma]" placeholder for unknown lemmas instead of failing. Intended for
// interactive use where a partial translation beats none; programs that
// need trustworthy output should stay strict.
func (s *Store) WithPermissive() *Store {
	return &Store{entries: s.entries, byLemma: s.byLemma, permissive: true}
}

// Lookup resolves a lemma within one collection. In strict mode an absent
// lemma fails with *UnknownLemmaError; it is never silently substituted.
func (s *Store) Lookup(lemma string, category Category) (string, error) {
	if index, ok := s.byLemma[category]; ok {
		if target, ok := index[lemma]; ok {
			return target, nil
		}
	}
	if s.permissive {
		return "[" + lemma + "]", nil
	}
	return "", &UnknownLemmaError{Lemma: lemma, Category: category}
}

// LookupAnyVerb resolves a verb lemma checking the transitive collection
// first, then the intransitive one. For the homophonous pairs the
// transitive reading wins; callers that care must look up by category.
func (s *Store) LookupAnyVerb(lemma string) (string, error) {
	if target, ok := s.byLemma[TransitiveVerbs][lemma]; ok {
		return target, nil
	}
	if target, ok := s.byLemma[IntransitiveVerbs][lemma]; ok {
		return target, nil
	}
	if s.permissive {
		return "[" + lemma + "]", nil
	}
	return "", &UnknownLemmaError{Lemma: lemma, Category: TransitiveVerbs}
}

// Has reports whether the lemma exists in the collection.
func (s *Store) Has(lemma string, category Category) bool {
	_, ok := s.byLemma[category][lemma]
	return ok
}

// Entries returns the collection's word list in its canonical order. The
// returned slice is a copy; mutating it does not touch the store.
func (s *Store) Entries(category Category) []Entry {
	list := s.entries[category]
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

// Lemmas returns just the lemmas of a collection, in canonical order.
func (s *Store) Lemmas(category Category) []string {
	list := s.entries[category]
	out := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, e := range list {
		if !seen[e.Lemma] {
			seen[e.Lemma] = true
			out = append(out, e.Lemma)
		}
	}
	return out
}
